package department

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	departmentDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/department"
)

type RepositoryAPI interface {
	Create(department *departmentDatamodel.Department) error
	GetByID(departmentID string) (*departmentDatamodel.Department, error)
	List(query ListQuery) ([]*departmentDatamodel.Department, error)
	Update(department *departmentDatamodel.Department) error
	Delete(departmentID string) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create writes optimistically; a duplicate name comes back from the unique
// constraint as a conflict instead of a pre-check race.
func (s *Service) Create(dto CreateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dm := &departmentDatamodel.Department{
		DepartmentID: uuid.NewString(),
		Name:         dto.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(dm); err != nil {
		s.logger.Error("create department failed", "name", dto.Name, "error", err)
		return nil, err
	}

	s.logger.Info("department created", "department_id", dm.DepartmentID, "name", dm.Name)
	return FromDataModel(dm), nil
}

func (s *Service) List(query ListQuery) (*ListResponse, error) {
	dms, err := s.repo.List(query)
	if err != nil {
		s.logger.Error("list departments failed", "error", err)
		return nil, err
	}

	return &ListResponse{
		Departments: FromDataModelSlice(dms),
		Page:        query.Page.Number,
		PageSize:    query.Page.Size,
	}, nil
}

func (s *Service) Update(departmentID string, dto UpdateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dm, err := s.repo.GetByID(departmentID)
	if err != nil {
		return nil, err
	}

	dm.Name = dto.Name
	dm.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(dm); err != nil {
		s.logger.Error("update department failed", "department_id", departmentID, "error", err)
		return nil, err
	}

	s.logger.Info("department updated", "department_id", departmentID)
	return FromDataModel(dm), nil
}

// Delete rejects when employees still reference the department. The rejection
// comes from the RESTRICT foreign key at delete time, not from a
// check-then-delete, so two concurrent calls cannot slip an orphan through.
func (s *Service) Delete(departmentID string) error {
	if err := s.repo.Delete(departmentID); err != nil {
		s.logger.Error("delete department failed", "department_id", departmentID, "error", err)
		return err
	}

	s.logger.Info("department deleted", "department_id", departmentID)
	return nil
}
