package employee

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	employeeDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	Create(employee *employeeDatamodel.Employee) error
	GetByIdentityNumber(identityNumber string) (*employeeDatamodel.Employee, error)
	List(query ListQuery) ([]*employeeDatamodel.EmployeeWithDepartment, error)
	Update(employee *employeeDatamodel.Employee) error
	Delete(identityNumber string) error
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

// Create validates then inserts in one statement. The identity-number unique
// constraint and the department foreign key both resolve at the storage
// layer, so two concurrent creates with the same identity number end with
// exactly one winner and one conflict.
func (s *Service) Create(dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dm := &employeeDatamodel.Employee{
		EmployeeID:       uuid.NewString(),
		IdentityNumber:   dto.IdentityNumber,
		Name:             dto.Name,
		EmployeeImageURI: dto.EmployeeImageURI,
		Gender:           dto.Gender,
		DepartmentID:     dto.DepartmentID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(dm); err != nil {
		s.logger.Error("create employee failed", "identity_number", dto.IdentityNumber, "error", err)
		return nil, err
	}

	s.logger.Info("employee created",
		"employee_id", dm.EmployeeID,
		"identity_number", dm.IdentityNumber,
		"department_id", dm.DepartmentID)

	return FromDataModel(dm), nil
}

func (s *Service) List(query ListQuery) (*ListResponse, error) {
	rows, err := s.repo.List(query)
	if err != nil {
		s.logger.Error("list employees failed", "error", err)
		return nil, err
	}

	return &ListResponse{
		Employees: FromJoinedDataModelSlice(rows),
		Page:      query.Page.Number,
		PageSize:  query.Page.Size,
	}, nil
}

// Update patches the employee addressed by identity number. A changed
// identity number goes back through the same unique constraint as create.
func (s *Service) Update(identityNumber string, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dm, err := s.repo.GetByIdentityNumber(identityNumber)
	if err != nil {
		return nil, err
	}

	if dto.IdentityNumber != nil {
		dm.IdentityNumber = *dto.IdentityNumber
	}
	if dto.Name != nil {
		dm.Name = *dto.Name
	}
	if dto.EmployeeImageURI != nil {
		dm.EmployeeImageURI = dto.EmployeeImageURI
	}
	if dto.Gender != nil {
		dm.Gender = *dto.Gender
	}
	if dto.DepartmentID != nil {
		dm.DepartmentID = *dto.DepartmentID
	}
	dm.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(dm); err != nil {
		s.logger.Error("update employee failed", "identity_number", identityNumber, "error", err)
		return nil, err
	}

	s.logger.Info("employee updated", "employee_id", dm.EmployeeID, "identity_number", dm.IdentityNumber)
	return FromDataModel(dm), nil
}

func (s *Service) Delete(identityNumber string) error {
	if err := s.repo.Delete(identityNumber); err != nil {
		s.logger.Error("delete employee failed", "identity_number", identityNumber, "error", err)
		return err
	}

	s.logger.Info("employee deleted", "identity_number", identityNumber)
	return nil
}
