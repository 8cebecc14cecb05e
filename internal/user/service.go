package user

import (
	"log/slog"
	"time"

	userDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	GetByID(userID string) (*userDatamodel.User, error)
	UpdateProfile(userID string, fields map[string]interface{}) (*userDatamodel.User, error)
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

func (s *Service) GetProfile(userID string) (*ProfileResponse, error) {
	dm, err := s.repo.GetByID(userID)
	if err != nil {
		s.logger.Error("get profile failed", "user_id", userID, "error", err)
		return nil, err
	}

	resp := FromDataModel(dm).ToResponse()
	return &resp, nil
}

// UpdateProfile applies only the fields present in the patch, keyed to the
// caller's own user id. A patch with no fields still succeeds and returns the
// current profile.
func (s *Service) UpdateProfile(userID string, dto UpdateProfileDTO) (*ProfileResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if dto.Name != nil {
		fields["name"] = *dto.Name
	}
	if dto.UserImageURI != nil {
		fields["user_image_uri"] = *dto.UserImageURI
	}
	if dto.CompanyName != nil {
		fields["company_name"] = *dto.CompanyName
	}
	if dto.CompanyImageURI != nil {
		fields["company_image_uri"] = *dto.CompanyImageURI
	}

	if len(fields) == 0 {
		return s.GetProfile(userID)
	}
	fields["updated_at"] = time.Now().UTC()

	dm, err := s.repo.UpdateProfile(userID, fields)
	if err != nil {
		s.logger.Error("update profile failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", userID)

	resp := FromDataModel(dm).ToResponse()
	return &resp, nil
}
