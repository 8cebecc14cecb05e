package postgres

import (
	"gorm.io/gorm"

	apperrors "github.com/frahmantamala/people-management/internal"
	userDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/user"
	"github.com/frahmantamala/people-management/internal/database"
	"github.com/frahmantamala/people-management/internal/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("user_id = ?", userID).First(&u).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	return &u, nil
}

// UpdateProfile applies the given column map to the caller's row only. The
// WHERE on user_id is what keeps one manager's patch from ever touching
// another manager's profile.
func (r *UserRepository) UpdateProfile(userID string, fields map[string]interface{}) (*userDatamodel.User, error) {
	result := r.db.Model(&userDatamodel.User{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if result.Error != nil {
		return nil, apperrors.NewInternalError("failed to update profile", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	return r.GetByID(userID)
}
