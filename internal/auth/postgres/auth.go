package postgres

import (
	"gorm.io/gorm"

	apperrors "github.com/frahmantamala/people-management/internal"
	"github.com/frahmantamala/people-management/internal/auth"
	userDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/user"
	"github.com/frahmantamala/people-management/internal/database"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.RepositoryAPI {
	return &Repository{db: db}
}

// CreateUser inserts without checking for an existing email first; the unique
// index on users.email decides the race and surfaces here as ErrEmailExists.
func (r *Repository) CreateUser(user *userDatamodel.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if database.IsDuplicate(err) {
			return apperrors.ErrEmailExists
		}
		return apperrors.NewInternalError("failed to create user", err)
	}
	return nil
}

func (r *Repository) GetByEmail(email string) (*userDatamodel.User, error) {
	var user userDatamodel.User
	err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	return &user, nil
}
