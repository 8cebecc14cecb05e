package postgres

import (
	"gorm.io/gorm"

	apperrors "github.com/frahmantamala/people-management/internal"
	fileDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/file"
	"github.com/frahmantamala/people-management/internal/file"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) file.RepositoryAPI {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(dm *fileDatamodel.File) error {
	if err := r.db.Create(dm).Error; err != nil {
		return apperrors.NewInternalError("failed to create file record", err)
	}
	return nil
}
