package postgres

import (
	"gorm.io/gorm"

	apperrors "github.com/frahmantamala/people-management/internal"
	departmentDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/department"
	"github.com/frahmantamala/people-management/internal/database"
	"github.com/frahmantamala/people-management/internal/department"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(dm *departmentDatamodel.Department) error {
	if err := r.db.Create(dm).Error; err != nil {
		if database.IsDuplicate(err) {
			return apperrors.ErrDepartmentNameExists
		}
		return apperrors.NewInternalError("failed to create department", err)
	}
	return nil
}

func (r *DepartmentRepository) GetByID(departmentID string) (*departmentDatamodel.Department, error) {
	var dm departmentDatamodel.Department
	err := r.db.Where("department_id = ?", departmentID).First(&dm).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, apperrors.NewInternalError("failed to get department", err)
	}
	return &dm, nil
}

// List orders by the requested column with department_id as a stable
// tie-break so pages never overlap under equal sort keys.
func (r *DepartmentRepository) List(query department.ListQuery) ([]*departmentDatamodel.Department, error) {
	tx := r.db.Model(&departmentDatamodel.Department{})

	if query.NameContains != "" {
		tx = tx.Where("name LIKE ?", "%"+query.NameContains+"%")
	}

	direction := "ASC"
	if query.Descending {
		direction = "DESC"
	}
	switch query.SortBy {
	case department.SortByName:
		tx = tx.Order("name " + direction)
	default:
		tx = tx.Order("created_at " + direction)
	}
	tx = tx.Order("department_id ASC")

	var dms []*departmentDatamodel.Department
	err := tx.Limit(query.Page.Limit()).
		Offset(query.Page.Offset()).
		Find(&dms).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list departments", err)
	}
	return dms, nil
}

func (r *DepartmentRepository) Update(dm *departmentDatamodel.Department) error {
	result := r.db.Model(&departmentDatamodel.Department{}).
		Where("department_id = ?", dm.DepartmentID).
		Updates(map[string]interface{}{
			"name":       dm.Name,
			"updated_at": dm.UpdatedAt,
		})
	if result.Error != nil {
		if database.IsDuplicate(result.Error) {
			return apperrors.ErrDepartmentNameExists
		}
		return apperrors.NewInternalError("failed to update department", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// Delete relies on the RESTRICT foreign key from employees: deleting a
// referenced department fails atomically at the storage layer and maps to a
// conflict. No employee existence check happens here.
func (r *DepartmentRepository) Delete(departmentID string) error {
	result := r.db.Where("department_id = ?", departmentID).
		Delete(&departmentDatamodel.Department{})
	if result.Error != nil {
		if database.IsForeignKeyViolation(result.Error) {
			return apperrors.ErrDepartmentInUse
		}
		return apperrors.NewInternalError("failed to delete department", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}
