package postgres

import (
	"gorm.io/gorm"

	apperrors "github.com/frahmantamala/people-management/internal"
	employeeDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/people-management/internal/database"
	"github.com/frahmantamala/people-management/internal/employee"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

// Create is a single optimistic insert. The identity-number unique index
// resolves duplicate races; the department foreign key rejects inserts
// against a department that does not exist.
func (r *EmployeeRepository) Create(dm *employeeDatamodel.Employee) error {
	if err := r.db.Create(dm).Error; err != nil {
		if database.IsDuplicate(err) {
			return apperrors.ErrIdentityNumberExists
		}
		if database.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return apperrors.NewInternalError("failed to create employee", err)
	}
	return nil
}

func (r *EmployeeRepository) GetByIdentityNumber(identityNumber string) (*employeeDatamodel.Employee, error) {
	var dm employeeDatamodel.Employee
	err := r.db.Where("identity_number = ?", identityNumber).First(&dm).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, apperrors.NewInternalError("failed to get employee", err)
	}
	return &dm, nil
}

// List joins each row with its department name. Identity number filters by
// prefix, name by substring; employee_id breaks sort ties so pages stay
// stable.
func (r *EmployeeRepository) List(query employee.ListQuery) ([]*employeeDatamodel.EmployeeWithDepartment, error) {
	tx := r.db.Model(&employeeDatamodel.Employee{}).
		Select("employees.*, departments.name AS department_name").
		Joins("JOIN departments ON departments.department_id = employees.department_id")

	if query.IdentityNumberPrefix != "" {
		tx = tx.Where("employees.identity_number LIKE ?", query.IdentityNumberPrefix+"%")
	}
	if query.NameContains != "" {
		tx = tx.Where("employees.name LIKE ?", "%"+query.NameContains+"%")
	}
	if query.Gender != "" {
		tx = tx.Where("employees.gender = ?", query.Gender)
	}
	if query.DepartmentID != "" {
		tx = tx.Where("employees.department_id = ?", query.DepartmentID)
	}

	direction := "ASC"
	if query.Descending {
		direction = "DESC"
	}
	switch query.SortBy {
	case employee.SortByName:
		tx = tx.Order("employees.name " + direction)
	case employee.SortByIdentityNumber:
		tx = tx.Order("employees.identity_number " + direction)
	default:
		tx = tx.Order("employees.created_at " + direction)
	}
	tx = tx.Order("employees.employee_id ASC")

	var rows []*employeeDatamodel.EmployeeWithDepartment
	err := tx.Limit(query.Page.Limit()).
		Offset(query.Page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list employees", err)
	}
	return rows, nil
}

// Update writes the full row keyed by employee_id so an identity-number
// change re-checks the same unique constraint as create.
func (r *EmployeeRepository) Update(dm *employeeDatamodel.Employee) error {
	result := r.db.Model(&employeeDatamodel.Employee{}).
		Where("employee_id = ?", dm.EmployeeID).
		Updates(map[string]interface{}{
			"identity_number":    dm.IdentityNumber,
			"name":               dm.Name,
			"employee_image_uri": dm.EmployeeImageURI,
			"gender":             dm.Gender,
			"department_id":      dm.DepartmentID,
			"updated_at":         dm.UpdatedAt,
		})
	if result.Error != nil {
		if database.IsDuplicate(result.Error) {
			return apperrors.ErrIdentityNumberExists
		}
		if database.IsForeignKeyViolation(result.Error) {
			return apperrors.ErrDepartmentNotFound
		}
		return apperrors.NewInternalError("failed to update employee", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(identityNumber string) error {
	result := r.db.Where("identity_number = ?", identityNumber).
		Delete(&employeeDatamodel.Employee{})
	if result.Error != nil {
		return apperrors.NewInternalError("failed to delete employee", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}
