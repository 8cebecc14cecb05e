package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/employee"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type Employee struct {
	EmployeeID       string    `json:"employeeId"`
	IdentityNumber   string    `json:"identityNumber"`
	Name             string    `json:"name"`
	EmployeeImageURI *string   `json:"employeeImageUri,omitempty"`
	Gender           string    `json:"gender"`
	DepartmentID     string    `json:"departmentId"`
	DepartmentName   string    `json:"departmentName,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		EmployeeID:       e.EmployeeID,
		IdentityNumber:   e.IdentityNumber,
		Name:             e.Name,
		EmployeeImageURI: e.EmployeeImageURI,
		Gender:           e.Gender,
		DepartmentID:     e.DepartmentID,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func FromJoinedDataModel(e *employeeDatamodel.EmployeeWithDepartment) *Employee {
	emp := FromDataModel(&e.Employee)
	emp.DepartmentName = e.DepartmentName
	return emp
}

func FromJoinedDataModelSlice(rows []*employeeDatamodel.EmployeeWithDepartment) []*Employee {
	result := make([]*Employee, len(rows))
	for i, e := range rows {
		result[i] = FromJoinedDataModel(e)
	}
	return result
}

func (e *Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:       e.EmployeeID,
		IdentityNumber:   e.IdentityNumber,
		Name:             e.Name,
		EmployeeImageURI: e.EmployeeImageURI,
		Gender:           e.Gender,
		DepartmentID:     e.DepartmentID,
	}
}
