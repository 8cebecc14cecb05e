package department

import (
	"time"

	departmentDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/department"
)

type Department struct {
	DepartmentID string    `json:"departmentId"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromDataModel(d *departmentDatamodel.Department) *Department {
	return &Department{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func FromDataModelSlice(departments []*departmentDatamodel.Department) []*Department {
	result := make([]*Department, len(departments))
	for i, d := range departments {
		result[i] = FromDataModel(d)
	}
	return result
}

func (d *Department) ToResponse() DepartmentResponse {
	return DepartmentResponse{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
	}
}
