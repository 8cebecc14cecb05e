package employee

import (
	"net/url"
	"strconv"

	errors "github.com/frahmantamala/people-management/internal"
	"github.com/frahmantamala/people-management/internal/core/common/pagination"
	"github.com/frahmantamala/people-management/internal/core/common/validation"
)

type CreateEmployeeDTO struct {
	IdentityNumber   string  `json:"identityNumber"`
	Name             string  `json:"name"`
	EmployeeImageURI *string `json:"employeeImageUri,omitempty"`
	Gender           string  `json:"gender"`
	DepartmentID     string  `json:"departmentId"`
}

func (d CreateEmployeeDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("identityNumber", d.IdentityNumber).
		Required().
		IdentityNumber()
	v.Field("name", d.Name).
		Required().
		MinLength(4).
		MaxLength(33)
	v.Field("employeeImageUri", d.EmployeeImageURI).
		URL().
		MaxLength(255)
	v.Field("gender", d.Gender).
		Required().
		Gender()
	v.Field("departmentId", d.DepartmentID).
		Required().
		UUID(errors.ErrCodeInvalidDepartmentID)
	return v.Validate()
}

// UpdateEmployeeDTO is a partial patch; nil fields are left untouched.
type UpdateEmployeeDTO struct {
	IdentityNumber   *string `json:"identityNumber,omitempty"`
	Name             *string `json:"name,omitempty"`
	EmployeeImageURI *string `json:"employeeImageUri,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	DepartmentID     *string `json:"departmentId,omitempty"`
}

func (d UpdateEmployeeDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("identityNumber", d.IdentityNumber).
		IdentityNumber()
	v.Field("name", d.Name).
		MinLength(4).
		MaxLength(33)
	v.Field("employeeImageUri", d.EmployeeImageURI).
		URL().
		MaxLength(255)
	v.Field("gender", d.Gender).
		Gender()
	v.Field("departmentId", d.DepartmentID).
		UUID(errors.ErrCodeInvalidDepartmentID)
	return v.Validate()
}

func (d UpdateEmployeeDTO) IsEmpty() bool {
	return d.IdentityNumber == nil && d.Name == nil && d.EmployeeImageURI == nil &&
		d.Gender == nil && d.DepartmentID == nil
}

const (
	SortByCreatedAt      = "created_at"
	SortByName           = "name"
	SortByIdentityNumber = "identity_number"
)

// ListQuery is the normalized filter set for employee listings. Identity
// number matches by prefix, name by substring; gender and department are
// exact.
type ListQuery struct {
	IdentityNumberPrefix string
	NameContains         string
	Gender               string
	DepartmentID         string
	SortBy               string
	Descending           bool
	Page                 pagination.Page
}

func ParseListQuery(values url.Values, defaultSize, maxSize int) ListQuery {
	page, _ := strconv.Atoi(values.Get("page"))
	pageSize, _ := strconv.Atoi(values.Get("pageSize"))

	sortBy := values.Get("sortBy")
	switch sortBy {
	case SortByName, SortByIdentityNumber:
	default:
		sortBy = SortByCreatedAt
	}

	gender := values.Get("gender")
	if gender != GenderMale && gender != GenderFemale {
		gender = ""
	}

	descending := true
	if values.Get("order") == "asc" {
		descending = false
	}

	return ListQuery{
		IdentityNumberPrefix: values.Get("identityNumber"),
		NameContains:         values.Get("name"),
		Gender:               gender,
		DepartmentID:         values.Get("departmentId"),
		SortBy:               sortBy,
		Descending:           descending,
		Page:                 pagination.Normalize(page, pageSize, defaultSize, maxSize),
	}
}

type EmployeeResponse struct {
	EmployeeID       string  `json:"employeeId"`
	IdentityNumber   string  `json:"identityNumber"`
	Name             string  `json:"name"`
	EmployeeImageURI *string `json:"employeeImageUri,omitempty"`
	Gender           string  `json:"gender"`
	DepartmentID     string  `json:"departmentId"`
}

type ListResponse struct {
	Employees []*Employee `json:"employees"`
	Page      int         `json:"page"`
	PageSize  int         `json:"pageSize"`
}
