package department

import (
	"net/url"
	"strconv"

	errors "github.com/frahmantamala/people-management/internal"
	"github.com/frahmantamala/people-management/internal/core/common/pagination"
	"github.com/frahmantamala/people-management/internal/core/common/validation"
)

type CreateDepartmentDTO struct {
	Name string `json:"name"`
}

func (d CreateDepartmentDTO) Validate() *errors.AppError {
	return validation.ValidateDepartmentName(d.Name)
}

type UpdateDepartmentDTO struct {
	Name string `json:"name"`
}

func (d UpdateDepartmentDTO) Validate() *errors.AppError {
	return validation.ValidateDepartmentName(d.Name)
}

const (
	SortByCreatedAt = "created_at"
	SortByName      = "name"
)

// ListQuery is the normalized filter for department listings.
type ListQuery struct {
	NameContains string
	SortBy       string
	Descending   bool
	Page         pagination.Page
}

// ParseListQuery normalizes raw query parameters. Unknown sort fields fall
// back to creation time; oversized page sizes are clamped, not rejected.
func ParseListQuery(values url.Values, defaultSize, maxSize int) ListQuery {
	page, _ := strconv.Atoi(values.Get("page"))
	pageSize, _ := strconv.Atoi(values.Get("pageSize"))

	sortBy := values.Get("sortBy")
	if sortBy != SortByName {
		sortBy = SortByCreatedAt
	}

	descending := true
	if values.Get("order") == "asc" {
		descending = false
	}

	return ListQuery{
		NameContains: values.Get("name"),
		SortBy:       sortBy,
		Descending:   descending,
		Page:         pagination.Normalize(page, pageSize, defaultSize, maxSize),
	}
}

type DepartmentResponse struct {
	DepartmentID string `json:"departmentId"`
	Name         string `json:"name"`
}

type ListResponse struct {
	Departments []*Department `json:"departments"`
	Page        int           `json:"page"`
	PageSize    int           `json:"pageSize"`
}
