package auth

import (
	errors "github.com/frahmantamala/people-management/internal"
	"github.com/frahmantamala/people-management/internal/core/common/validation"
)

const (
	ActionCreate = "create"
	ActionLogin  = "login"
)

// AuthDTO is the transport shape for POST /v1/auth. The action field picks
// between registration and login on the same route.
type AuthDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Action   string `json:"action"`
}

func (d AuthDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("email", d.Email).
		Required().
		Email()
	v.Field("password", d.Password).
		Required().
		MinLength(8).
		MaxLength(32)
	v.Field("action", d.Action).
		Required().
		OneOf(errors.ErrCodeValidationFailed, ActionCreate, ActionLogin)
	return v.Validate()
}
