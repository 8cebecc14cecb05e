package user

import (
	errors "github.com/frahmantamala/people-management/internal"
	"github.com/frahmantamala/people-management/internal/core/common/validation"
)

// UpdateProfileDTO carries a partial profile update. Nil means "leave alone".
// Email is deliberately absent: it cannot change through this path.
type UpdateProfileDTO struct {
	Name            *string `json:"name,omitempty"`
	UserImageURI    *string `json:"userImageUri,omitempty"`
	CompanyName     *string `json:"companyName,omitempty"`
	CompanyImageURI *string `json:"companyImageUri,omitempty"`
}

func (d UpdateProfileDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).
		MinLength(4).
		MaxLength(52)
	v.Field("userImageUri", d.UserImageURI).
		URL().
		MaxLength(255)
	v.Field("companyName", d.CompanyName).
		MinLength(4).
		MaxLength(52)
	v.Field("companyImageUri", d.CompanyImageURI).
		URL().
		MaxLength(255)
	return v.Validate()
}

// IsEmpty reports whether the patch carries no fields at all.
func (d UpdateProfileDTO) IsEmpty() bool {
	return d.Name == nil && d.UserImageURI == nil && d.CompanyName == nil && d.CompanyImageURI == nil
}

type ProfileResponse struct {
	Email           string  `json:"email"`
	Name            *string `json:"name"`
	UserImageURI    *string `json:"userImageUri"`
	CompanyName     *string `json:"companyName"`
	CompanyImageURI *string `json:"companyImageUri"`
}
