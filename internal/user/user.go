package user

import (
	"time"

	userDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/user"
)

type User struct {
	UserID          string    `json:"-"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Name            *string   `json:"name"`
	UserImageURI    *string   `json:"userImageUri"`
	CompanyName     *string   `json:"companyName"`
	CompanyImageURI *string   `json:"companyImageUri"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		UserID:          u.UserID,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		Name:            u.Name,
		UserImageURI:    u.UserImageURI,
		CompanyName:     u.CompanyName,
		CompanyImageURI: u.CompanyImageURI,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (u *User) ToResponse() ProfileResponse {
	return ProfileResponse{
		Email:           u.Email,
		Name:            u.Name,
		UserImageURI:    u.UserImageURI,
		CompanyName:     u.CompanyName,
		CompanyImageURI: u.CompanyImageURI,
	}
}
