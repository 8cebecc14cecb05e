package user

import "time"

// User is the persistence model for manager accounts. Email uniqueness is
// enforced by the database, not by pre-checks.
type User struct {
	UserID          string    `json:"user_id" gorm:"column:user_id;primaryKey"`
	Email           string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	PasswordHash    string    `json:"-" gorm:"column:password_hash;not null"`
	Name            *string   `json:"name,omitempty" gorm:"column:name"`
	UserImageURI    *string   `json:"user_image_uri,omitempty" gorm:"column:user_image_uri"`
	CompanyName     *string   `json:"company_name,omitempty" gorm:"column:company_name"`
	CompanyImageURI *string   `json:"company_image_uri,omitempty" gorm:"column:company_image_uri"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
