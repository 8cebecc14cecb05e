package department

import "time"

type Department struct {
	DepartmentID string    `json:"department_id" gorm:"column:department_id;primaryKey"`
	Name         string    `json:"name" gorm:"column:name;uniqueIndex;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Department) TableName() string {
	return "departments"
}
