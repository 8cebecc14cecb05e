package employee

import "time"

// Employee rows reference departments with ON DELETE RESTRICT so a department
// with employees can never be removed underneath them.
type Employee struct {
	EmployeeID       string    `json:"employee_id" gorm:"column:employee_id;primaryKey"`
	IdentityNumber   string    `json:"identity_number" gorm:"column:identity_number;uniqueIndex;not null"`
	Name             string    `json:"name" gorm:"column:name;not null"`
	EmployeeImageURI *string   `json:"employee_image_uri,omitempty" gorm:"column:employee_image_uri"`
	Gender           string    `json:"gender" gorm:"column:gender;not null"`
	DepartmentID     string    `json:"department_id" gorm:"column:department_id;not null"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeWithDepartment is the read model for listings, joined with the
// department name.
type EmployeeWithDepartment struct {
	Employee
	DepartmentName string `json:"department_name" gorm:"column:department_name"`
}
