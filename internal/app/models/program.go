package models

// Program (formation) groups modules and links them to a department
type Program struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	DepartmentID int64  `json:"departmentId" db:"department_id"`
}
