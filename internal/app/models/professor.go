package models

// Professor supervises exam sessions and belongs to one department
type Professor struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	DepartmentID int64  `json:"departmentId" db:"department_id"`
}
