package models

// Enrollment registers a student in a module. Students are referenced by id only.
type Enrollment struct {
	StudentID int64 `json:"studentId" db:"student_id"`
	ModuleID  int64 `json:"moduleId" db:"module_id"`
}
