package models

// RoleType defines the role carried by an authenticated account
type RoleType string

const (
	RoleStudent        RoleType = "STUDENT"
	RoleProfessor      RoleType = "PROFESSOR"
	RoleDepartmentHead RoleType = "DEPARTMENT_HEAD"
	RoleExamAdmin      RoleType = "EXAM_ADMIN"
	RoleViceDean       RoleType = "VICE_DEAN"
)

// Valid reports whether the role is one of the known roles
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleDepartmentHead, RoleExamAdmin, RoleViceDean:
		return true
	}
	return false
}
