package model

// Canonical role enumeration. One spelling only; route guards, services
// and seeds all use these constants.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

var AllRoles = []string{RoleAdmin, RoleTeacher, RoleStudent, RoleParent}

func ValidRole(r string) bool {
	for _, v := range AllRoles {
		if v == r {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role may own/manage academic resources.
func IsStaff(r string) bool {
	return r == RoleAdmin || r == RoleTeacher
}
