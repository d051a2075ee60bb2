package constants

import "fmt"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess = "Fitur %s hanya tersedia untuk akun student."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

var (
	AdminOnly = []string{
		RoleAdmin,
	}

	// Admin diperlakukan sebagai superset dari student: semua route student
	// juga boleh diakses admin.
	StudentAndAbove = []string{
		RoleStudent,
		RoleAdmin,
	}

	AllRoles = []string{
		RoleStudent,
		RoleAdmin,
	}
)

// IsValidRole memeriksa role yang dikenal sistem.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleAllows memutuskan apakah role aktual boleh mengakses resource dengan
// role minimum tertentu. Admin selalu boleh (capability superset).
func RoleAllows(required, actual string) bool {
	if actual == RoleAdmin {
		return true
	}
	return actual == required
}
