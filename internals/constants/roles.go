// file: internals/constants/roles.go
package constants

import "fmt"

const (
	RoleStudent string = "student"
	RoleFaculty string = "faculty"
	RoleAdmin   string = "admin"
	RoleOwner   string = "owner"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess  = "only admins may access %s."
	ErrOnlyFacultyCanAccess = "only faculty, admins, or owners may access %s."
	ErrOnlyOwnersCanAccess  = "only owners may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorFaculty(feature string) string {
	return fmt.Sprintf(ErrOnlyFacultyCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

/* ==========================
   Grouped Role Slices
   ========================== */

var (
	AllRoles = []string{RoleStudent, RoleFaculty, RoleAdmin, RoleOwner}

	AdminAndAbove   = []string{RoleAdmin, RoleOwner}
	FacultyAndAbove = []string{RoleFaculty, RoleAdmin, RoleOwner}

	// Audiences a calendar event may target.
	EventAudiences = []string{RoleStudent, RoleFaculty, "all"}

	// Roles a registration code may be minted for.
	RegistrationRoles = []string{RoleStudent, RoleFaculty}
)
