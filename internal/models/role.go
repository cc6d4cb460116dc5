package models

// Role is the closed set of authorization roles.
type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// Roles lists every valid role.
var Roles = []Role{RoleStudent, RoleAdmin, RoleSuperAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether r may use the admin back office.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return true
	case RoleStudent:
		return false
	}
	return false
}

// In reports whether r is one of allowed.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }
