// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin manages the menu, staff, shifts and reports.
	RoleAdmin Role = "admin"
	// RoleStaff takes orders and checks in.
	RoleStaff Role = "staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff:
		return true
	default:
		return false
	}
}

// Roles is the role set carried in access token claims.
type Roles []Role

// ToStrings converts Roles to []string for the token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// CanManage reports whether the role may administer the shop's menu, staff and reports.
func (r Role) CanManage() bool {
	return r == RoleAdmin
}
