// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleBuyer indicates a regular purchasing account.
	RoleBuyer Role = "buyer"
	// RoleShop indicates a partner account that owns a shop and uploads catalogs.
	RoleShop Role = "shop"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleShop:
		return true
	default:
		return false
	}
}
