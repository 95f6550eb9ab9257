package types

import "fmt"

// Role represents the role of an application user
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAuditor    Role = "auditor"
	RoleSupervisor Role = "supervisor"
)

// AllRoles returns all valid user roles
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleAuditor, RoleSupervisor}
}

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAuditor, RoleSupervisor:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}
