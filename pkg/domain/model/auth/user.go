package auth

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/types"
)

// User is an application user profile. The login allow-list is fixed
// configuration, not a managed entity.
type User struct {
	ID          int        `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        types.Role `json:"role"`
	Permissions []string   `json:"permissions"`
}

// Clone returns a deep copy of the user
func (u User) Clone() User {
	copied := u
	copied.Permissions = make([]string, len(u.Permissions))
	copy(copied.Permissions, u.Permissions)
	return copied
}

// Validate checks the user profile fields
func (u *User) Validate() error {
	if u.Username == "" {
		return goerr.New("username is required")
	}
	if !u.Role.IsValid() {
		return goerr.New("invalid role", goerr.V("role", u.Role))
	}
	return nil
}
