// Package models defines the records exchanged with the clinic backend and
// the client-side state types built on them.
package models

// Role is the capability group of a user. Roles have no hierarchy; checks
// compare Name exactly.
type Role struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// User is the authenticated principal as returned by /auth/login.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  *Role  `json:"role,omitempty"`
}

// RoleName returns the role name or "" when the user has no role.
func (u *User) RoleName() string {
	if u == nil || u.Role == nil {
		return ""
	}
	return u.Role.Name
}
