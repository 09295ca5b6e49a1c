package user

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the only privileged role. Any other value, including the
// empty string, is an ordinary account.
const RoleAdmin = "admin"

// User represents a row in the users table.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PhotoURL     string
	Role         string
	LastSignInAt *time.Time
	Extra        map[string]any
	CreatedAt    time.Time
}

// IsAdmin reports whether the record carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Patch is a partial update applied to a user record. Nil fields are left
// untouched. Extra entries are merged into the open extra document; no
// allow-list is applied to them.
type Patch struct {
	Name         *string
	PhotoURL     *string
	Role         *string
	LastSignInAt *time.Time
	Extra        map[string]any
}
