// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Editor Roles

// UserRole represents the authorization level granted to an editor account.
type UserRole string

const (
	// Full access, including deletes.
	RoleAdmin UserRole = "admin"

	// Can create and edit venues, artists and shows.
	RoleEditor UserRole = "editor"
)

// ParseRole converts a configured role name into a [UserRole].
// Unknown names report false.
func ParseRole(name string) (UserRole, bool) {
	role := UserRole(name)
	return role, role.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 20
	case RoleEditor:
		return 10
	default:
		return 0
	}
}
