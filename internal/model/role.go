package model

import "strings"

// Role is the user's role.
type Role string

const (
	// RoleAdmin manages tasks.
	RoleAdmin Role = "ADMIN"
	// RoleIntern is the default role.
	RoleIntern Role = "INTERN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleIntern:
		return true
	default:
		return false
	}
}

// ParseRole normalizes s to upper case and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	return role, role.IsValid()
}

// In reports whether r matches one of allowed, ignoring case.
// An empty role never matches.
func (r Role) In(allowed ...Role) bool {
	if r == "" {
		return false
	}

	for _, a := range allowed {
		if strings.EqualFold(string(r), string(a)) {
			return true
		}
	}

	return false
}
