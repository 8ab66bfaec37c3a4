package domain

import (
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func ParseRole(v string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(v))) {
	case RoleEmployee:
		return RoleEmployee, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Caller is the authenticated identity on whose behalf a service call runs.
// It is resolved upstream and passed explicitly; services never read it from
// ambient state.
type Caller struct {
	UserID uuid.UUID
	Role   Role
}

func (c Caller) Authenticated() bool {
	return c.UserID != uuid.Nil && (c.Role == RoleEmployee || c.Role == RoleAdmin)
}

func (c Caller) IsAdmin() bool {
	return c.Authenticated() && c.Role == RoleAdmin
}

func (c Caller) Owns(userID uuid.UUID) bool {
	return c.Authenticated() && c.UserID == userID
}
