package auth

import "pneutrack/backend/internal/constants"

// UserClaims is what every role-gated operation gets to know about the
// caller: who they are and which profile they act under.
type UserClaims interface {
	Email() string
	Role() constants.Role
	Source() string
}

// SessionClaims are claims resolved from a cache-backed session.
type SessionClaims struct {
	UserEmail string
	UserRole  constants.Role
	SessionID string
}

func (c *SessionClaims) Email() string        { return c.UserEmail }
func (c *SessionClaims) Role() constants.Role { return c.UserRole }
func (c *SessionClaims) Source() string       { return "SESSION" }
