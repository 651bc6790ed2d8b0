package models

import (
	"time"

	"bimar-service/internal/pkg/constvars"
)

// Session is the server-side identity record stored in Redis. Privileged
// operations read the role from here, never from anything the client sent.
type Session struct {
	SessionID string    `json:"sessionId"`
	SubjectID string    `json:"subjectId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == constvars.BimarRoleAdmin
}
