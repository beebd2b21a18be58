package user

import (
	"fmt"
	"time"
)

// User is the identity carried by a session. Citizens are anonymous; only
// administrators authenticate, with a work ID.
type User struct {
	IsAdmin bool
	WorkID  string
}

// Session is an issued admin session. It is never persisted; it lives only
// inside a signed token.
type Session struct {
	User      User
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func NewAdminSession(workID string, now time.Time, ttl time.Duration) (*Session, error) {
	if workID == "" {
		return nil, fmt.Errorf("work ID is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session lifetime must be positive")
	}
	return &Session{
		User:      User{IsAdmin: true, WorkID: workID},
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Anonymous is the identity of an unauthenticated citizen.
func Anonymous() User {
	return User{}
}
