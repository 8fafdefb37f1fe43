package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the dashboard. Password holds the
// bcrypt hash, never the plaintext.
type User struct {
	ID       uuid.UUID
	Email    string
	Password string
}

// Credentials is a raw login submission.
type Credentials struct {
	Email    string
	Password string
}

// Session is an authenticated session backed by a signed token.
type Session struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

var ErrNotFound = errors.New("user not found")

// FailureKind categorizes an expected, recoverable authentication failure.
type FailureKind int

const (
	// KindCredentials covers a wrong email or password.
	KindCredentials FailureKind = iota
	// KindSession covers failures minting or handling the session itself.
	KindSession
)

// Error is a categorized authentication failure. Anything not wrapped in
// Error is an infrastructure fault and propagates to the caller untouched.
type Error struct {
	Kind FailureKind
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindCredentials:
		return "authentication failed: invalid credentials"
	default:
		return "authentication failed"
	}
}
