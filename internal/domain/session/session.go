// Package session models the single active terminal session: login
// state, role, the identity bound to a standard login, and the
// cumulative per-session limit counters.
package session

import (
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrNotLoggedIn        = errors.New("no session is active")
	ErrAlreadyLoggedIn    = errors.New("a session is already active")
	ErrPrivilegeDenied    = errors.New("operation requires an admin session")
	ErrUnknownHolder      = errors.New("no account exists for that holder name")
	ErrInvalidSessionType = errors.New("session type must be standard or admin")
)

// Role is the privilege tag of an active session.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// Counters accumulates the amounts moved by a standard session. Admin
// sessions do not track them.
type Counters struct {
	Withdrawn   int64
	Transferred int64
	BillsPaid   int64
}

// Session holds authentication state for the current terminal session.
// All fields reset together on End; at most one login is active at a
// time.
type Session struct {
	ID         string
	LoggedIn   bool
	Role       Role
	HolderName string
	Counters   Counters
}

func New() *Session {
	return &Session{}
}

// BeginStandard opens a standard session bound to the given holder.
func (s *Session) BeginStandard(holder string) error {
	if s.LoggedIn {
		return ErrAlreadyLoggedIn
	}
	s.ID = uuid.NewString()
	s.LoggedIn = true
	s.Role = RoleStandard
	s.HolderName = holder
	s.Counters = Counters{}
	return nil
}

// BeginAdmin opens an admin session with no bound holder.
func (s *Session) BeginAdmin() error {
	if s.LoggedIn {
		return ErrAlreadyLoggedIn
	}
	s.ID = uuid.NewString()
	s.LoggedIn = true
	s.Role = RoleAdmin
	s.HolderName = ""
	s.Counters = Counters{}
	return nil
}

// End resets the session to logged out and zeroes the counters.
func (s *Session) End() {
	*s = Session{}
}

// IsAdmin reports whether the active session holds the admin role.
func (s *Session) IsAdmin() bool {
	return s.LoggedIn && s.Role == RoleAdmin
}

// RequireLogin is the guard consulted by every operation other than
// login.
func (s *Session) RequireLogin() error {
	if !s.LoggedIn {
		return ErrNotLoggedIn
	}
	return nil
}

// RequireAdmin is the single privilege guard consulted by every
// privileged operation.
func (s *Session) RequireAdmin() error {
	if !s.LoggedIn {
		return ErrNotLoggedIn
	}
	if s.Role != RoleAdmin {
		return ErrPrivilegeDenied
	}
	return nil
}

// ErrLimitExceeded indicates that an operation would push a standard
// session past its cumulative cap.
type ErrLimitExceeded struct {
	Operation string
	Limit     int64 // minor units
}

func (e ErrLimitExceeded) Error() string {
	return "session " + e.Operation + " limit exceeded"
}

// Is matches any ErrLimitExceeded when the target names no operation.
func (e ErrLimitExceeded) Is(target error) bool {
	t, ok := target.(ErrLimitExceeded)
	if !ok {
		return false
	}
	return t.Operation == "" || e.Operation == t.Operation
}
