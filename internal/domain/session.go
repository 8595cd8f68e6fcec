package domain

import (
	"errors"
	"time"
)

var (
	// ErrAuthRequired indicates that the operation needs a signed-in session.
	ErrAuthRequired = errors.New("authentication required")
	// ErrSessionExpired indicates that the session hit the idle timeout.
	ErrSessionExpired = errors.New("session expired due to inactivity")
)

// Session holds the signed-in state for one browser session. The web layer
// owns the storage slot; the core only reads and returns Session values.
// An empty Username means the session is anonymous.
type Session struct {
	Username     string    `json:"username"`
	LastActivity time.Time `json:"last_activity"`
}

// Anonymous reports whether no user is signed in.
func (s Session) Anonymous() bool {
	return s.Username == ""
}

// IdleSince reports whether the session passed the idle timeout at the given moment.
func (s Session) IdleSince(now time.Time, timeout time.Duration) bool {
	return now.Sub(s.LastActivity) > timeout
}
