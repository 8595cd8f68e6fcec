// Package sessionservice manages the signed-in/out state machine with
// idle-timeout expiry.
//
// A session moves between three states: anonymous (empty username),
// authenticated, and expired. Expiry is checked before activity is refreshed,
// and the activity timestamp is refreshed only when the check passes.
package sessionservice

import (
	"context"
	"time"

	"github.com/go-coinx/coinx/internal/domain"
	"github.com/rs/zerolog"
)

// CredentialChecker provides the user service interface needed for sign-in.
//
//go:generate mockgen -source service.go -destination service_mock.go -package sessionservice
type CredentialChecker interface {
	CheckPassword(ctx context.Context, username, password string) (domain.Account, error)
}

// Service facilitates session state transitions.
type Service struct {
	users   CredentialChecker
	timeout time.Duration
}

// New returns a session service expiring sessions after the given idle timeout.
func New(users CredentialChecker, timeout time.Duration) *Service {
	return &Service{
		users:   users,
		timeout: timeout,
	}
}

// SignIn authenticates the session for the given credentials. On failure the
// session is returned unchanged so the caller stays anonymous.
func (s *Service) SignIn(ctx context.Context, sess domain.Session, username, password string) (domain.Session, domain.Account, error) {
	account, err := s.users.CheckPassword(ctx, username, password)
	if err != nil {
		return sess, domain.Account{}, err
	}

	l := zerolog.Ctx(ctx)
	l.Info().Str("username", account.Username).Msg("signed in")

	return domain.Session{
		Username:     account.Username,
		LastActivity: time.Now(),
	}, account, nil
}

// Check gates an operation that requires authentication. An anonymous session
// fails with ErrAuthRequired; a session past the idle timeout is reset to
// anonymous and fails with ErrSessionExpired so the caller can surface the
// idle notice once. Otherwise the activity timestamp is refreshed.
func (s *Service) Check(ctx context.Context, sess domain.Session) (domain.Session, error) {
	if sess.Anonymous() {
		return sess, domain.ErrAuthRequired
	}

	now := time.Now()

	if sess.IdleSince(now, s.timeout) {
		l := zerolog.Ctx(ctx)
		l.Info().Str("username", sess.Username).Msg("session expired by idle timeout")

		return domain.Session{}, domain.ErrSessionExpired
	}

	sess.LastActivity = now

	return sess, nil
}

// SignOut returns the session to the anonymous state.
func (s *Service) SignOut(sess domain.Session) domain.Session {
	return domain.Session{}
}

// IsSignedIn reports whether the session is authenticated and not idle-expired.
// It never refreshes the activity timestamp.
func (s *Service) IsSignedIn(sess domain.Session) bool {
	return !sess.Anonymous() && !sess.IdleSince(time.Now(), s.timeout)
}

// CurrentUsername returns the signed-in username, empty when anonymous or expired.
func (s *Service) CurrentUsername(sess domain.Session) string {
	if !s.IsSignedIn(sess) {
		return ""
	}

	return sess.Username
}
