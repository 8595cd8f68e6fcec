// Package userservice manages business logic layer of user accounts.
package userservice

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/go-coinx/coinx/internal/domain"
	"github.com/go-coinx/coinx/pkg/coinpkg"
	"github.com/go-coinx/coinx/pkg/errorspkg"
	"github.com/go-coinx/coinx/pkg/passpkg"
	"github.com/go-coinx/coinx/pkg/randompkg"
	"github.com/rs/zerolog"
)

// MaxUsernameLength bounds usernames at signup.
const MaxUsernameLength = 30

// Signup validation messages. All applicable messages are reported together.
const (
	MsgUsernameBlank    = "username can't be blank"
	MsgUsernameSpaces   = "username can't contain spaces"
	MsgUsernameTooLong  = "username must be 30 characters or less"
	MsgUsernameTaken    = "username is already taken"
	MsgPasswordTooShort = "password must be longer than 3 characters"
	MsgPasswordBlank    = "password must contain a non-space character"
	MsgAgreementMissing = "you must accept the user agreement"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, a domain.Account) (domain.Account, error)
	Get(ctx context.Context, username string) (domain.Account, error)
	Update(ctx context.Context, a domain.Account) (domain.Account, error)
	Exists(ctx context.Context, username string) bool
	Flush(ctx context.Context) error
}

// Service facilitates user account business logic.
type Service struct {
	repo     Repo
	bonusMin int
	bonusMax int
}

// New returns a user service drawing signup bonuses uniformly from
// [bonusMin, bonusMax] whole dollars inclusive.
func New(r Repo, bonusMin, bonusMax int) *Service {
	return &Service{
		repo:     r,
		bonusMin: bonusMin,
		bonusMax: bonusMax,
	}
}

// ValidateSignup checks every signup rule independently and returns all
// failing messages, never just the first one.
func (s *Service) ValidateSignup(ctx context.Context, username, password string, agreementAccepted bool) []string {
	var failures []string

	trimmed := strings.TrimSpace(username)

	if trimmed == "" {
		failures = append(failures, MsgUsernameBlank)
	}

	if strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
		failures = append(failures, MsgUsernameSpaces)
	}

	if len([]rune(trimmed)) > MaxUsernameLength {
		failures = append(failures, MsgUsernameTooLong)
	}

	if trimmed != "" && s.repo.Exists(ctx, trimmed) {
		failures = append(failures, MsgUsernameTaken)
	}

	// Both password rules apply: a 3-character password is too short, a
	// whitespace-only password is blank even when long enough.
	if len(password) <= 3 {
		failures = append(failures, MsgPasswordTooShort)
	}

	if strings.TrimSpace(password) == "" {
		failures = append(failures, MsgPasswordBlank)
	}

	if !agreementAccepted {
		failures = append(failures, MsgAgreementMissing)
	}

	return failures
}

// Create provisions the account: hashed password, a random USD signup bonus,
// zero crypto balances and a ledger seeded with the bonus deposit. The new
// account is persisted before Create returns.
func (s *Service) Create(ctx context.Context, username, password string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, errorspkg.ErrInternal
	}

	now := time.Now()
	bonus := randompkg.DollarsBetween(s.bonusMin, s.bonusMax)

	account := domain.Account{
		Username:       strings.TrimSpace(username),
		HashedPassword: hashedPassword,
		NewUser:        true,
		Balances:       domain.Balances{USD: bonus},
		Transactions: []domain.Transaction{
			{
				Kind:       domain.TransactionDeposit,
				Coin:       coinpkg.USD,
				CoinAmount: bonus,
				USDAmount:  bonus,
				CreatedAt:  now,
			},
		},
		CreatedAt: now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return domain.Account{}, err
	}

	if err := s.repo.Flush(ctx); err != nil {
		l.Error().Err(err).Msg("flush after account creation")
		return domain.Account{}, err
	}

	return created, nil
}

// Get returns the account for the given username.
func (s *Service) Get(ctx context.Context, username string) (domain.Account, error) {
	return s.repo.Get(ctx, username)
}

// CheckPassword verifies the credential pair. Unknown usernames and wrong
// passwords yield the same error so callers cannot tell them apart.
func (s *Service) CheckPassword(ctx context.Context, username, password string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.repo.Get(ctx, username)
	if err != nil {
		l.Info().Str("username", username).Msg("sign-in attempt for unknown username")
		return domain.Account{}, domain.ErrInvalidCredentials
	}

	if err := passpkg.Check(password, account.HashedPassword); err != nil {
		l.Info().Str("username", username).Msg("sign-in attempt with wrong password")
		return domain.Account{}, domain.ErrInvalidCredentials
	}

	return account, nil
}

// ClearNewUser drops the welcome flag once the signup notice has been shown.
func (s *Service) ClearNewUser(ctx context.Context, username string) error {
	account, err := s.repo.Get(ctx, username)
	if err != nil {
		return err
	}

	if !account.NewUser {
		return nil
	}

	account.NewUser = false

	if _, err := s.repo.Update(ctx, account); err != nil {
		return err
	}

	return s.repo.Flush(ctx)
}
