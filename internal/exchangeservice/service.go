// Package exchangeservice composes the core services behind the surface the
// presentation layer calls: sign-up, sign-in/out, buy, sell and price lookups.
//
// Every operation is a function of (account table, session, input) and returns
// the updated session alongside its result; no session state hides in here.
package exchangeservice

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-coinx/coinx/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// UserServicer provides the account provisioning interface needed by the facade.
//
//go:generate mockgen -source service.go -destination service_mock.go -package exchangeservice
type UserServicer interface {
	ValidateSignup(ctx context.Context, username, password string, agreementAccepted bool) []string
	Create(ctx context.Context, username, password string) (domain.Account, error)
	Get(ctx context.Context, username string) (domain.Account, error)
	ClearNewUser(ctx context.Context, username string) error
}

// SessionServicer provides the session state machine interface needed by the facade.
type SessionServicer interface {
	SignIn(ctx context.Context, sess domain.Session, username, password string) (domain.Session, domain.Account, error)
	Check(ctx context.Context, sess domain.Session) (domain.Session, error)
	SignOut(sess domain.Session) domain.Session
	IsSignedIn(sess domain.Session) bool
	CurrentUsername(sess domain.Session) string
}

// TradeServicer provides the trade validation and ledger interface needed by the facade.
type TradeServicer interface {
	ValidateBuy(usd, coinAmt decimal.Decimal, coin string, account domain.Account, snapshot domain.PriceSnapshot) []string
	ValidateSell(usd, coinAmt decimal.Decimal, coin string, account domain.Account, snapshot domain.PriceSnapshot) []string
	Buy(ctx context.Context, account domain.Account, coin string, usd, coinAmt decimal.Decimal) (domain.Account, error)
	Sell(ctx context.Context, account domain.Account, coin string, usd, coinAmt decimal.Decimal) (domain.Account, error)
}

// Oracle provides the price feed interface needed by the facade.
type Oracle interface {
	Current(ctx context.Context) (domain.PriceSnapshot, error)
	Fallback() domain.PriceSnapshot
	Historical(ctx context.Context, coin string, days int) ([]domain.PricePoint, error)
}

// Service facilitates the exchange facade logic.
type Service struct {
	users    UserServicer
	sessions SessionServicer
	trades   TradeServicer
	oracle   Oracle

	// mu serializes every load-mutate-flush sequence against the shared
	// account table so concurrent handlers cannot lose updates.
	mu sync.Mutex
}

// New returns the exchange facade.
func New(users UserServicer, sessions SessionServicer, trades TradeServicer, oracle Oracle) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		trades:   trades,
		oracle:   oracle,
	}
}

// SignUp validates the signup fields, provisions the account and signs the new
// user in. Validation failures come back as one ValidationError carrying every
// message.
func (s *Service) SignUp(ctx context.Context, sess domain.Session, username, password string, agreementAccepted bool) (domain.Session, domain.WithoutPassword, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if failures := s.users.ValidateSignup(ctx, username, password, agreementAccepted); len(failures) > 0 {
		return sess, domain.WithoutPassword{}, &domain.ValidationError{Failures: failures}
	}

	account, err := s.users.Create(ctx, username, password)
	if err != nil {
		return sess, domain.WithoutPassword{}, err
	}

	sess, _, err = s.sessions.SignIn(ctx, sess, account.Username, password)
	if err != nil {
		return sess, domain.WithoutPassword{}, err
	}

	return sess, domain.NewWithoutPassword(account), nil
}

// SignIn authenticates the session. For a first sign-in after signup it
// returns the one-time welcome notice naming the bonus and clears the flag.
func (s *Service) SignIn(ctx context.Context, sess domain.Session, username, password string) (domain.Session, domain.WithoutPassword, string, error) {
	sess, account, err := s.sessions.SignIn(ctx, sess, username, password)
	if err != nil {
		return sess, domain.WithoutPassword{}, "", err
	}

	var notice string

	if account.NewUser {
		notice = fmt.Sprintf("Welcome! A $%s signup bonus has been deposited to your account.", signupBonus(account))

		// Clearing the flag rewrites the shared account table, so it takes
		// the same lock as every other load-mutate-flush sequence. Without
		// it a sign-in racing a trade on the same account could overwrite
		// the trade's committed write with stale state.
		s.mu.Lock()
		err := s.users.ClearNewUser(ctx, account.Username)
		s.mu.Unlock()

		if err != nil {
			l := zerolog.Ctx(ctx)
			l.Error().Err(err).Str("username", account.Username).Msg("clear welcome flag")
		} else {
			account.NewUser = false
		}
	}

	return sess, domain.NewWithoutPassword(account), notice, nil
}

// signupBonus recovers the bonus amount from the seeded deposit transaction.
func signupBonus(account domain.Account) decimal.Decimal {
	for _, tx := range account.Transactions {
		if tx.Kind == domain.TransactionDeposit {
			return tx.USDAmount
		}
	}

	return decimal.Zero
}

// SignOut returns the session to the anonymous state.
func (s *Service) SignOut(sess domain.Session) domain.Session {
	return s.sessions.SignOut(sess)
}

// IsSignedIn reports whether the session is authenticated and not expired.
func (s *Service) IsSignedIn(sess domain.Session) bool {
	return s.sessions.IsSignedIn(sess)
}

// CurrentUser returns the signed-in user's account data after the usual
// idle-timeout check.
func (s *Service) CurrentUser(ctx context.Context, sess domain.Session) (domain.Session, domain.WithoutPassword, error) {
	sess, err := s.sessions.Check(ctx, sess)
	if err != nil {
		return sess, domain.WithoutPassword{}, err
	}

	account, err := s.users.Get(ctx, sess.Username)
	if err != nil {
		return sess, domain.WithoutPassword{}, err
	}

	return sess, domain.NewWithoutPassword(account), nil
}

// Buy validates and applies a buy order submitted as raw form strings.
func (s *Service) Buy(ctx context.Context, sess domain.Session, coin, usdAmount, coinAmount string) (domain.Session, domain.WithoutPassword, error) {
	return s.trade(ctx, sess, coin, usdAmount, coinAmount, s.trades.ValidateBuy, s.trades.Buy)
}

// Sell validates and applies a sell order submitted as raw form strings.
func (s *Service) Sell(ctx context.Context, sess domain.Session, coin, usdAmount, coinAmount string) (domain.Session, domain.WithoutPassword, error) {
	return s.trade(ctx, sess, coin, usdAmount, coinAmount, s.trades.ValidateSell, s.trades.Sell)
}

// trade runs the shared buy/sell sequence: auth check, amount parsing,
// snapshot fetch (fallback on upstream failure), validation, application.
func (s *Service) trade(
	ctx context.Context,
	sess domain.Session,
	coin, usdAmount, coinAmount string,
	validate func(usd, coinAmt decimal.Decimal, coin string, account domain.Account, snapshot domain.PriceSnapshot) []string,
	apply func(ctx context.Context, account domain.Account, coin string, usd, coinAmt decimal.Decimal) (domain.Account, error),
) (domain.Session, domain.WithoutPassword, error) {
	sess, err := s.sessions.Check(ctx, sess)
	if err != nil {
		return sess, domain.WithoutPassword{}, err
	}

	usd, coinAmt, err := parseAmounts(usdAmount, coinAmount)
	if err != nil {
		return sess, domain.WithoutPassword{}, err
	}

	snapshot := s.CurrentPrices(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.users.Get(ctx, sess.Username)
	if err != nil {
		return sess, domain.WithoutPassword{}, err
	}

	if failures := validate(usd, coinAmt, coin, account, snapshot); len(failures) > 0 {
		return sess, domain.WithoutPassword{}, &domain.ValidationError{Failures: failures}
	}

	account, err = apply(ctx, account, coin, usd, coinAmt)
	if err != nil {
		return sess, domain.WithoutPassword{}, err
	}

	return sess, domain.NewWithoutPassword(account), nil
}

// parseAmounts converts the raw form amounts, rejecting anything that is not
// a plain decimal number.
func parseAmounts(usdAmount, coinAmount string) (decimal.Decimal, decimal.Decimal, error) {
	var failures []string

	usd, err := decimal.NewFromString(usdAmount)
	if err != nil {
		failures = append(failures, fmt.Sprintf("USD amount %q is not a number", usdAmount))
	}

	coinAmt, err := decimal.NewFromString(coinAmount)
	if err != nil {
		failures = append(failures, fmt.Sprintf("coin amount %q is not a number", coinAmount))
	}

	if len(failures) > 0 {
		return decimal.Decimal{}, decimal.Decimal{}, &domain.ValidationError{Failures: failures}
	}

	return usd, coinAmt, nil
}

// CurrentPrices returns the oracle snapshot, substituting the fixed fallback
// table when the upstream is unreachable so trading stays available. Callers
// can detect degraded mode through the snapshot's Fallback flag.
func (s *Service) CurrentPrices(ctx context.Context) domain.PriceSnapshot {
	snapshot, err := s.oracle.Current(ctx)
	if err != nil {
		l := zerolog.Ctx(ctx)
		l.Warn().Err(err).Msg("price feed unreachable, using fallback prices")

		return s.oracle.Fallback()
	}

	return snapshot
}

// HistoricalPrices returns the coin's daily closing prices for charting.
// Upstream failures propagate: no balance mutation depends on history.
func (s *Service) HistoricalPrices(ctx context.Context, coin string, days int) ([]domain.PricePoint, error) {
	return s.oracle.Historical(ctx, coin, days)
}
