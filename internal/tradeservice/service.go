// Package tradeservice manages business logic layer of buy and sell orders.
package tradeservice

import (
	"context"
	"fmt"
	"time"

	"github.com/go-coinx/coinx/internal/domain"
	"github.com/go-coinx/coinx/pkg/coinpkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Trade rejection messages. All applicable messages are reported together.
const (
	MsgPriceAdjusted    = "price has changed, please resubmit your order"
	MsgAmountInvalid    = "amounts must be valid non-negative numbers"
	MsgCoinUnsupported  = "coin is not supported"
	MsgMinimumBuy       = "minimum purchase is 1 USD"
	MsgMinimumSell      = "minimum sale is 0.000001 coin units"
	MsgInsufficientUSD  = "insufficient USD balance"
	MsgInsufficientCoin = "insufficient %s balance"
)

var (
	// priceTolerance is the accepted deviation between the submitted implied
	// unit price and the oracle price: 0.5% either way.
	priceTolerance = decimal.NewFromFloat(0.005)
	minBuyUSD      = decimal.NewFromInt(1)
	minSellCoin    = decimal.New(1, -6)
)

// Repo provides data access layer interface needed by trade service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package tradeservice
type Repo interface {
	Update(ctx context.Context, a domain.Account) (domain.Account, error)
	Flush(ctx context.Context) error
}

// Service facilitates trade validation and ledger application.
type Service struct {
	repo Repo
}

// New returns a trade service persisting through the given repo.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// withinTolerance reports whether the submitted usd/coinAmt pair implies a
// unit price within the tolerance band around the oracle price.
func withinTolerance(usd, coinAmt, oraclePrice decimal.Decimal) bool {
	implied := usd.Div(coinAmt)
	if implied.IsZero() {
		return false
	}

	return oraclePrice.Div(implied).Sub(decimal.New(1, 0)).Abs().LessThanOrEqual(priceTolerance)
}

// ValidateBuy checks a buy order against the account and the price snapshot,
// returning every failing reason at once. An empty result means the order may
// be applied.
func (s *Service) ValidateBuy(usd, coinAmt decimal.Decimal, coin string, account domain.Account, snapshot domain.PriceSnapshot) []string {
	var failures []string

	if !coinpkg.IsSupported(coin) {
		failures = append(failures, MsgCoinUnsupported)
	}

	if usd.IsNegative() || coinAmt.IsNegative() || coinAmt.IsZero() {
		failures = append(failures, MsgAmountInvalid)
	}

	if usd.LessThan(minBuyUSD) {
		failures = append(failures, MsgMinimumBuy)
	}

	if coinAmt.IsPositive() && !snapshot.Of(coin).IsZero() &&
		!withinTolerance(usd, coinAmt, snapshot.Of(coin)) {
		failures = append(failures, MsgPriceAdjusted)
	}

	if usd.GreaterThan(account.Balances.USD) {
		failures = append(failures, MsgInsufficientUSD)
	}

	return failures
}

// ValidateSell mirrors ValidateBuy with the coin balance in place of the USD
// balance and the small coin floor in place of the USD floor.
func (s *Service) ValidateSell(usd, coinAmt decimal.Decimal, coin string, account domain.Account, snapshot domain.PriceSnapshot) []string {
	var failures []string

	if !coinpkg.IsSupported(coin) {
		failures = append(failures, MsgCoinUnsupported)
	}

	if usd.IsNegative() || coinAmt.IsNegative() || coinAmt.IsZero() {
		failures = append(failures, MsgAmountInvalid)
	}

	if coinAmt.IsPositive() && coinAmt.LessThan(minSellCoin) {
		failures = append(failures, MsgMinimumSell)
	}

	if coinAmt.IsPositive() && !snapshot.Of(coin).IsZero() &&
		!withinTolerance(usd, coinAmt, snapshot.Of(coin)) {
		failures = append(failures, MsgPriceAdjusted)
	}

	if coinAmt.GreaterThan(account.Balances.Of(coin)) {
		failures = append(failures, fmt.Sprintf(MsgInsufficientCoin, coin))
	}

	return failures
}

// Buy debits USD, credits the coin and appends the buy transaction, then
// persists. Call only after ValidateBuy returned no failures.
//
// A flush failure is fatal for the operation: the in-memory mutation cannot
// be rolled back, so the error must reach the caller instead of a silent
// success. The atomic rewrite keeps the on-disk table intact either way.
func (s *Service) Buy(ctx context.Context, account domain.Account, coin string, usd, coinAmt decimal.Decimal) (domain.Account, error) {
	account.Balances = account.Balances.
		With(coinpkg.USD, account.Balances.USD.Sub(usd)).
		With(coin, account.Balances.Of(coin).Add(coinAmt))

	account.Transactions = append(account.Transactions, domain.Transaction{
		Kind:       domain.TransactionBuy,
		Coin:       coin,
		CoinAmount: coinAmt,
		USDAmount:  usd.Neg(),
		CreatedAt:  time.Now(),
	})

	return s.persist(ctx, account)
}

// Sell credits USD, debits the coin and appends the sell transaction, then
// persists. Call only after ValidateSell returned no failures.
func (s *Service) Sell(ctx context.Context, account domain.Account, coin string, usd, coinAmt decimal.Decimal) (domain.Account, error) {
	account.Balances = account.Balances.
		With(coinpkg.USD, account.Balances.USD.Add(usd)).
		With(coin, account.Balances.Of(coin).Sub(coinAmt))

	account.Transactions = append(account.Transactions, domain.Transaction{
		Kind:       domain.TransactionSell,
		Coin:       coin,
		CoinAmount: coinAmt,
		USDAmount:  usd,
		CreatedAt:  time.Now(),
	})

	return s.persist(ctx, account)
}

func (s *Service) persist(ctx context.Context, account domain.Account) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	updated, err := s.repo.Update(ctx, account)
	if err != nil {
		l.Error().Err(err).Str("username", account.Username).Send()
		return domain.Account{}, err
	}

	if err := s.repo.Flush(ctx); err != nil {
		l.Error().Err(err).Str("username", account.Username).Msg("flush after trade")
		return domain.Account{}, err
	}

	return updated, nil
}
