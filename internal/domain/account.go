// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/go-coinx/coinx/pkg/coinpkg"
	"github.com/shopspring/decimal"
)

var (
	// ErrUsernameAlreadyExists indicates that the account with the given username already exists.
	ErrUsernameAlreadyExists = errors.New("username already taken")
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrStorageUnavailable indicates that the account table cannot be read or
	// written. It is fatal: proceeding without the table could wipe accounts.
	ErrStorageUnavailable = errors.New("account storage unavailable")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// ValidationError carries every reason a submission was rejected, so the
// caller can render all of them at once.
type ValidationError struct {
	Failures []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Failures, "; ")
}

// Balances holds the amount an account owns of each supported symbol.
// The symbol set is closed; unknown symbols read as zero.
type Balances struct {
	USD decimal.Decimal `json:"USD"`
	BTC decimal.Decimal `json:"BTC"`
	ETH decimal.Decimal `json:"ETH"`
}

// Of returns the balance held for the given symbol.
func (b Balances) Of(symbol string) decimal.Decimal {
	switch symbol {
	case coinpkg.USD:
		return b.USD
	case coinpkg.BTC:
		return b.BTC
	case coinpkg.ETH:
		return b.ETH
	}

	return decimal.Zero
}

// With returns a copy of the balances with the given symbol replaced by amount.
// Unknown symbols leave the balances unchanged.
func (b Balances) With(symbol string, amount decimal.Decimal) Balances {
	switch symbol {
	case coinpkg.USD:
		b.USD = amount
	case coinpkg.BTC:
		b.BTC = amount
	case coinpkg.ETH:
		b.ETH = amount
	}

	return b
}

// Account holds a user's credentials, balances and transaction history.
type Account struct {
	Username       string        `json:"username"`
	HashedPassword string        `json:"hashed_password"`
	NewUser        bool          `json:"new_user"`
	Balances       Balances      `json:"balances"`
	Transactions   []Transaction `json:"transactions"`
	CreatedAt      time.Time     `json:"created_at"`
}

// Clone returns a deep copy so callers cannot mutate stored state in place.
func (a Account) Clone() Account {
	c := a
	c.Transactions = make([]Transaction, len(a.Transactions))
	copy(c.Transactions, a.Transactions)

	return c
}

// TransactionsNewestFirst returns the ledger sorted most recent first for display.
func (a Account) TransactionsNewestFirst() []Transaction {
	txs := make([]Transaction, len(a.Transactions))
	copy(txs, a.Transactions)

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})

	return txs
}

// WithoutPassword is Account data excluding the password hash.
type WithoutPassword struct {
	Username     string        `json:"username"`
	NewUser      bool          `json:"new_user"`
	Balances     Balances      `json:"balances"`
	Transactions []Transaction `json:"transactions"`
	CreatedAt    time.Time     `json:"created_at"`
}

// NewWithoutPassword returns account data with removed sensitive data and the
// ledger ordered for display.
func NewWithoutPassword(a Account) WithoutPassword {
	return WithoutPassword{
		Username:     a.Username,
		NewUser:      a.NewUser,
		Balances:     a.Balances,
		Transactions: a.TransactionsNewestFirst(),
		CreatedAt:    a.CreatedAt,
	}
}
