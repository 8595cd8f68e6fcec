package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags a ledger record with the event that produced it.
type TransactionKind string

// Kinds of balance-affecting events.
const (
	TransactionDeposit TransactionKind = "deposit"
	TransactionBuy     TransactionKind = "buy"
	TransactionSell    TransactionKind = "sell"
)

// Transaction is an immutable ledger record. USDAmount is signed: positive for
// inflow to the account, negative for outflow.
type Transaction struct {
	Kind       TransactionKind `json:"kind"`
	Coin       string          `json:"coin"`
	CoinAmount decimal.Decimal `json:"coin_amount"`
	USDAmount  decimal.Decimal `json:"usd_amount"`
	CreatedAt  time.Time       `json:"created_at"`
}
