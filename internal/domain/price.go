package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUpstreamUnavailable indicates that the external price API could not be reached.
var ErrUpstreamUnavailable = errors.New("price feed unavailable")

// PriceSnapshot maps coin symbols to their USD price at a single moment.
// Fallback marks snapshots built from the default price table after an
// upstream failure.
type PriceSnapshot struct {
	Prices    map[string]decimal.Decimal `json:"prices"`
	FetchedAt time.Time                  `json:"fetched_at"`
	Fallback  bool                       `json:"fallback"`
}

// Of returns the USD price for the given coin, zero if the coin is unknown.
func (s PriceSnapshot) Of(coin string) decimal.Decimal {
	return s.Prices[coin]
}

// PricePoint is one day of closing-price history for charting.
type PricePoint struct {
	Date  time.Time       `json:"date"`
	Close decimal.Decimal `json:"close"`
}
