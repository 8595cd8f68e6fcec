// Package coinpkg defines the closed set of coins the exchange trades.
package coinpkg

import (
	"github.com/go-playground/validator/v10"
)

// Constants for all supported coin symbols. USD is the cash side of every
// trade, never a tradeable coin itself.
const (
	USD = "USD"
	BTC = "BTC"
	ETH = "ETH"
)

// Coins holds all the tradeable coin symbols.
var Coins = []string{
	BTC,
	ETH,
}

// IsSupported returns true if the coin symbol is tradeable.
func IsSupported(coin string) bool {
	for _, c := range Coins {
		if c == coin {
			return true
		}
	}

	return false
}

// ValidCoin validates whether a bound request field names a tradeable coin.
var ValidCoin validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return IsSupported(c)
	}
	return false
}
