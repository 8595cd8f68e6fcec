// Package test provides shared test helpers.
package test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-coinx/coinx/internal/accountrepo"
	"github.com/go-coinx/coinx/internal/domain"
	"github.com/go-coinx/coinx/pkg/passpkg"
	"github.com/go-coinx/coinx/pkg/randompkg"
	"github.com/shopspring/decimal"
)

// RandomAccount returns an account with a random USD balance and the plain
// password matching its hash.
func RandomAccount(t *testing.T, username string) (domain.Account, string) {
	t.Helper()

	password := randompkg.String(10)

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		t.Fatalf("passpkg.Hash(password) returned error: %v", err)
	}

	now := time.Now().Truncate(time.Second).UTC()
	bonus := randompkg.DollarsBetween(1000, 9999)

	account := domain.Account{
		Username:       username,
		HashedPassword: hashedPassword,
		Balances:       domain.Balances{USD: bonus, BTC: decimal.Zero, ETH: decimal.Zero},
		Transactions: []domain.Transaction{
			{
				Kind:       domain.TransactionDeposit,
				Coin:       "USD",
				CoinAmount: bonus,
				USDAmount:  bonus,
				CreatedAt:  now,
			},
		},
		CreatedAt: now,
	}

	return account, password
}

// SeedRepo writes the given accounts into a fresh table file and returns a
// loaded repo backed by it.
func SeedRepo(t *testing.T, accounts ...domain.Account) *accountrepo.RepoFile {
	t.Helper()

	table := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		table[a.Username] = a
	}

	data, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("json.Marshal(table) returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "accounts.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("os.WriteFile(%q) returned error: %v", path, err)
	}

	repo := accountrepo.NewRepoFile(path)
	if err := repo.Load(context.Background()); err != nil {
		t.Fatalf("repo.Load() returned error: %v", err)
	}

	return repo
}
