package tradeservice

import (
	"context"
	"testing"
	"time"

	"github.com/go-coinx/coinx/internal/domain"
	"github.com/go-coinx/coinx/internal/test"
	"github.com/go-coinx/coinx/pkg/coinpkg"
	"github.com/go-coinx/coinx/pkg/randompkg"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func snapshotBTC(price string) domain.PriceSnapshot {
	return domain.PriceSnapshot{
		Prices: map[string]decimal.Decimal{
			coinpkg.BTC: decimal.RequireFromString(price),
			coinpkg.ETH: decimal.RequireFromString("2500"),
		},
		FetchedAt: time.Now(),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidateBuy(t *testing.T) {
	t.Parallel()

	account := domain.Account{
		Username: "alice",
		Balances: domain.Balances{USD: dec("6320")},
	}
	snapshot := snapshotBTC("40000")

	testCases := []struct {
		name         string
		usd          string
		coinAmt      string
		coin         string
		wantFailures []string
	}{
		{
			name:    "OK",
			usd:     "1000",
			coinAmt: "0.025", // implied 40000, spot on
			coin:    coinpkg.BTC,
		},
		{
			name:    "OKImpliedPriceSlightlyHigh",
			usd:     "1004",
			coinAmt: "0.025", // implied 40160, +0.4%
			coin:    coinpkg.BTC,
		},
		{
			name:    "OKImpliedPriceSlightlyLow",
			usd:     "996",
			coinAmt: "0.025", // implied 39840, -0.4%
			coin:    coinpkg.BTC,
		},
		{
			name:         "StalePriceHigh",
			usd:          "1006",
			coinAmt:      "0.025", // implied 40240, +0.6%
			coin:         coinpkg.BTC,
			wantFailures: []string{MsgPriceAdjusted},
		},
		{
			name:         "StalePriceLow",
			usd:          "994",
			coinAmt:      "0.025", // implied 39760, -0.6%
			coin:         coinpkg.BTC,
			wantFailures: []string{MsgPriceAdjusted},
		},
		{
			name:         "UnsupportedCoin",
			usd:          "1000",
			coinAmt:      "0.025",
			coin:         "DOGE",
			wantFailures: []string{MsgCoinUnsupported},
		},
		{
			name:         "NegativeUSD",
			usd:          "-1",
			coinAmt:      "0.025",
			coin:         coinpkg.BTC,
			wantFailures: []string{MsgAmountInvalid, MsgMinimumBuy, MsgPriceAdjusted},
		},
		{
			name:         "ZeroCoinAmount",
			usd:          "1000",
			coinAmt:      "0",
			coin:         coinpkg.BTC,
			wantFailures: []string{MsgAmountInvalid},
		},
		{
			name:         "BelowMinimumPurchase",
			usd:          "0.5",
			coinAmt:      "0.0000125",
			coin:         coinpkg.BTC,
			wantFailures: []string{MsgMinimumBuy},
		},
		{
			name:         "InsufficientUSD",
			usd:          "6400",
			coinAmt:      "0.16",
			coin:         coinpkg.BTC,
			wantFailures: []string{MsgInsufficientUSD},
		},
		{
			name:    "ExactBalanceIsSpendable",
			usd:     "6320",
			coinAmt: "0.158",
			coin:    coinpkg.BTC,
		},
		{
			name:         "EverythingWrongAtOnce",
			usd:          "-1",
			coinAmt:      "-1",
			coin:         "DOGE",
			wantFailures: []string{MsgCoinUnsupported, MsgAmountInvalid, MsgMinimumBuy},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := New(NewMockRepo(ctrl))

			failures := service.ValidateBuy(dec(tc.usd), dec(tc.coinAmt), tc.coin, account, snapshot)

			require.ElementsMatch(t, tc.wantFailures, failures)
		})
	}
}

func TestValidateSell(t *testing.T) {
	t.Parallel()

	account := domain.Account{
		Username: "alice",
		Balances: domain.Balances{
			USD: dec("100"),
			BTC: dec("0.5"),
		},
	}
	snapshot := snapshotBTC("40000")

	testCases := []struct {
		name         string
		usd          string
		coinAmt      string
		coin         string
		wantFailures []string
	}{
		{
			name:    "OK",
			usd:     "4000",
			coinAmt: "0.1",
			coin:    coinpkg.BTC,
		},
		{
			name:         "StalePrice",
			usd:          "4030",
			coinAmt:      "0.1", // implied 40300, +0.75%
			coin:         coinpkg.BTC,
			wantFailures: []string{MsgPriceAdjusted},
		},
		{
			name:         "BelowCoinFloor",
			usd:          "0.02",
			coinAmt:      "0.0000005",
			coin:         coinpkg.BTC,
			wantFailures: []string{MsgMinimumSell},
		},
		{
			name:    "ExactCoinFloorIsFine",
			usd:     "0.04",
			coinAmt: "0.000001",
			coin:    coinpkg.BTC,
		},
		{
			name:         "InsufficientCoin",
			usd:          "24000",
			coinAmt:      "0.6",
			coin:         coinpkg.BTC,
			wantFailures: []string{"insufficient BTC balance"},
		},
		{
			name:    "ExactBalanceIsSellable",
			usd:     "20000",
			coinAmt: "0.5",
			coin:    coinpkg.BTC,
		},
		{
			name:         "NegativeAmounts",
			usd:          "-1",
			coinAmt:      "-1",
			coin:         coinpkg.BTC,
			wantFailures: []string{MsgAmountInvalid},
		},
		{
			name:         "NoETHToSell",
			usd:          "2500",
			coinAmt:      "1",
			coin:         coinpkg.ETH,
			wantFailures: []string{"insufficient ETH balance"},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := New(NewMockRepo(ctrl))

			failures := service.ValidateSell(dec(tc.usd), dec(tc.coinAmt), tc.coin, account, snapshot)

			require.ElementsMatch(t, tc.wantFailures, failures)
		})
	}
}

func TestBuy(t *testing.T) {
	t.Parallel()

	account, _ := test.RandomAccount(t, "alice")
	account.Balances = domain.Balances{USD: dec("6320")}

	repo := test.SeedRepo(t, account)
	service := New(repo)

	updated, err := service.Buy(context.Background(), account, coinpkg.BTC, dec("1000"), dec("0.025"))
	require.NoError(t, err)

	require.True(t, updated.Balances.USD.Equal(dec("5320")))
	require.True(t, updated.Balances.BTC.Equal(dec("0.025")))
	require.True(t, updated.Balances.ETH.IsZero())

	// Newest entry first: the buy sits at the head of the ledger view and
	// records the USD leg as a debit.
	history := updated.TransactionsNewestFirst()
	require.NotEmpty(t, history)
	require.Equal(t, domain.TransactionBuy, history[0].Kind)
	require.Equal(t, coinpkg.BTC, history[0].Coin)
	require.True(t, history[0].CoinAmount.Equal(dec("0.025")))
	require.True(t, history[0].USDAmount.Equal(dec("-1000")))

	persisted, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)
	require.True(t, persisted.Balances.USD.Equal(dec("5320")))
}

func TestSell(t *testing.T) {
	t.Parallel()

	account, _ := test.RandomAccount(t, "alice")
	account.Balances = domain.Balances{USD: dec("5320"), BTC: dec("0.025")}

	repo := test.SeedRepo(t, account)
	service := New(repo)

	updated, err := service.Sell(context.Background(), account, coinpkg.BTC, dec("1000"), dec("0.025"))
	require.NoError(t, err)

	require.True(t, updated.Balances.USD.Equal(dec("6320")))
	require.True(t, updated.Balances.BTC.IsZero())

	history := updated.TransactionsNewestFirst()
	require.NotEmpty(t, history)
	require.Equal(t, domain.TransactionSell, history[0].Kind)
	require.True(t, history[0].USDAmount.Equal(dec("1000")))
}

func TestBuyThenSellRestoresBalances(t *testing.T) {
	t.Parallel()

	account, _ := test.RandomAccount(t, "alice")
	start := account.Balances

	repo := test.SeedRepo(t, account)
	service := New(repo)

	usd := dec(randompkg.MoneyAmountBetween(100, 900))
	coinAmt := dec(randompkg.MoneyAmountBetween(0.05, 0.4))

	afterBuy, err := service.Buy(context.Background(), account, coinpkg.ETH, usd, coinAmt)
	require.NoError(t, err)

	afterSell, err := service.Sell(context.Background(), afterBuy, coinpkg.ETH, usd, coinAmt)
	require.NoError(t, err)

	require.True(t, afterSell.Balances.USD.Equal(start.USD))
	require.True(t, afterSell.Balances.ETH.IsZero())
	require.Len(t, afterSell.Transactions, len(account.Transactions)+2)
}

func TestBuyUpdateFailureSurfaces(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Times(1).
		Return(domain.Account{}, domain.ErrAccountNotFound)

	service := New(repo)

	_, err := service.Buy(context.Background(), domain.Account{Username: "ghost"}, coinpkg.BTC, dec("1000"), dec("0.025"))
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestSellFlushFailureSurfaces(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	account := domain.Account{
		Username: "alice",
		Balances: domain.Balances{BTC: dec("1")},
	}

	repo := NewMockRepo(ctrl)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, a domain.Account) (domain.Account, error) {
			return a, nil
		})
	repo.EXPECT().Flush(gomock.Any()).Times(1).Return(domain.ErrStorageUnavailable)

	service := New(repo)

	_, err := service.Sell(context.Background(), account, coinpkg.BTC, dec("40000"), dec("1"))
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
