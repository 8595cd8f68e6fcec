// Package priceoracle fetches current and historical coin prices from the
// external price API.
package priceoracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-coinx/coinx/internal/domain"
	"github.com/go-coinx/coinx/pkg/coinpkg"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL points at the public price API the original deployment used.
const DefaultBaseURL = "https://min-api.cryptocompare.com"

// fallbackUSD is the fixed default price table substituted when the upstream
// is unreachable, so trading pages stay renderable offline.
var fallbackUSD = map[string]string{
	coinpkg.BTC: "40000",
	coinpkg.ETH: "2500",
}

// Client calls the external price API with a bounded timeout.
type Client struct {
	http    *http.Client
	baseURL string
}

// New returns a price API client. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Current fetches the USD price of every supported coin.
//
// Any network or decode failure is returned as a typed error; substituting the
// fallback table is the caller's policy, not the client's.
func (c *Client) Current(ctx context.Context) (domain.PriceSnapshot, error) {
	addr := fmt.Sprintf("%s/data/pricemulti?fsyms=%s&tsyms=USD",
		c.baseURL, strings.Join(coinpkg.Coins, ","))

	// Response schema: {"BTC":{"USD":12345.6},"ETH":{"USD":2345.6}}
	payload := make(map[string]map[string]decimal.Decimal)
	if err := c.getJSON(ctx, addr, &payload); err != nil {
		return domain.PriceSnapshot{}, err
	}

	prices := make(map[string]decimal.Decimal, len(coinpkg.Coins))

	for _, coin := range coinpkg.Coins {
		usd, ok := payload[coin]["USD"]
		if !ok {
			return domain.PriceSnapshot{}, fmt.Errorf("%w: no USD price for %s in response", domain.ErrUpstreamUnavailable, coin)
		}

		prices[coin] = usd
	}

	return domain.PriceSnapshot{
		Prices:    prices,
		FetchedAt: time.Now(),
	}, nil
}

// Fallback returns the fixed default snapshot, marked as such.
func (c *Client) Fallback() domain.PriceSnapshot {
	prices := make(map[string]decimal.Decimal, len(fallbackUSD))
	for coin, usd := range fallbackUSD {
		prices[coin] = decimal.RequireFromString(usd)
	}

	return domain.PriceSnapshot{
		Prices:    prices,
		FetchedAt: time.Now(),
		Fallback:  true,
	}
}

// Historical fetches the last days daily closing prices for the coin, oldest
// first. Failures propagate: nothing that moves balances depends on history,
// so there is no fallback here.
func (c *Client) Historical(ctx context.Context, coin string, days int) ([]domain.PricePoint, error) {
	if !coinpkg.IsSupported(coin) {
		return nil, fmt.Errorf("unsupported coin %q", coin)
	}

	addr := fmt.Sprintf("%s/data/v2/histoday?fsym=%s&tsym=USD&limit=%d", c.baseURL, coin, days)

	// Response schema: {"Data":{"Data":[{"time":1700000000,"close":12345.6},...]}}
	var payload struct {
		Data struct {
			Data []struct {
				Time  int64           `json:"time"`
				Close decimal.Decimal `json:"close"`
			} `json:"Data"`
		} `json:"Data"`
	}

	if err := c.getJSON(ctx, addr, &payload); err != nil {
		return nil, err
	}

	points := make([]domain.PricePoint, 0, len(payload.Data.Data))
	for _, rec := range payload.Data.Data {
		points = append(points, domain.PricePoint{
			Date:  time.Unix(rec.Time, 0).UTC(),
			Close: rec.Close,
		})
	}

	return points, nil
}

// getJSON performs an HTTP GET and unmarshals the JSON response into data.
func (c *Client) getJSON(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %s", domain.ErrUpstreamUnavailable, resp.Request.URL.Host, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	return nil
}
