// Package alphavantage fetches daily price series and quote snapshots from
// the Alpha Vantage query API.
package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

const (
	functionDaily = "TIME_SERIES_DAILY"
	functionQuote = "GLOBAL_QUOTE"

	maxErrorBody = 512
)

var (
	// ErrRateLimited is returned when the provider answers with a throttling
	// "Note" or "Information" message instead of data.
	ErrRateLimited = errors.New("alphavantage: rate limited")

	// ErrSymbolNotFound is returned when the provider rejects the symbol.
	ErrSymbolNotFound = errors.New("alphavantage: symbol not found")

	// ErrNoData is returned when the response carries no series or quote.
	ErrNoData = errors.New("alphavantage: no data returned")
)

// Observer receives one call per upstream request. metrics.Metrics satisfies it.
type Observer interface {
	ObserveUpstream(function, outcome string, elapsed time.Duration)
}

// Client talks to the Alpha Vantage HTTP API. It is safe for concurrent use.
type Client struct {
	cfg      config.AlphaVantageConfig
	http     *http.Client
	observer Observer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithObserver registers an upstream request observer.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient builds a client from the provider configuration.
func NewClient(cfg config.AlphaVantageConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if cfg.OutputSize == "" {
		cfg.OutputSize = "compact"
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope holds the informational fields Alpha Vantage returns in place of data.
type envelope struct {
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
}

func (e envelope) err() error {
	switch {
	case e.ErrorMessage != "":
		return fmt.Errorf("%w: %s", ErrSymbolNotFound, e.ErrorMessage)
	case e.Note != "":
		return fmt.Errorf("%w: %s", ErrRateLimited, e.Note)
	case e.Information != "":
		return fmt.Errorf("%w: %s", ErrRateLimited, e.Information)
	}
	return nil
}

type dailyResponse struct {
	envelope
	Series map[string]dailyBar `json:"Time Series (Daily)"`
}

type dailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

type quoteResponse struct {
	envelope
	Quote globalQuote `json:"Global Quote"`
}

type globalQuote struct {
	Symbol           string `json:"01. symbol"`
	Open             string `json:"02. open"`
	High             string `json:"03. high"`
	Low              string `json:"04. low"`
	Price            string `json:"05. price"`
	Volume           string `json:"06. volume"`
	LatestTradingDay string `json:"07. latest trading day"`
	PreviousClose    string `json:"08. previous close"`
	Change           string `json:"09. change"`
	ChangePercent    string `json:"10. change percent"`
}

// DailySeries fetches the daily time series for symbol and returns it sorted
// ascending by date.
func (c *Client) DailySeries(ctx context.Context, symbol string) (_ []models.PriceBar, err error) {
	start := time.Now()
	defer func() { c.observe(functionDaily, err, time.Since(start)) }()

	var resp dailyResponse
	params := url.Values{
		"function":   {functionDaily},
		"symbol":     {symbol},
		"outputsize": {c.cfg.OutputSize},
	}
	if err = c.query(ctx, params, &resp); err != nil {
		return nil, err
	}
	if err = resp.err(); err != nil {
		return nil, err
	}
	if len(resp.Series) == 0 {
		return nil, fmt.Errorf("%w: daily series for %s", ErrNoData, symbol)
	}

	bars := make([]models.PriceBar, 0, len(resp.Series))
	for day, raw := range resp.Series {
		bar, perr := raw.toModel(day)
		if perr != nil {
			return nil, fmt.Errorf("alphavantage: %s %s: %w", symbol, day, perr)
		}
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

// Quote fetches the latest quote snapshot for symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (_ *models.Quote, err error) {
	start := time.Now()
	defer func() { c.observe(functionQuote, err, time.Since(start)) }()

	var resp quoteResponse
	params := url.Values{
		"function": {functionQuote},
		"symbol":   {symbol},
	}
	if err = c.query(ctx, params, &resp); err != nil {
		return nil, err
	}
	if err = resp.err(); err != nil {
		return nil, err
	}
	if resp.Quote.Symbol == "" {
		return nil, fmt.Errorf("%w: quote for %s", ErrNoData, symbol)
	}

	q, perr := resp.Quote.toModel()
	if perr != nil {
		return nil, fmt.Errorf("alphavantage: quote %s: %w", symbol, perr)
	}
	return q, nil
}

// query performs one GET and decodes the JSON body into out. Callers observe
// the request once the payload has been validated.
func (c *Client) query(ctx context.Context, params url.Values, out any) error {
	function := params.Get("function")
	params.Set("apikey", c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("alphavantage: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("alphavantage: %s: %w", function, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("alphavantage: %s: status %d: %s", function, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("alphavantage: %s: decode: %w", function, err)
	}
	return nil
}

func (c *Client) observe(function string, err error, elapsed time.Duration) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveUpstream(function, Outcome(err), elapsed)
}

// Outcome maps an upstream error to a short metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrSymbolNotFound), errors.Is(err, ErrNoData):
		return "not_found"
	case IsTimeout(err), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "error"
	}
}

// IsTimeout reports whether err is a context deadline or a network timeout,
// such as the one raised when the HTTP client's Timeout elapses.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
