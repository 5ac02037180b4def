// Package frankfurter reads exchange rates from the Frankfurter API
// (https://www.frankfurter.app), which republishes the ECB reference rates.
package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_planner_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public Frankfurter endpoint.
const DefaultBaseURL = "https://api.frankfurter.app"

// maxBodyBytes bounds how much of an upstream response is read.
const maxBodyBytes = 1 << 20

// Client implements the exchange rate provider port over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Ensure interface conformance
var _ portsrepo.ExchangeRateProvider = (*Client)(nil)

// NewClient creates a client for baseURL whose requests never take longer than timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type ratesPayload struct {
	Amount decimal.Decimal            `json:"amount"`
	Base   string                     `json:"base"`
	Date   string                     `json:"date"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

// LatestRates fetches /latest?from=base[&to=symbols].
func (c *Client) LatestRates(ctx context.Context, base string, symbols ...string) (*domain.ExchangeRates, error) {
	return c.fetch(ctx, "latest", base, symbols)
}

// HistoricalRates fetches /{YYYY-MM-DD}?from=base[&to=symbols].
func (c *Client) HistoricalRates(ctx context.Context, day time.Time, base string, symbols ...string) (*domain.ExchangeRates, error) {
	return c.fetch(ctx, day.Format(time.DateOnly), base, symbols)
}

func (c *Client) fetch(ctx context.Context, path, base string, symbols []string) (*domain.ExchangeRates, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	q := url.Values{}
	q.Set("from", base)
	if len(symbols) > 0 {
		q.Set("to", strings.Join(symbols, ","))
	}
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewConversionError("build rate request", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Exchange rate request failed", slog.String("url", endpoint), slog.String("error", err.Error()))
		return nil, apperrors.NewConversionError("exchange rate request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.NewConversionError("read exchange rate response", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Exchange rate upstream returned an error",
			slog.String("url", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(string(body), 200)))
		return nil, apperrors.NewConversionError(fmt.Sprintf("exchange rate upstream returned status %d", resp.StatusCode), nil)
	}

	var payload ratesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.NewConversionError("decode exchange rate response", err)
	}
	if payload.Rates == nil {
		payload.Rates = map[string]decimal.Decimal{}
	}

	logger.Debug("Exchange rates fetched",
		slog.String("base", payload.Base),
		slog.String("date", payload.Date),
		slog.Int("quotes", len(payload.Rates)),
		slog.Duration("latency", time.Since(start)))

	return &domain.ExchangeRates{
		Base:  payload.Base,
		Date:  payload.Date,
		Rates: payload.Rates,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
