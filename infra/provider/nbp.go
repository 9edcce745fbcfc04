// Package provider contains rate provider implementations: the NBP Web API
// client and a TTL cache decorator.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wmazur/kantor/pkg/config"
	"github.com/wmazur/kantor/pkg/currency"
	"github.com/wmazur/kantor/pkg/provider"
)

const effectiveDateLayout = "2006-01-02"

// NBPClient fetches bid/ask quotes from the NBP Web API, table C.
// See https://api.nbp.pl/en.html.
type NBPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// nbpRatesResponse is the table C response for a single currency.
// Example: {"table":"C","currency":"dolar amerykański","code":"USD",
// "rates":[{"no":"064/C/NBP/2026","effectiveDate":"2026-04-02",
// "bid":3.9513,"ask":4.0311}]}
type nbpRatesResponse struct {
	Table    string    `json:"table"`
	Currency string    `json:"currency"`
	Code     string    `json:"code"`
	Rates    []nbpRate `json:"rates"`
}

type nbpRate struct {
	No            string          `json:"no"`
	EffectiveDate string          `json:"effectiveDate"`
	Bid           decimal.Decimal `json:"bid"`
	Ask           decimal.Decimal `json:"ask"`
}

// NewNBPClient creates an NBP client using config.
func NewNBPClient(cfg config.NBPConfig, logger *slog.Logger) *NBPClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &NBPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// Quote fetches the latest table C quote for the given currency. A 404 from
// the API (unknown currency or no data) maps to provider.ErrNoQuote; so does
// an empty rates list.
func (c *NBPClient) Quote(ctx context.Context, code currency.Code) (*provider.Quote, error) {
	url := fmt.Sprintf(
		"%s/exchangerates/rates/c/%s/?format=json",
		c.baseURL, strings.ToLower(string(code)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Warn("NBP has no quote for currency", "code", code)
		return nil, provider.ErrNoQuote
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("NBP returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp nbpRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(apiResp.Rates) == 0 {
		return nil, provider.ErrNoQuote
	}

	rate := apiResp.Rates[0]
	effectiveDate, err := time.Parse(effectiveDateLayout, rate.EffectiveDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse effective date %q: %w", rate.EffectiveDate, err)
	}

	c.logger.Debug("fetched NBP quote",
		"code", code,
		"bid", rate.Bid,
		"ask", rate.Ask,
		"effective_date", rate.EffectiveDate,
	)
	return &provider.Quote{
		Code:          currency.Code(apiResp.Code),
		EffectiveDate: effectiveDate,
		Bid:           rate.Bid,
		Ask:           rate.Ask,
	}, nil
}

// Name returns the provider's name for logging.
func (c *NBPClient) Name() string {
	return "nbp"
}
