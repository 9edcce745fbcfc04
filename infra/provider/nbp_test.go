package provider

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmazur/kantor/pkg/config"
	"github.com/wmazur/kantor/pkg/currency"
	"github.com/wmazur/kantor/pkg/provider"
)

const tableCPayload = `{
	"table": "C",
	"currency": "dolar amerykański",
	"code": "USD",
	"rates": [
		{
			"no": "064/C/NBP/2026",
			"effectiveDate": "2026-04-02",
			"bid": 3.9513,
			"ask": 4.0311
		}
	]
}`

func newTestClient(serverURL string) *NBPClient {
	return NewNBPClient(
		config.NBPConfig{BaseURL: serverURL, HTTPTimeout: time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestNBPClient_Quote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchangerates/rates/c/usd/", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tableCPayload))
	}))
	defer server.Close()

	quote, err := newTestClient(server.URL).Quote(context.Background(), currency.USD)
	require.NoError(t, err)
	assert.Equal(t, currency.USD, quote.Code)
	assert.True(t, quote.Bid.Equal(decimal.RequireFromString("3.9513")))
	assert.True(t, quote.Ask.Equal(decimal.RequireFromString("4.0311")))
	assert.Equal(t, time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), quote.EffectiveDate)
}

func TestNBPClient_Quote_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 NotFound - Not Found - Brak danych", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Quote(context.Background(), currency.Code("XXX"))
	require.ErrorIs(t, err, provider.ErrNoQuote)
}

func TestNBPClient_Quote_EmptyRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"table":"C","code":"USD","rates":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Quote(context.Background(), currency.USD)
	require.ErrorIs(t, err, provider.ErrNoQuote)
}

func TestNBPClient_Quote_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Quote(context.Background(), currency.USD)
	require.Error(t, err)
	assert.NotErrorIs(t, err, provider.ErrNoQuote)
}

func TestNBPClient_Quote_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates": [`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Quote(context.Background(), currency.USD)
	require.Error(t, err)
}
