package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wmazur/kantor/pkg/config"
	"github.com/wmazur/kantor/pkg/currency"
	"github.com/wmazur/kantor/pkg/domain"
	"github.com/wmazur/kantor/pkg/domain/account"
	"github.com/wmazur/kantor/pkg/service/ledger"
)

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) Open(ctx context.Context, firstName, lastName string, openingBalance decimal.Decimal) (uuid.UUID, error) {
	args := m.Called(ctx, firstName, lastName, openingBalance)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockLedger) Balance(ctx context.Context, id uuid.UUID) (*ledger.BalanceSnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.BalanceSnapshot), args.Error(1)
}

func (m *mockLedger) Exchange(ctx context.Context, id uuid.UUID, target currency.Code, amount decimal.Decimal) (*ledger.BalanceSnapshot, error) {
	args := m.Called(ctx, id, target, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.BalanceSnapshot), args.Error(1)
}

func newTestApp(svc Ledger) *fiber.App {
	app := fiber.New()
	Routes(app, svc, config.LedgerConfig{
		DomesticCurrency:  "PLN",
		ForeignCurrency:   "USD",
		MinOpeningBalance: "0.01",
	})
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func testSnapshot(id uuid.UUID) *ledger.BalanceSnapshot {
	return &ledger.BalanceSnapshot{
		AccountID: id,
		Owner:     account.Owner{FirstName: "Jan", LastName: "Kowalski"},
		Balances: map[currency.Code]decimal.Decimal{
			currency.PLN: decimal.RequireFromString("959.689"),
			currency.USD: decimal.RequireFromString("10.00"),
		},
	}
}

func TestOpenAccount(t *testing.T) {
	svc := &mockLedger{}
	app := newTestApp(svc)

	id := uuid.New()
	svc.On("Open", mock.Anything, "Jan", "Kowalski",
		mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.RequireFromString("1000.00"))
		})).Return(id, nil).Once()

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/accounts",
		`{"first_name":"Jan","last_name":"Kowalski","balance":1000.00}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestOpenAccount_BelowMinimum(t *testing.T) {
	svc := &mockLedger{}
	app := newTestApp(svc)

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/accounts",
		`{"first_name":"Jan","last_name":"Kowalski","balance":0}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "Open",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOpenAccount_MissingFields(t *testing.T) {
	svc := &mockLedger{}
	app := newTestApp(svc)

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/accounts",
		`{"balance":1000.00}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetBalance(t *testing.T) {
	svc := &mockLedger{}
	app := newTestApp(svc)

	id := uuid.New()
	svc.On("Balance", mock.Anything, id).Return(testSnapshot(id), nil).Once()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/accounts/"+id.String()+"/balance", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestGetBalance_InvalidID(t *testing.T) {
	svc := &mockLedger{}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/accounts/not-a-uuid/balance", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetBalance_NotFound(t *testing.T) {
	svc := &mockLedger{}
	app := newTestApp(svc)

	id := uuid.New()
	svc.On("Balance", mock.Anything, id).
		Return(nil, domain.ErrAccountNotFound).Once()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/accounts/"+id.String()+"/balance", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestExchange(t *testing.T) {
	svc := &mockLedger{}
	app := newTestApp(svc)

	id := uuid.New()
	svc.On("Exchange", mock.Anything, id, currency.USD,
		mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.RequireFromString("10.00"))
		})).Return(testSnapshot(id), nil).Once()

	resp, err := app.Test(jsonRequest(fiber.MethodPost,
		"/accounts/"+id.String()+"/exchange",
		`{"currency":"USD","amount":10.00}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestExchange_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"insufficient funds", &domain.InsufficientFundsError{
			Currency:  currency.PLN,
			Required:  decimal.RequireFromString("253.0813"),
			Available: decimal.RequireFromString("5.00"),
		}, fiber.StatusBadRequest},
		{"unresolved rate", domain.ErrUnresolvedRate, fiber.StatusNotFound},
		{"account not found", domain.ErrAccountNotFound, fiber.StatusNotFound},
		{"concurrent modification", domain.ErrConcurrentModification, fiber.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockLedger{}
			app := newTestApp(svc)

			id := uuid.New()
			svc.On("Exchange", mock.Anything, id, currency.USD, mock.Anything).
				Return(nil, tt.err).Once()

			resp, err := app.Test(jsonRequest(fiber.MethodPost,
				"/accounts/"+id.String()+"/exchange",
				`{"currency":"USD","amount":10.00}`))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestExchange_UnsupportedCurrency(t *testing.T) {
	svc := &mockLedger{}
	app := newTestApp(svc)

	id := uuid.New()
	resp, err := app.Test(jsonRequest(fiber.MethodPost,
		"/accounts/"+id.String()+"/exchange",
		`{"currency":"EUR","amount":10.00}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "Exchange",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExchange_MalformedBody(t *testing.T) {
	svc := &mockLedger{}
	app := newTestApp(svc)

	id := uuid.New()
	resp, err := app.Test(jsonRequest(fiber.MethodPost,
		"/accounts/"+id.String()+"/exchange",
		`{"currency":`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "Exchange",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExchange_NonPositiveAmount(t *testing.T) {
	svc := &mockLedger{}
	app := newTestApp(svc)

	id := uuid.New()
	resp, err := app.Test(jsonRequest(fiber.MethodPost,
		"/accounts/"+id.String()+"/exchange",
		`{"currency":"USD","amount":-10.00}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestExchange_TooManyDecimalPlaces(t *testing.T) {
	svc := &mockLedger{}
	app := newTestApp(svc)

	id := uuid.New()
	resp, err := app.Test(jsonRequest(fiber.MethodPost,
		"/accounts/"+id.String()+"/exchange",
		`{"currency":"USD","amount":10.123}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
