// Package account exposes the ledger over HTTP: open account, query
// balance, and exchange currency. Input-shape validation lives here; the
// core only sees well-formed values.
package account

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wmazur/kantor/pkg/config"
	"github.com/wmazur/kantor/pkg/currency"
	"github.com/wmazur/kantor/pkg/service/ledger"
	"github.com/wmazur/kantor/webapi/common"
)

// Ledger is the slice of the ledger service the handlers consume.
type Ledger interface {
	Open(ctx context.Context, firstName, lastName string, openingBalance decimal.Decimal) (uuid.UUID, error)
	Balance(ctx context.Context, id uuid.UUID) (*ledger.BalanceSnapshot, error)
	Exchange(ctx context.Context, id uuid.UUID, target currency.Code, amount decimal.Decimal) (*ledger.BalanceSnapshot, error)
}

// Routes registers HTTP routes for account operations.
//
// Routes:
//   - POST /accounts              : Open a new account.
//   - GET  /accounts/:id/balance  : Retrieve the account's balances.
//   - POST /accounts/:id/exchange : Exchange currency within the account.
func Routes(app *fiber.App, svc Ledger, cfg config.LedgerConfig) {
	app.Post("/accounts", OpenAccount(svc, cfg))
	app.Get("/accounts/:id/balance", GetBalance(svc))
	app.Post("/accounts/:id/exchange", Exchange(svc))
}

// OpenAccount returns a handler creating a new account with an opening
// balance in the domestic currency.
// @Summary Open a new account
// @Description Creates an account whose wallet holds the opening balance in the domestic currency. Returns the new account id.
// @Tags accounts
// @Accept json
// @Produce json
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts [post]
func OpenAccount(svc Ledger, cfg config.LedgerConfig) fiber.Handler {
	minBalance, err := decimal.NewFromString(cfg.MinOpeningBalance)
	if err != nil {
		minBalance = decimal.New(1, -currency.DisplayDecimals)
	}
	return func(c *fiber.Ctx) error {
		input, bindErr := common.BindAndValidate[OpenAccountRequest](c)
		if bindErr != nil {
			return nil // 400 problem details already written
		}
		if input.Balance.LessThan(minBalance) {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid opening balance",
				"opening balance must be at least "+minBalance.String())
		}

		id, err := svc.Open(c.Context(), input.FirstName, input.LastName, input.Balance)
		if err != nil {
			log.Errorf("Failed to open account: %v", err)
			return common.ProblemDetailsFromError(c, "Failed to open account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created",
			OpenAccountResponse{AccountID: id.String()})
	}
}

// GetBalance returns a handler for querying the owner and wallet snapshot.
// @Summary Get account balance
// @Description Returns the owner and per-currency balances of the account.
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response "Account balance"
// @Failure 400 {object} common.ProblemDetails "Invalid account id"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/{id}/balance [get]
func GetBalance(svc Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid account id", err.Error())
		}

		snapshot, err := svc.Balance(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to get balance for account %s: %v", id, err)
			return common.ProblemDetailsFromError(c, "Failed to get balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account balance",
			newBalanceResponse(snapshot))
	}
}

// Exchange returns a handler converting the requested amount of target
// currency within the account's wallet.
// @Summary Exchange currency
// @Description Acquires the requested amount of the target currency, debiting the source balance at the current quote.
// @Tags accounts
// @Accept json
// @Produce json
// @Success 200 {object} common.Response "Updated balances"
// @Failure 400 {object} common.ProblemDetails "Invalid request or insufficient funds"
// @Failure 404 {object} common.ProblemDetails "Account or exchange rate not found"
// @Failure 409 {object} common.ProblemDetails "Concurrent modification, retry"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/{id}/exchange [post]
func Exchange(svc Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid account id", err.Error())
		}
		input, bindErr := common.BindAndValidate[ExchangeRequest](c)
		if bindErr != nil {
			return nil // 400 problem details already written
		}
		target := currency.Code(input.Currency)
		if !currency.IsSupported(target) {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Unsupported currency", "supported currencies: PLN, USD")
		}
		if !input.Amount.IsPositive() {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid amount", "amount must be positive")
		}
		if input.Amount.Exponent() < -currency.DisplayDecimals {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid amount", "amount must have at most 2 decimal places")
		}

		snapshot, err := svc.Exchange(c.Context(), id, target, input.Amount)
		if err != nil {
			log.Errorf("Failed to exchange for account %s: %v", id, err)
			return common.ProblemDetailsFromError(c, "Failed to exchange", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Exchange completed",
			newBalanceResponse(snapshot))
	}
}
