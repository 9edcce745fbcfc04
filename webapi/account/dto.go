package account

import (
	"github.com/shopspring/decimal"
	"github.com/wmazur/kantor/pkg/currency"
	"github.com/wmazur/kantor/pkg/service/ledger"
)

// OpenAccountRequest creates a new account with an opening balance in the
// domestic currency.
type OpenAccountRequest struct {
	FirstName string          `json:"first_name" validate:"required,max=100"`
	LastName  string          `json:"last_name" validate:"required,max=100"`
	Balance   decimal.Decimal `json:"balance" validate:"required"`
}

// ExchangeRequest acquires the given amount of the target currency.
type ExchangeRequest struct {
	Currency string          `json:"currency" validate:"required,len=3,uppercase"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
}

// OpenAccountResponse carries the storage-assigned account id.
type OpenAccountResponse struct {
	AccountID string `json:"account_id"`
}

// OwnerResponse is the account owner as exposed by the API.
type OwnerResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// BalanceResponse is the owner and wallet snapshot. Amounts are rendered at
// display precision; stored balances keep full precision.
type BalanceResponse struct {
	AccountID string            `json:"account_id"`
	Owner     OwnerResponse     `json:"owner"`
	Balances  map[string]string `json:"balances"`
}

func newBalanceResponse(s *ledger.BalanceSnapshot) BalanceResponse {
	balances := make(map[string]string, len(s.Balances))
	for code, amount := range s.Balances {
		balances[string(code)] = amount.StringFixed(currency.DisplayDecimals)
	}
	return BalanceResponse{
		AccountID: s.AccountID.String(),
		Owner: OwnerResponse{
			FirstName: s.Owner.FirstName,
			LastName:  s.Owner.LastName,
		},
		Balances: balances,
	}
}
