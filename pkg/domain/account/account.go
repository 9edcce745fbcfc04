// Package account defines the account aggregate: an owner and the wallet of
// per-currency balances it holds. State changes flow through the exchange
// engine and are persisted as one atomic unit by the storage layer.
package account

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wmazur/kantor/pkg/currency"
)

// Owner identifies the person holding an account. Immutable after creation.
type Owner struct {
	FirstName string
	LastName  string
}

// Account is the aggregate root. The id is assigned by the storage layer on
// create; Version is the optimistic concurrency token the storage layer uses
// to detect stale writes.
type Account struct {
	ID      uuid.UUID
	Owner   Owner
	Wallet  *Wallet
	Version int64
}

// New creates an account whose wallet holds exactly one entry: the domestic
// currency credited with the opening balance. The opening balance minimum is
// enforced at the boundary, not here.
func New(owner Owner, openingBalance decimal.Decimal, domestic currency.Code) *Account {
	w := NewWallet()
	w.Credit(domestic, openingBalance)
	return &Account{
		Owner:  owner,
		Wallet: w,
	}
}
