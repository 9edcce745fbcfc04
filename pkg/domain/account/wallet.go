package account

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wmazur/kantor/pkg/currency"
)

// Wallet is the set of per-currency balances owned by one account.
//
// Invariants:
//   - At most one balance entry per currency.
//   - Every balance is non-negative.
//   - An absent currency means a balance of zero, not an error.
//
// Entries are created lazily on the first credit. The wallet is mutated in
// place by the exchange engine; it is not safe for concurrent use.
type Wallet struct {
	balances map[currency.Code]decimal.Decimal
}

// NewWallet returns an empty wallet.
func NewWallet() *Wallet {
	return &Wallet{balances: make(map[currency.Code]decimal.Decimal)}
}

// BalanceOf returns the stored balance, or zero if the currency has no entry.
func (w *Wallet) BalanceOf(code currency.Code) decimal.Decimal {
	return w.balances[code]
}

// Credit increases the balance for code by amount, creating the entry if it
// does not exist yet. Amount must be non-negative.
func (w *Wallet) Credit(code currency.Code, amount decimal.Decimal) {
	w.balances[code] = w.balances[code].Add(amount)
}

// Debit decreases the balance for code by amount. The caller is responsible
// for verifying sufficiency first; a debit below zero is a defect, not a
// domain error, and panics.
func (w *Wallet) Debit(code currency.Code, amount decimal.Decimal) {
	next := w.balances[code].Sub(amount)
	if next.IsNegative() {
		panic(fmt.Sprintf(
			"wallet: debit of %s %s below zero (balance %s)",
			amount, code, w.balances[code],
		))
	}
	w.balances[code] = next
}

// Entries returns a copy of the per-currency balances.
func (w *Wallet) Entries() map[currency.Code]decimal.Decimal {
	entries := make(map[currency.Code]decimal.Decimal, len(w.balances))
	for code, amount := range w.balances {
		entries[code] = amount
	}
	return entries
}
