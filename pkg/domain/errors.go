// Package domain holds the error kinds shared across layers. Every failure
// the ledger can surface maps to exactly one of these, and the web boundary
// owns the translation to HTTP status codes.
package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wmazur/kantor/pkg/currency"
)

var (
	// ErrAccountNotFound is returned when the requested account id has no
	// corresponding record.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUnresolvedRate is returned when no usable quote exists for the
	// required currency pair.
	ErrUnresolvedRate = errors.New("unable to resolve exchange rate")

	// ErrInsufficientFunds is the kind matched by errors.Is for
	// InsufficientFundsError values.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrConcurrentModification is returned when the account changed between
	// load and save. The caller should retry the whole operation.
	ErrConcurrentModification = errors.New("account was concurrently modified")
)

// InsufficientFundsError reports that the source balance is less than the
// amount the exchange would debit. It carries both sides for a precise
// user-facing message.
type InsufficientFundsError struct {
	Currency  currency.Code
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"insufficient funds: required %s %s, available %s",
		e.Required, e.Currency, e.Available,
	)
}

// Is makes errors.Is(err, ErrInsufficientFunds) match.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
