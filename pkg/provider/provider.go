// Package provider defines the contract for external exchange rate sources.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wmazur/kantor/pkg/currency"
)

// ErrNoQuote is returned when the source has no quote for the requested
// currency, including when the source does not recognize the currency at
// all. The ledger does not distinguish the two.
var ErrNoQuote = errors.New("no quote available")

// Quote is a bid/ask price pair for one foreign currency against the
// domestic currency, as of some effective date.
//
// Bid is the price at which the market buys the foreign currency back;
// Ask is the price at which it sells. Bid <= Ask is the provider's
// invariant and is not re-checked here.
type Quote struct {
	Code          currency.Code
	EffectiveDate time.Time
	Bid           decimal.Decimal
	Ask           decimal.Decimal
}

// RateProvider fetches the latest quote for a foreign currency. Pure lookup,
// no state. Implementations must return ErrNoQuote (possibly wrapped) when
// no usable quote exists.
type RateProvider interface {
	// Quote fetches the latest quote for the given foreign currency code.
	Quote(ctx context.Context, code currency.Code) (*Quote, error)

	// Name returns the provider's name for logging.
	Name() string
}
