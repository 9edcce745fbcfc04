// Package exchange implements the conversion engine: given a wallet, a
// target currency, a requested amount and a quote, it computes the amount to
// debit, verifies funds, and applies the mutation atomically.
package exchange

import (
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/wmazur/kantor/pkg/currency"
	"github.com/wmazur/kantor/pkg/domain"
	"github.com/wmazur/kantor/pkg/domain/account"
	"github.com/wmazur/kantor/pkg/provider"
)

// debitScale is the precision the foreign-currency debit is rounded to when
// selling foreign currency back.
const debitScale = 4

// Engine converts between the currencies of a supported pair.
type Engine struct {
	logger *slog.Logger
}

// New creates an Engine.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Convert debits the source balance and credits the target balance of the
// wallet, in place. The requested amount is credited verbatim; the debit is
// the market-rate cost of delivering it, derived from the quote.
//
// Fails with domain.ErrUnresolvedRate when the target currency has no
// supported direction or the quote is missing, and with
// domain.InsufficientFundsError when the source balance cannot cover the
// debit. On failure the wallet is left unmodified.
func (e *Engine) Convert(
	w *account.Wallet,
	target currency.Code,
	amount decimal.Decimal,
	quote *provider.Quote,
) error {
	direction, ok := currency.ResolveDirection(target)
	if !ok || quote == nil {
		return domain.ErrUnresolvedRate
	}

	debit := debitAmount(direction.Rule, amount, quote)

	available := w.BalanceOf(direction.Source)
	if available.LessThan(debit) {
		return &domain.InsufficientFundsError{
			Currency:  direction.Source,
			Required:  debit,
			Available: available,
		}
	}

	w.Debit(direction.Source, debit)
	w.Credit(target, amount)

	e.logger.Info("exchange applied",
		"target", target,
		"amount", amount,
		"source", direction.Source,
		"debit", debit,
		"effective_date", quote.EffectiveDate,
	)
	return nil
}

// debitAmount computes the amount of source currency spent for the requested
// amount of target currency. Buying foreign currency multiplies by the ask
// price at full precision; selling it back divides by the bid price, rounded
// half-up to four fractional digits.
func debitAmount(rule currency.RateRule, amount decimal.Decimal, quote *provider.Quote) decimal.Decimal {
	switch rule {
	case currency.DivideBid:
		return amount.DivRound(quote.Bid, debitScale)
	default:
		return amount.Mul(quote.Ask)
	}
}
