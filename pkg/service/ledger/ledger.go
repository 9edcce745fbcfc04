// Package ledger orchestrates account creation, balance queries, and
// currency exchanges. It delegates conversion arithmetic to the exchange
// engine, rate lookup to the rate provider, and persistence to the account
// repository.
package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wmazur/kantor/pkg/currency"
	"github.com/wmazur/kantor/pkg/domain"
	"github.com/wmazur/kantor/pkg/domain/account"
	"github.com/wmazur/kantor/pkg/exchange"
	"github.com/wmazur/kantor/pkg/provider"
	"github.com/wmazur/kantor/pkg/repository"
)

// BalanceSnapshot is the owner and wallet state returned by queries and
// exchanges.
type BalanceSnapshot struct {
	AccountID uuid.UUID
	Owner     account.Owner
	Balances  map[currency.Code]decimal.Decimal
}

// ExchangeEvent describes one completed exchange, published to the optional
// notifier after the mutation is persisted.
type ExchangeEvent struct {
	AccountID      uuid.UUID       `json:"account_id"`
	SourceCurrency currency.Code   `json:"source_currency"`
	TargetCurrency currency.Code   `json:"target_currency"`
	DebitAmount    decimal.Decimal `json:"debit_amount"`
	CreditAmount   decimal.Decimal `json:"credit_amount"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

// Notifier publishes completed-exchange events. Publishing is best effort:
// failures are logged by the service, never surfaced to the caller.
type Notifier interface {
	ExchangeCompleted(ctx context.Context, event ExchangeEvent) error
}

// Service is the account ledger.
type Service struct {
	repo     repository.AccountRepository
	rates    provider.RateProvider
	engine   *exchange.Engine
	notifier Notifier
	domestic currency.Code
	foreign  currency.Code
	logger   *slog.Logger
}

// New creates a ledger Service. notifier may be nil to disable event
// publishing. The quote for every exchange is fetched for the configured
// foreign currency, preserving the single-pair behavior of the system.
func New(
	repo repository.AccountRepository,
	rates provider.RateProvider,
	engine *exchange.Engine,
	notifier Notifier,
	domestic, foreign currency.Code,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:     repo,
		rates:    rates,
		engine:   engine,
		notifier: notifier,
		domestic: domestic,
		foreign:  foreign,
		logger:   logger,
	}
}

// Open creates an account whose wallet holds the opening balance in the
// domestic currency, and returns the storage-assigned id. The opening
// balance minimum is enforced by the boundary's validation layer.
func (s *Service) Open(
	ctx context.Context,
	firstName, lastName string,
	openingBalance decimal.Decimal,
) (uuid.UUID, error) {
	a := account.New(
		account.Owner{FirstName: firstName, LastName: lastName},
		openingBalance,
		s.domestic,
	)
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return uuid.Nil, err
	}
	s.logger.Info("account opened",
		"account_id", created.ID,
		"opening_balance", openingBalance,
		"currency", s.domestic,
	)
	return created.ID, nil
}

// Balance returns the owner and wallet snapshot for the given account id.
func (s *Service) Balance(ctx context.Context, id uuid.UUID) (*BalanceSnapshot, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return snapshot(a), nil
}

// Exchange converts the requested amount of target currency in the given
// account's wallet and persists the mutated state. AccountNotFound,
// UnresolvedRate, InsufficientFunds and ConcurrentModification all propagate
// unchanged to the caller.
func (s *Service) Exchange(
	ctx context.Context,
	id uuid.UUID,
	target currency.Code,
	amount decimal.Decimal,
) (*BalanceSnapshot, error) {
	logger := s.logger.With("account_id", id, "target", target, "amount", amount)

	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	quote, err := s.rates.Quote(ctx, s.foreign)
	if err != nil || quote == nil {
		logger.Warn("no usable quote",
			"provider", s.rates.Name(),
			"currency", s.foreign,
			"error", err,
		)
		return nil, domain.ErrUnresolvedRate
	}

	sourceBefore := balanceBefore(a, target)
	if err := s.engine.Convert(a.Wallet, target, amount, quote); err != nil {
		return nil, err
	}

	saved, err := s.repo.Update(ctx, a)
	if err != nil {
		if errors.Is(err, domain.ErrConcurrentModification) {
			logger.Warn("stale save, caller should retry")
		}
		return nil, err
	}

	s.publish(ctx, saved, target, amount, sourceBefore)
	return snapshot(saved), nil
}

// publish emits the completed-exchange event; failures are logged only.
func (s *Service) publish(
	ctx context.Context,
	a *account.Account,
	target currency.Code,
	amount decimal.Decimal,
	sourceBefore decimal.Decimal,
) {
	if s.notifier == nil {
		return
	}
	direction, _ := currency.ResolveDirection(target)
	event := ExchangeEvent{
		AccountID:      a.ID,
		SourceCurrency: direction.Source,
		TargetCurrency: target,
		DebitAmount:    sourceBefore.Sub(a.Wallet.BalanceOf(direction.Source)),
		CreditAmount:   amount,
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.notifier.ExchangeCompleted(ctx, event); err != nil {
		s.logger.Warn("failed to publish exchange event",
			"account_id", a.ID, "error", err)
	}
}

func balanceBefore(a *account.Account, target currency.Code) decimal.Decimal {
	direction, ok := currency.ResolveDirection(target)
	if !ok {
		return decimal.Zero
	}
	return a.Wallet.BalanceOf(direction.Source)
}

func snapshot(a *account.Account) *BalanceSnapshot {
	return &BalanceSnapshot{
		AccountID: a.ID,
		Owner:     a.Owner,
		Balances:  a.Wallet.Entries(),
	}
}
