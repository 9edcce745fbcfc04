// Package repository defines the storage collaborator contract. The account
// and its full wallet are persisted as one atomic unit; partial persistence
// of a subset of balance entries is disallowed.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wmazur/kantor/pkg/domain/account"
)

// AccountRepository loads and saves account aggregates.
type AccountRepository interface {
	// Get returns the account with the given id, or domain.ErrAccountNotFound.
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)

	// Create persists a new account and returns the persisted state with the
	// storage-assigned id.
	Create(ctx context.Context, a *account.Account) (*account.Account, error)

	// Update saves a loaded account and its full wallet. It must fail with
	// domain.ErrConcurrentModification when the account was modified since
	// it was loaded, so the caller can retry the whole operation.
	Update(ctx context.Context, a *account.Account) (*account.Account, error)
}
