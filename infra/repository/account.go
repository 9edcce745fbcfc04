// Package repository implements the account store on gorm/Postgres. The
// account row and its currency_balance rows are written in one transaction,
// and stale writes are rejected through the account's version column.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wmazur/kantor/pkg/domain"
	"github.com/wmazur/kantor/pkg/domain/account"
	"github.com/wmazur/kantor/pkg/repository"
	"gorm.io/gorm"
)

// AccountRepository is the gorm implementation of the storage contract.
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an AccountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &AccountRepository{db: db}
}

// Get loads the account aggregate with its wallet entries.
func (r *AccountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var record Account
	err := r.db.WithContext(ctx).
		Preload("Balances").
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, mapError(err)
	}
	return toDomain(&record), nil
}

// Create persists a new account and its wallet, assigning the id.
func (r *AccountRepository) Create(ctx context.Context, a *account.Account) (*account.Account, error) {
	record := Account{
		ID:        uuid.New(),
		FirstName: a.Owner.FirstName,
		LastName:  a.Owner.LastName,
		Version:   0,
	}
	saved := *a
	saved.ID = record.ID
	record.Balances = toBalanceRecords(&saved)

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, mapError(err)
	}
	return &saved, nil
}

// Update saves the aggregate: it asserts and bumps the version on the
// account row, then replaces the wallet rows wholesale, all in one
// transaction. A version mismatch means the account changed since it was
// loaded and yields domain.ErrConcurrentModification.
func (r *AccountRepository) Update(ctx context.Context, a *account.Account) (*account.Account, error) {
	saved := *a
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Account{}).
			Where("id = ? AND version = ?", a.ID, a.Version).
			Update("version", a.Version+1)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrConcurrentModification
		}

		if err := tx.Where("account_id = ?", a.ID).
			Delete(&CurrencyBalance{}).Error; err != nil {
			return err
		}
		records := toBalanceRecords(a)
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return nil, mapError(err)
	}
	saved.Version = a.Version + 1
	return &saved, nil
}

// mapError converts gorm errors to domain kinds, keeping database concerns
// inside the infrastructure layer.
func mapError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrAccountNotFound
	default:
		return err
	}
}
