package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wmazur/kantor/pkg/currency"
	"github.com/wmazur/kantor/pkg/domain/account"
)

// Account is the account aggregate root in the database. The version column
// is the optimistic concurrency token: updates assert the loaded version and
// bump it, so a stale write matches zero rows.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"size:100;not null"`
	LastName  string    `gorm:"size:100;not null"`
	Version   int64     `gorm:"not null;default:0"`
	Balances  []CurrencyBalance
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrencyBalance is one wallet entry, owned by its account and saved with
// it as one atomic unit.
type CurrencyBalance struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Currency  string          `gorm:"type:varchar(3);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(19,8);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// toDomain maps a database record to the domain aggregate.
func toDomain(record *Account) *account.Account {
	w := account.NewWallet()
	for _, balance := range record.Balances {
		w.Credit(currency.Code(balance.Currency), balance.Amount)
	}
	return &account.Account{
		ID: record.ID,
		Owner: account.Owner{
			FirstName: record.FirstName,
			LastName:  record.LastName,
		},
		Wallet:  w,
		Version: record.Version,
	}
}

// toBalanceRecords maps the wallet to balance rows for the given account id.
func toBalanceRecords(a *account.Account) []CurrencyBalance {
	entries := a.Wallet.Entries()
	records := make([]CurrencyBalance, 0, len(entries))
	for code, amount := range entries {
		records = append(records, CurrencyBalance{
			ID:        uuid.New(),
			AccountID: a.ID,
			Currency:  string(code),
			Amount:    amount,
		})
	}
	return records
}
