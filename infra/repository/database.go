package repository

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDBConnection opens the Postgres connection and migrates the schema.
func NewDBConnection(databaseUrl string) (*gorm.DB, error) {
	if databaseUrl == "" {
		return nil, errors.New("database url is not set")
	}
	connection, err := gorm.Open(postgres.Open(databaseUrl), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := connection.AutoMigrate(&Account{}, &CurrencyBalance{}); err != nil {
		return nil, err
	}
	return connection, nil
}
