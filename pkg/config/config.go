// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DBConfig holds database connection settings.
type DBConfig struct {
	Url string `envconfig:"URL"`
}

// NBPConfig holds settings for the NBP exchange rate client.
type NBPConfig struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.nbp.pl/api"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"15m"`
}

// LedgerConfig holds the currency pair and account opening policy.
type LedgerConfig struct {
	DomesticCurrency  string `envconfig:"DOMESTIC_CURRENCY" default:"PLN"`
	ForeignCurrency   string `envconfig:"FOREIGN_CURRENCY" default:"USD"`
	MinOpeningBalance string `envconfig:"MIN_OPENING_BALANCE" default:"0.01"`
}

// KafkaConfig holds the optional exchange-event producer settings. An empty
// broker list disables publishing.
type KafkaConfig struct {
	Brokers string `envconfig:"BROKERS" default:""`
	Topic   string `envconfig:"TOPIC" default:"exchange-events"`
}

// Log holds logger settings.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"kantor"`
}

// AppConfig is the root application configuration.
type AppConfig struct {
	Env    string       `envconfig:"APP_ENV" default:"development"`
	Host   string       `envconfig:"APP_HOST" default:"localhost"`
	Port   int          `envconfig:"APP_PORT" default:"3000"`
	DB     DBConfig     `envconfig:"DATABASE"`
	NBP    NBPConfig    `envconfig:"NBP"`
	Ledger LedgerConfig `envconfig:"LEDGER"`
	Kafka  KafkaConfig  `envconfig:"KAFKA"`
	Log    Log          `envconfig:"LOG"`
}

// LoadAppConfig reads configuration from the environment. When envFilePath is
// given, that .env file is loaded first; otherwise the default .env is tried.
func LoadAppConfig(logger *slog.Logger, envFilePath ...string) (*AppConfig, error) {
	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logger.Warn("No .env file found or specified, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"env", cfg.Env,
		"port", cfg.Port,
		"nbp_base_url", cfg.NBP.BaseURL,
		"nbp_cache_ttl", cfg.NBP.CacheTTL,
		"domestic", cfg.Ledger.DomesticCurrency,
		"foreign", cfg.Ledger.ForeignCurrency,
	)
	return &cfg, nil
}
