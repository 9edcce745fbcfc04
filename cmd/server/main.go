package main

import (
	"fmt"
	"strings"

	log "github.com/charmbracelet/log"
	"github.com/wmazur/kantor/infra/initializer"
	"github.com/wmazur/kantor/infra/notification"
	rateprovider "github.com/wmazur/kantor/infra/provider"
	infrarepo "github.com/wmazur/kantor/infra/repository"
	"github.com/wmazur/kantor/pkg/config"
	"github.com/wmazur/kantor/pkg/currency"
	"github.com/wmazur/kantor/pkg/exchange"
	"github.com/wmazur/kantor/pkg/service/ledger"
	"github.com/wmazur/kantor/webapi"
)

// @title Kantor API
// @version 1.0.0
// @description Currency account ledger and exchange API
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	bootLogger := initializer.SetupLogger(config.Log{Format: "text", TimeFormat: "15:04:05", Prefix: "kantor"})

	cfg, err := config.LoadAppConfig(bootLogger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := initializer.SetupLogger(cfg.Log)

	db, err := infrarepo.NewDBConnection(cfg.DB.Url)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	repo := infrarepo.NewAccountRepository(db)

	rates := rateprovider.NewCachedRateProvider(
		rateprovider.NewNBPClient(cfg.NBP, logger),
		cfg.NBP.CacheTTL,
		logger,
	)

	var notifier ledger.Notifier
	if cfg.Kafka.Brokers != "" {
		producer := notification.NewProducer(
			strings.Split(cfg.Kafka.Brokers, ","),
			cfg.Kafka.Topic,
			logger,
		)
		defer producer.Close() //nolint:errcheck
		notifier = producer
	}

	svc := ledger.New(
		repo,
		rates,
		exchange.New(logger),
		notifier,
		currency.Code(cfg.Ledger.DomesticCurrency),
		currency.Code(cfg.Ledger.ForeignCurrency),
		logger,
	)

	app := webapi.NewApp(svc, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info("Starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
