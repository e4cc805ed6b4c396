package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/app"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/shop"
	"github.com/jafarshop/storefront/internal/state"
	"github.com/jafarshop/storefront/internal/tui"
	"github.com/jafarshop/storefront/internal/views"
	"github.com/jafarshop/storefront/pkg/events"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger. The terminal belongs to the UI, so logs go to a file.
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting storefront",
		zap.String("api_url", cfg.Shop.BaseURL),
		zap.String("environment", cfg.Environment),
	)

	// Wire the core: bus, state, views, shop client, orchestration
	bus := events.NewBus(logger)
	st := state.New(bus, logger)
	client := shop.NewClient(cfg.Shop.BaseURL, cfg.Shop.Timeout, logger)
	v := app.Views{
		Page:     views.NewPage(),
		Catalog:  views.NewCatalog(),
		Preview:  views.NewPreview(),
		Basket:   views.NewBasket(),
		Order:    views.NewOrderForm(),
		Contacts: views.NewContactsForm(),
		Success:  views.NewSuccess(),
	}
	a := app.New(bus, st, client, v, logger)

	p := tea.NewProgram(tui.New(a, bus, st, v, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("frontend exited with error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Storefront exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Environment == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.OutputPaths = []string{"storefront.log"}
	zcfg.ErrorOutputPaths = []string{"storefront.log"}
	if lvl, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zcfg.Level = lvl
	}
	return zcfg.Build()
}
