package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/FichasBot_Go/internal/casino"
	"github.com/osse101/FichasBot_Go/internal/catalog"
	"github.com/osse101/FichasBot_Go/internal/concurrency"
	"github.com/osse101/FichasBot_Go/internal/config"
	"github.com/osse101/FichasBot_Go/internal/cooldown"
	"github.com/osse101/FichasBot_Go/internal/economy"
	"github.com/osse101/FichasBot_Go/internal/flavor"
	"github.com/osse101/FichasBot_Go/internal/inventory"
	"github.com/osse101/FichasBot_Go/internal/server"
)

// App is the fully wired application
type App struct {
	Server    *server.Server
	Storage   *Storage
	Services  server.Services
	Catalog   catalog.Catalog
	Casino    casino.Service
	Inventory inventory.Service
}

// LoadCatalog loads the item catalog from cfg.CatalogPath or the embedded file
func LoadCatalog(cfg *config.Config) (catalog.Catalog, error) {
	cat, err := catalog.LoadDefault(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	source := cfg.CatalogPath
	if source == "" {
		source = catalog.ItemsFileName
	}
	slog.Default().Info(catalog.LogMsgCatalogLoaded, "source", source, "items", len(cat.All()))
	return cat, nil
}

// NewFlavor builds the flavor generator from cfg
func NewFlavor(cfg *config.Config) *flavor.Generator {
	if cfg.FlavorAPIKey == "" {
		slog.Default().Info(LogMsgFlavorFallbackOnly)
	} else {
		slog.Default().Info(LogMsgFlavorRemote, "model", cfg.FlavorModel)
	}
	return flavor.NewGenerator(flavor.Config{
		APIKey:         cfg.FlavorAPIKey,
		BaseURL:        cfg.FlavorBaseURL,
		Model:          cfg.FlavorModel,
		Timeout:        cfg.FlavorTimeout,
		Locale:         cfg.FlavorLocale,
		CurrencySymbol: cfg.CurrencySymbol,
	}, nil)
}

// Build opens storage and wires every service into the HTTP server
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	storage, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app, err := Wire(cfg, storage)
	if err != nil {
		_ = storage.Close()
		return nil, err
	}
	return app, nil
}

// Wire builds the services over an already opened storage
func Wire(cfg *config.Config, storage *Storage) (*App, error) {
	cat, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	engine, err := casino.NewEngine(casino.DefaultPaytable(), nil)
	if err != nil {
		return nil, err
	}

	wallet := economy.NewService(storage.Store)
	gen := NewFlavor(cfg)

	casinoSvc, err := casino.NewService(casino.Config{
		ChipValue:      cfg.ChipValue,
		ExchangeFee:    cfg.ExchangeFee,
		StatsCacheSize: cfg.StatsCacheSize,
		StatsCacheTTL:  cfg.StatsCacheTTL,
	}, storage.Store, wallet, engine, gen)
	if err != nil {
		return nil, err
	}

	invSvc := inventory.NewService(
		storage.Store,
		cat,
		cooldown.NewChecker(cooldown.Config{DevMode: cfg.DevMode}, nil),
		concurrency.NewLockManager(),
	)

	services := server.Services{
		Store:     storage.Store,
		Casino:    casinoSvc,
		Inventory: invSvc,
		Economy:   wallet,
		Catalog:   cat,
		Flavor:    gen,
	}

	return &App{
		Server: server.NewServer(server.Config{
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
		}, services),
		Storage:   storage,
		Services:  services,
		Catalog:   cat,
		Casino:    casinoSvc,
		Inventory: invSvc,
	}, nil
}
