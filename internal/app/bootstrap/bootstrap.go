package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	catalogservice "anjett/contexts/catalog-discovery/catalog-service"
	"anjett/contexts/catalog-discovery/catalog-service/adapters/embedded"
	submissionservice "anjett/contexts/community-kitchen/submission-service"
	communitybolt "anjett/contexts/community-kitchen/submission-service/adapters/bolt"
	communitypostgres "anjett/contexts/community-kitchen/submission-service/adapters/postgres"
	admingate "anjett/contexts/identity-access/admin-gate"
	adminbolt "anjett/contexts/identity-access/admin-gate/adapters/bolt"
	adminpostgres "anjett/contexts/identity-access/admin-gate/adapters/postgres"
	purchaseledger "anjett/contexts/storefront-commerce/purchase-ledger"
	ledgerbolt "anjett/contexts/storefront-commerce/purchase-ledger/adapters/bolt"
	ledgerpostgres "anjett/contexts/storefront-commerce/purchase-ledger/adapters/postgres"
	"anjett/internal/platform/config"
	"anjett/internal/platform/db"
	"anjett/internal/platform/httpserver"
	"anjett/internal/platform/kvstore"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	kv       *kvstore.Store
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	app := &APIApp{logger: logger}
	var modules httpserver.Modules
	switch cfg.StorageDriver {
	case config.DriverMemory:
		modules, err = BuildMemoryModules(logger)
	case config.DriverBolt:
		app.kv, err = kvstore.Open(cfg.BoltPath, logger)
		if err == nil {
			modules, err = buildBoltModules(app.kv, logger)
		}
	case config.DriverPostgres:
		app.postgres, err = db.Connect(cfg.PostgresDSN)
		if err == nil {
			modules, err = buildPostgresModules(app.postgres, logger)
		}
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	app.server = httpserver.New(modules, logger, normalizeAddr(cfg.HTTPPort))
	return app, nil
}

// BuildMemoryModules wires every module against in-memory storage. Tests use
// it to exercise the full module graph without a database.
func BuildMemoryModules(logger *slog.Logger) (httpserver.Modules, error) {
	admin := admingate.NewInMemoryModule(logger)
	community := submissionservice.NewInMemoryModule(moderatorGate{admin: admin.Service}, logger)

	official, err := embedded.NewCatalog()
	if err != nil {
		return httpserver.Modules{}, err
	}
	catalog := catalogservice.NewModule(catalogservice.Dependencies{
		Official:  official,
		Community: communitySource{queries: community.Queries},
		Logger:    logger,
	})
	purchases := purchaseledger.NewInMemoryModule(catalogGateway{catalog: catalog.Service}, logger)

	return httpserver.Modules{
		Catalog:   catalog,
		Community: community,
		Purchases: purchases,
		Admin:     admin,
	}, nil
}

func buildBoltModules(kv *kvstore.Store, logger *slog.Logger) (httpserver.Modules, error) {
	adminStore, err := adminbolt.NewStore(kv, logger)
	if err != nil {
		return httpserver.Modules{}, err
	}
	admin := admingate.NewModule(admingate.Dependencies{
		Repository: adminStore,
		Minter:     adminpostgres.UUIDMinter{},
		Logger:     logger,
	})

	communityStore, err := communitybolt.NewStore(kv, logger)
	if err != nil {
		return httpserver.Modules{}, err
	}
	community := submissionservice.NewModule(submissionservice.Dependencies{
		Repository: communityStore,
		Clock:      communitypostgres.SystemClock{},
		IDGen:      communitypostgres.UUIDGenerator{},
		Gate:       moderatorGate{admin: admin.Service},
		Logger:     logger,
	})

	official, err := embedded.NewCatalog()
	if err != nil {
		return httpserver.Modules{}, err
	}
	catalog := catalogservice.NewModule(catalogservice.Dependencies{
		Official:  official,
		Community: communitySource{queries: community.Queries},
		Logger:    logger,
	})

	ledgerStore, err := ledgerbolt.NewStore(kv, logger)
	if err != nil {
		return httpserver.Modules{}, err
	}
	purchases := purchaseledger.NewModule(purchaseledger.Dependencies{
		Repository: ledgerStore,
		Catalog:    catalogGateway{catalog: catalog.Service},
		Clock:      ledgerpostgres.SystemClock{},
		IDGen:      ledgerpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	return httpserver.Modules{
		Catalog:   catalog,
		Community: community,
		Purchases: purchases,
		Admin:     admin,
	}, nil
}

func buildPostgresModules(pg *db.Postgres, logger *slog.Logger) (httpserver.Modules, error) {
	ctx := context.Background()

	adminRepo := adminpostgres.NewRepository(pg.DB, logger)
	if err := adminRepo.Migrate(ctx); err != nil {
		return httpserver.Modules{}, err
	}
	admin := admingate.NewModule(admingate.Dependencies{
		Repository: adminRepo,
		Minter:     adminpostgres.UUIDMinter{},
		Logger:     logger,
	})

	communityRepo := communitypostgres.NewRepository(pg.DB, logger)
	if err := communityRepo.Migrate(ctx); err != nil {
		return httpserver.Modules{}, err
	}
	community := submissionservice.NewModule(submissionservice.Dependencies{
		Repository: communityRepo,
		Clock:      communitypostgres.SystemClock{},
		IDGen:      communitypostgres.UUIDGenerator{},
		Gate:       moderatorGate{admin: admin.Service},
		Logger:     logger,
	})

	official, err := embedded.NewCatalog()
	if err != nil {
		return httpserver.Modules{}, err
	}
	catalog := catalogservice.NewModule(catalogservice.Dependencies{
		Official:  official,
		Community: communitySource{queries: community.Queries},
		Logger:    logger,
	})

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	if err := ledgerRepo.Migrate(ctx); err != nil {
		return httpserver.Modules{}, err
	}
	purchases := purchaseledger.NewModule(purchaseledger.Dependencies{
		Repository: ledgerRepo,
		Catalog:    catalogGateway{catalog: catalog.Service},
		Clock:      ledgerpostgres.SystemClock{},
		IDGen:      ledgerpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	return httpserver.Modules{
		Catalog:   catalog,
		Community: community,
		Purchases: purchases,
		Admin:     admin,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	if a.kv != nil {
		return a.kv.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
