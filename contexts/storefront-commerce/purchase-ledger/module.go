// Package purchaseledger records simulated purchases and re-issues unlocked
// cards for past purchases. It keeps only the purchase fact; cards are
// rebuilt from the catalog on every download.
package purchaseledger

import (
	"log/slog"

	httpadapter "anjett/contexts/storefront-commerce/purchase-ledger/adapters/http"
	memoryadapter "anjett/contexts/storefront-commerce/purchase-ledger/adapters/memory"
	"anjett/contexts/storefront-commerce/purchase-ledger/application/commands"
	"anjett/contexts/storefront-commerce/purchase-ledger/application/queries"
	"anjett/contexts/storefront-commerce/purchase-ledger/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Repository ports.Repository
	Catalog    ports.CatalogGateway
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Record: commands.RecordPurchaseUseCase{
				Repository: deps.Repository,
				Catalog:    deps.Catalog,
				Clock:      deps.Clock,
				IDGen:      deps.IDGen,
				Logger:     deps.Logger,
			},
			Clear: commands.ClearHistoryUseCase{
				Repository: deps.Repository,
				Logger:     deps.Logger,
			},
			Queries: queries.Queries{
				Repository: deps.Repository,
				Catalog:    deps.Catalog,
			},
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against the in-memory ledger, which also
// serves as clock and id generator.
func NewInMemoryModule(catalog ports.CatalogGateway, logger *slog.Logger) Module {
	store := memoryadapter.NewStore()
	return NewModule(Dependencies{
		Repository: store,
		Catalog:    catalog,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
}
