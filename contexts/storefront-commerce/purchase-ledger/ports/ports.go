package ports

import (
	"context"
	"time"

	"anjett/contexts/storefront-commerce/purchase-ledger/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// CatalogItem is the slice of a catalog entry the ledger needs when
// recording a purchase.
type CatalogItem struct {
	ItemID       string
	Name         string
	Price        float64
	Kind         entities.PurchaseKind
	ArtifactType entities.ArtifactType
}

type RenderedCard struct {
	Filename string
	Text     string
}

// CatalogGateway resolves items and renders unlocked cards. The catalog
// module implements it through the composition root.
type CatalogGateway interface {
	ItemForPurchase(ctx context.Context, itemID string) (CatalogItem, error)
	UnlockedCard(ctx context.Context, itemID string) (RenderedCard, error)
}

// Repository stores ledger entries newest first.
type Repository interface {
	Add(ctx context.Context, purchase entities.Purchase) error
	List(ctx context.Context) ([]entities.Purchase, error)
	FindByID(ctx context.Context, purchaseID string) (entities.Purchase, bool, error)
	ClearAll(ctx context.Context) error
}
