package queries

import (
	"context"
	"strings"

	"anjett/contexts/storefront-commerce/purchase-ledger/domain/entities"
	domainerrors "anjett/contexts/storefront-commerce/purchase-ledger/domain/errors"
	"anjett/contexts/storefront-commerce/purchase-ledger/ports"
)

type Queries struct {
	Repository ports.Repository
	Catalog    ports.CatalogGateway
}

// List returns ledger entries newest first.
func (q Queries) List(ctx context.Context) ([]entities.Purchase, error) {
	return q.Repository.List(ctx)
}

// Redownload re-renders the unlocked card for a past purchase. The ledger
// keeps only the purchase fact; the card is rebuilt from the current catalog
// entry each time.
func (q Queries) Redownload(ctx context.Context, purchaseID string) (entities.Purchase, ports.RenderedCard, error) {
	purchase, found, err := q.Repository.FindByID(ctx, strings.TrimSpace(purchaseID))
	if err != nil {
		return entities.Purchase{}, ports.RenderedCard{}, err
	}
	if !found {
		return entities.Purchase{}, ports.RenderedCard{}, domainerrors.ErrPurchaseNotFound
	}
	card, err := q.Catalog.UnlockedCard(ctx, purchase.ItemID)
	if err != nil {
		return entities.Purchase{}, ports.RenderedCard{}, err
	}
	return purchase, card, nil
}
