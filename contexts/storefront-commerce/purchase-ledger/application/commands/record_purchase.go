package commands

import (
	"context"
	"log/slog"
	"strings"

	"anjett/contexts/storefront-commerce/purchase-ledger/application"
	"anjett/contexts/storefront-commerce/purchase-ledger/domain/entities"
	domainerrors "anjett/contexts/storefront-commerce/purchase-ledger/domain/errors"
	"anjett/contexts/storefront-commerce/purchase-ledger/ports"
)

// RecordResult carries the outcome of a simulated checkout. Declined means
// the buyer backed out: nothing was recorded and no card was unlocked.
type RecordResult struct {
	Declined bool
	Purchase entities.Purchase
	Card     ports.RenderedCard
}

// RecordPurchaseUseCase runs the simulated payment decision, appends the
// ledger entry, and returns the unlocked card. A declined payment is a quiet
// cancellation, not an error.
type RecordPurchaseUseCase struct {
	Repository ports.Repository
	Catalog    ports.CatalogGateway
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc RecordPurchaseUseCase) Execute(ctx context.Context, itemID string, confirmed bool) (RecordResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return RecordResult{}, domainerrors.ErrInvalidRequest
	}
	item, err := uc.Catalog.ItemForPurchase(ctx, itemID)
	if err != nil {
		return RecordResult{}, err
	}

	if !confirmed {
		logger.Info("purchase declined by buyer",
			"event", "purchase_declined",
			"module", "storefront-commerce/purchase-ledger",
			"layer", "application",
			"item_id", itemID,
		)
		return RecordResult{Declined: true}, nil
	}

	purchaseID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return RecordResult{}, err
	}
	purchase := entities.Purchase{
		PurchaseID:   purchaseID,
		ItemID:       item.ItemID,
		ItemName:     item.Name,
		Price:        item.Price,
		Kind:         item.Kind,
		ArtifactType: item.ArtifactType,
		PurchasedAt:  uc.Clock.Now().UTC(),
	}
	if err := uc.Repository.Add(ctx, purchase); err != nil {
		return RecordResult{}, err
	}

	card, err := uc.Catalog.UnlockedCard(ctx, item.ItemID)
	if err != nil {
		return RecordResult{}, err
	}
	logger.Info("purchase recorded",
		"event", "purchase_recorded",
		"module", "storefront-commerce/purchase-ledger",
		"layer", "application",
		"purchase_id", purchase.PurchaseID,
		"item_id", purchase.ItemID,
		"kind", string(purchase.Kind),
	)
	return RecordResult{Purchase: purchase, Card: card}, nil
}
