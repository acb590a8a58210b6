package commands

import (
	"context"
	"log/slog"

	"anjett/contexts/storefront-commerce/purchase-ledger/application"
	domainerrors "anjett/contexts/storefront-commerce/purchase-ledger/domain/errors"
	"anjett/contexts/storefront-commerce/purchase-ledger/ports"
)

// ClearHistoryUseCase empties the ledger. The caller must pass an explicit
// confirmation; without it nothing is deleted.
type ClearHistoryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc ClearHistoryUseCase) Execute(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return domainerrors.ErrConfirmationRequired
	}
	if err := uc.Repository.ClearAll(ctx); err != nil {
		return err
	}
	application.ResolveLogger(uc.Logger).Info("purchase history cleared",
		"event", "purchase_history_cleared",
		"module", "storefront-commerce/purchase-ledger",
		"layer", "application",
	)
	return nil
}
