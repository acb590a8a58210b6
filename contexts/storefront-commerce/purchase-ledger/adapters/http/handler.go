package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"anjett/contexts/storefront-commerce/purchase-ledger/application/commands"
	"anjett/contexts/storefront-commerce/purchase-ledger/application/queries"
	"anjett/contexts/storefront-commerce/purchase-ledger/domain/entities"
	"anjett/contexts/storefront-commerce/purchase-ledger/ports"
	httptransport "anjett/contexts/storefront-commerce/purchase-ledger/transport/http"
)

const (
	outcomePurchased = "purchased"
	outcomeCancelled = "cancelled"
)

type Handler struct {
	Record  commands.RecordPurchaseUseCase
	Clear   commands.ClearHistoryUseCase
	Queries queries.Queries
	Logger  *slog.Logger
}

func (h Handler) RecordPurchaseHandler(ctx context.Context, req httptransport.RecordPurchaseRequest) (httptransport.RecordPurchaseResponse, error) {
	result, err := h.Record.Execute(ctx, req.ItemID, req.Confirmed)
	if err != nil {
		return httptransport.RecordPurchaseResponse{}, err
	}
	resp := httptransport.RecordPurchaseResponse{Status: "success", Timestamp: timestamp()}
	if result.Declined {
		resp.Data.Outcome = outcomeCancelled
		return resp, nil
	}
	purchase := mapPurchase(result.Purchase)
	card := mapCard(result.Card)
	resp.Data.Outcome = outcomePurchased
	resp.Data.Purchase = &purchase
	resp.Data.Card = &card
	return resp, nil
}

func (h Handler) ListPurchasesHandler(ctx context.Context) (httptransport.PurchaseListResponse, error) {
	purchases, err := h.Queries.List(ctx)
	if err != nil {
		return httptransport.PurchaseListResponse{}, err
	}
	resp := httptransport.PurchaseListResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Purchases = mapPurchases(purchases)
	return resp, nil
}

func (h Handler) ClearHistoryHandler(ctx context.Context, req httptransport.ClearHistoryRequest) (httptransport.ClearHistoryResponse, error) {
	if err := h.Clear.Execute(ctx, req.Confirmed); err != nil {
		return httptransport.ClearHistoryResponse{}, err
	}
	resp := httptransport.ClearHistoryResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Cleared = true
	return resp, nil
}

func (h Handler) RedownloadHandler(ctx context.Context, purchaseID string) (httptransport.RedownloadResponse, error) {
	purchase, card, err := h.Queries.Redownload(ctx, purchaseID)
	if err != nil {
		return httptransport.RedownloadResponse{}, err
	}
	resp := httptransport.RedownloadResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Purchase = mapPurchase(purchase)
	resp.Data.Card = mapCard(card)
	return resp, nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func mapPurchase(purchase entities.Purchase) httptransport.PurchaseView {
	return httptransport.PurchaseView{
		ID:          purchase.PurchaseID,
		ItemID:      purchase.ItemID,
		ItemName:    purchase.ItemName,
		Price:       purchase.Price,
		Kind:        string(purchase.Kind),
		Artifact:    string(purchase.ArtifactType),
		PurchasedAt: purchase.PurchasedAt.UTC().Format(time.RFC3339),
	}
}

func mapPurchases(purchases []entities.Purchase) []httptransport.PurchaseView {
	views := make([]httptransport.PurchaseView, 0, len(purchases))
	for _, purchase := range purchases {
		views = append(views, mapPurchase(purchase))
	}
	return views
}

func mapCard(card ports.RenderedCard) httptransport.CardView {
	return httptransport.CardView{
		Filename: card.Filename,
		Text:     card.Text,
	}
}
