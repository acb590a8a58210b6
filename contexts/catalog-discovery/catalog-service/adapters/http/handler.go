package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"anjett/contexts/catalog-discovery/catalog-service/application"
	"anjett/contexts/catalog-discovery/catalog-service/domain/entities"
	domainerrors "anjett/contexts/catalog-discovery/catalog-service/domain/errors"
	"anjett/contexts/catalog-discovery/catalog-service/domain/services"
	httptransport "anjett/contexts/catalog-discovery/catalog-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) OfficialCatalogHandler(ctx context.Context) (httptransport.OfficialCatalogResponse, error) {
	resp := httptransport.OfficialCatalogResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Recipes = mapRecipes(h.Service.ListOfficial(ctx))
	resp.Data.Packs = mapPacks(h.Service.ListPacks(ctx))
	resp.Data.Trending = h.Service.Trending(ctx)
	return resp, nil
}

func (h Handler) PackListHandler(ctx context.Context) (httptransport.PackListResponse, error) {
	resp := httptransport.PackListResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Packs = mapPacks(h.Service.ListPacks(ctx))
	return resp, nil
}

func (h Handler) TrendingHandler(ctx context.Context) (httptransport.TrendingResponse, error) {
	resp := httptransport.TrendingResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Trending = h.Service.Trending(ctx)
	return resp, nil
}

func (h Handler) CommunityCatalogHandler(ctx context.Context) (httptransport.CommunityCatalogResponse, error) {
	approved, err := h.Service.ListApproved(ctx)
	if err != nil {
		return httptransport.CommunityCatalogResponse{}, err
	}
	resp := httptransport.CommunityCatalogResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Recipes = mapRecipes(approved)
	return resp, nil
}

func (h Handler) SearchHandler(ctx context.Context, query string) (httptransport.SearchResponse, error) {
	result, err := h.Service.Search(ctx, query)
	if err != nil {
		return httptransport.SearchResponse{}, err
	}
	resp := httptransport.SearchResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Query = strings.TrimSpace(query)
	resp.Data.Official = mapRecipes(result.Official)
	resp.Data.Community = mapRecipes(result.Community)
	return resp, nil
}

func (h Handler) GetItemHandler(ctx context.Context, itemID string) (httptransport.ItemResponse, error) {
	item, err := h.Service.FindItem(ctx, strings.TrimSpace(itemID))
	if err != nil {
		return httptransport.ItemResponse{}, err
	}
	resp := httptransport.ItemResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Kind = string(item.Kind)
	if item.Kind == entities.ItemKindPack {
		pack := mapPack(item.Pack)
		resp.Data.Pack = &pack
	} else {
		recipe := mapRecipe(item.Recipe)
		resp.Data.Recipe = &recipe
	}
	return resp, nil
}

// PreviewCardHandler renders the locked card for any catalog item; the
// unlocked render is only reachable through the purchase ledger.
func (h Handler) PreviewCardHandler(ctx context.Context, itemID string) (httptransport.CardResponse, error) {
	card, err := h.Service.RenderCard(ctx, strings.TrimSpace(itemID), false)
	if err != nil {
		return httptransport.CardResponse{}, err
	}
	resp := httptransport.CardResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Filename = card.Filename
	resp.Data.Text = card.Text
	resp.Data.Unlocked = false
	return resp, nil
}

// DraftCardHandler previews an unsaved community draft as a locked card. Only
// a name is required; everything else may still be blank.
func (h Handler) DraftCardHandler(_ context.Context, req httptransport.DraftCardRequest) (httptransport.CardResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return httptransport.CardResponse{}, domainerrors.ErrInvalidRequest
	}
	draft := entities.Recipe{
		Origin:      entities.OriginCommunity,
		Name:        strings.TrimSpace(req.Name),
		ChefName:    strings.TrimSpace(req.Chef),
		Preview:     strings.TrimSpace(req.Preview),
		Tags:        req.Tags,
		Ingredients: req.Ingredients,
		Price:       1.99,
	}
	item := entities.Item{Kind: entities.ItemKindRecipe, Recipe: draft}
	resp := httptransport.CardResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Filename = services.CardFilename(item)
	resp.Data.Text = services.RecipeCard(draft, false)
	resp.Data.Unlocked = false
	return resp, nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func mapRecipe(r entities.Recipe) httptransport.RecipeView {
	view := httptransport.RecipeView{
		ID:          r.RecipeID,
		Origin:      string(r.Origin),
		Name:        r.Name,
		Preview:     r.Preview,
		Tags:        r.Tags,
		Ingredients: r.Ingredients,
		Price:       r.Price,
	}
	if r.IsCommunity() {
		view.Chef = r.DisplayChef()
	}
	return view
}

func mapRecipes(recipes []entities.Recipe) []httptransport.RecipeView {
	views := make([]httptransport.RecipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, mapRecipe(r))
	}
	return views
}

func mapPack(p entities.Pack) httptransport.PackView {
	return httptransport.PackView{
		ID:       p.PackID,
		Name:     p.Name,
		Price:    p.Price,
		Includes: p.Includes,
	}
}

func mapPacks(packs []entities.Pack) []httptransport.PackView {
	views := make([]httptransport.PackView, 0, len(packs))
	for _, p := range packs {
		views = append(views, mapPack(p))
	}
	return views
}
