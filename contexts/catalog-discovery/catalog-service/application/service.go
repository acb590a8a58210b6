package application

import (
	"context"
	"log/slog"

	"anjett/contexts/catalog-discovery/catalog-service/domain/entities"
	domainerrors "anjett/contexts/catalog-discovery/catalog-service/domain/errors"
	"anjett/contexts/catalog-discovery/catalog-service/domain/services"
	"anjett/contexts/catalog-discovery/catalog-service/ports"
)

type Service struct {
	Official  ports.OfficialCatalog
	Community ports.CommunitySource
	Logger    *slog.Logger
}

func (s Service) ListOfficial(_ context.Context) []entities.Recipe {
	return s.Official.Recipes()
}

func (s Service) ListPacks(_ context.Context) []entities.Pack {
	return s.Official.Packs()
}

func (s Service) Trending(_ context.Context) []string {
	return s.Official.Trending()
}

func (s Service) ListApproved(ctx context.Context) ([]entities.Recipe, error) {
	return s.Community.ListApproved(ctx)
}

// FindItem resolves an id against official recipes, then approved community
// recipes, then pending submissions, then packs. Pending items resolving here
// is intentional: direct links stay viewable before (and regardless of)
// moderation.
func (s Service) FindItem(ctx context.Context, itemID string) (entities.Item, error) {
	for _, recipe := range s.Official.Recipes() {
		if recipe.RecipeID == itemID {
			return entities.Item{Kind: entities.ItemKindRecipe, Recipe: recipe}, nil
		}
	}
	recipe, found, err := s.Community.FindRecipe(ctx, itemID)
	if err != nil {
		return entities.Item{}, err
	}
	if found {
		return entities.Item{Kind: entities.ItemKindRecipe, Recipe: recipe}, nil
	}
	for _, pack := range s.Official.Packs() {
		if pack.PackID == itemID {
			return entities.Item{Kind: entities.ItemKindPack, Pack: pack}, nil
		}
	}
	return entities.Item{}, domainerrors.ErrItemNotFound
}

// Search scores the official and community pools independently; a blank query
// returns both pools whole, in catalog order.
func (s Service) Search(ctx context.Context, query string) (ports.SearchResult, error) {
	logger := ResolveLogger(s.Logger)
	approved, err := s.Community.ListApproved(ctx)
	if err != nil {
		return ports.SearchResult{}, err
	}

	tokens, full := services.TokenizeQuery(query)
	if len(tokens) == 0 {
		return ports.SearchResult{
			Official:  s.Official.Recipes(),
			Community: approved,
		}, nil
	}

	result := ports.SearchResult{
		Official:  services.RankPool(s.Official.Recipes(), tokens, full),
		Community: services.RankPool(approved, tokens, full),
	}
	logger.Debug("catalog search completed",
		"event", "catalog_search_completed",
		"module", "catalog-discovery/catalog-service",
		"layer", "application",
		"query", full,
		"official_hits", len(result.Official),
		"community_hits", len(result.Community),
	)
	return result, nil
}

// RenderCard materializes the downloadable text card for any catalog item.
func (s Service) RenderCard(ctx context.Context, itemID string, unlocked bool) (ports.RenderedCard, error) {
	item, err := s.FindItem(ctx, itemID)
	if err != nil {
		return ports.RenderedCard{}, err
	}
	return ports.RenderedCard{
		Filename: services.CardFilename(item),
		Text:     services.ItemCard(item, unlocked),
	}, nil
}
