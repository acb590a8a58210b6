package ports

import (
	"context"

	"anjett/contexts/catalog-discovery/catalog-service/domain/entities"
)

// OfficialCatalog is the fixed, built-in half of the storefront. It never
// changes at runtime.
type OfficialCatalog interface {
	Recipes() []entities.Recipe
	Packs() []entities.Pack
	Trending() []string
}

// CommunitySource exposes the moderated community half of the catalog. The
// composition root adapts the submission module onto this port.
type CommunitySource interface {
	ListApproved(ctx context.Context) ([]entities.Recipe, error)
	ListPending(ctx context.Context) ([]entities.Recipe, error)
	FindRecipe(ctx context.Context, recipeID string) (entities.Recipe, bool, error)
}

type SearchResult struct {
	Official  []entities.Recipe
	Community []entities.Recipe
}

type RenderedCard struct {
	Filename string
	Text     string
}
