package bootstrap

import (
	"context"
	"errors"

	catalogapp "anjett/contexts/catalog-discovery/catalog-service/application"
	catalogentities "anjett/contexts/catalog-discovery/catalog-service/domain/entities"
	catalogerrors "anjett/contexts/catalog-discovery/catalog-service/domain/errors"
	"anjett/contexts/community-kitchen/submission-service/application/queries"
	communityentities "anjett/contexts/community-kitchen/submission-service/domain/entities"
	communityerrors "anjett/contexts/community-kitchen/submission-service/domain/errors"
	adminapp "anjett/contexts/identity-access/admin-gate/application"
	adminerrors "anjett/contexts/identity-access/admin-gate/domain/errors"
	ledgerentities "anjett/contexts/storefront-commerce/purchase-ledger/domain/entities"
	ledgererrors "anjett/contexts/storefront-commerce/purchase-ledger/domain/errors"
	ledgerports "anjett/contexts/storefront-commerce/purchase-ledger/ports"
)

// The wrappers below are the only place modules see each other. Each one
// translates between two modules' ports so the modules themselves stay
// self-contained.

// communitySource feeds approved and pending community recipes into the
// catalog module.
type communitySource struct {
	queries queries.Queries
}

func (c communitySource) ListApproved(ctx context.Context) ([]catalogentities.Recipe, error) {
	approved, err := c.queries.Approved(ctx)
	if err != nil {
		return nil, err
	}
	return mapCommunityRecipes(approved), nil
}

func (c communitySource) ListPending(ctx context.Context) ([]catalogentities.Recipe, error) {
	pending, err := c.queries.Pending(ctx)
	if err != nil {
		return nil, err
	}
	return mapCommunityRecipes(pending), nil
}

func (c communitySource) FindRecipe(ctx context.Context, recipeID string) (catalogentities.Recipe, bool, error) {
	recipe, found, err := c.queries.FindByID(ctx, recipeID)
	if err != nil || !found {
		return catalogentities.Recipe{}, false, err
	}
	return mapCommunityRecipe(recipe), true, nil
}

func mapCommunityRecipe(recipe communityentities.CommunityRecipe) catalogentities.Recipe {
	return catalogentities.Recipe{
		RecipeID:    recipe.RecipeID,
		Origin:      catalogentities.OriginCommunity,
		Name:        recipe.Name,
		Preview:     recipe.Preview,
		ChefName:    recipe.ChefName,
		Tags:        recipe.Tags,
		Keywords:    recipe.Keywords,
		Ingredients: recipe.Ingredients,
		LockedSteps: recipe.LockedSteps,
		Price:       recipe.Price,
	}
}

func mapCommunityRecipes(recipes []communityentities.CommunityRecipe) []catalogentities.Recipe {
	mapped := make([]catalogentities.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		mapped = append(mapped, mapCommunityRecipe(recipe))
	}
	return mapped
}

// moderatorGate lets the submission module verify capability tokens without
// knowing the admin-gate module.
type moderatorGate struct {
	admin adminapp.Service
}

func (g moderatorGate) Verify(ctx context.Context, token string) error {
	if err := g.admin.Verify(ctx, token); err != nil {
		if errors.Is(err, adminerrors.ErrUnauthorized) {
			return communityerrors.ErrUnauthorized
		}
		return err
	}
	return nil
}

// catalogGateway resolves items and renders unlocked cards for the purchase
// ledger.
type catalogGateway struct {
	catalog catalogapp.Service
}

func (g catalogGateway) ItemForPurchase(ctx context.Context, itemID string) (ledgerports.CatalogItem, error) {
	item, err := g.catalog.FindItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrItemNotFound) {
			return ledgerports.CatalogItem{}, ledgererrors.ErrItemNotFound
		}
		return ledgerports.CatalogItem{}, err
	}
	return ledgerports.CatalogItem{
		ItemID:       item.ID(),
		Name:         item.Name(),
		Price:        item.Price(),
		Kind:         purchaseKind(item),
		ArtifactType: artifactType(item),
	}, nil
}

func (g catalogGateway) UnlockedCard(ctx context.Context, itemID string) (ledgerports.RenderedCard, error) {
	card, err := g.catalog.RenderCard(ctx, itemID, true)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrItemNotFound) {
			return ledgerports.RenderedCard{}, ledgererrors.ErrItemNotFound
		}
		return ledgerports.RenderedCard{}, err
	}
	return ledgerports.RenderedCard{
		Filename: card.Filename,
		Text:     card.Text,
	}, nil
}

func purchaseKind(item catalogentities.Item) ledgerentities.PurchaseKind {
	if item.Kind == catalogentities.ItemKindPack {
		return ledgerentities.PurchaseKindPack
	}
	if item.Recipe.IsCommunity() {
		return ledgerentities.PurchaseKindCommunityRecipe
	}
	return ledgerentities.PurchaseKindOfficialRecipe
}

func artifactType(item catalogentities.Item) ledgerentities.ArtifactType {
	if item.Kind == catalogentities.ItemKindPack {
		return ledgerentities.ArtifactTypePack
	}
	return ledgerentities.ArtifactTypeRecipe
}
