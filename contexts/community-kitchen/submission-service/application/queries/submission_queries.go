package queries

import (
	"context"

	"anjett/contexts/community-kitchen/submission-service/domain/entities"
	"anjett/contexts/community-kitchen/submission-service/ports"
)

// Queries exposes read access to the community collection for display and for
// the catalog module (wired through the composition root).
type Queries struct {
	Repository ports.Repository
}

func (q Queries) Pending(ctx context.Context) ([]entities.CommunityRecipe, error) {
	return q.Repository.ListPending(ctx)
}

func (q Queries) Approved(ctx context.Context) ([]entities.CommunityRecipe, error) {
	return q.Repository.ListApproved(ctx)
}

// FindByID searches approved first, then pending, matching the catalog lookup
// order for community recipes.
func (q Queries) FindByID(ctx context.Context, recipeID string) (entities.CommunityRecipe, bool, error) {
	return q.Repository.FindByID(ctx, recipeID)
}
