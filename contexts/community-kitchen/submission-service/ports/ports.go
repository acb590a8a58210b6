package ports

import (
	"context"
	"time"

	"anjett/contexts/community-kitchen/submission-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ModeratorGate verifies the capability token required by approve/reject.
// The admin-gate module implements it through the composition root.
type ModeratorGate interface {
	Verify(ctx context.Context, token string) error
}

type DraftInput struct {
	Name        string
	Chef        string
	Description string
	Ingredients []string
	Steps       []string
	Tags        []string
}

// Repository persists the community collection. A recipe id lives in at most
// one of pending/approved at any time; Approve moves it atomically.
type Repository interface {
	CreatePending(ctx context.Context, recipe entities.CommunityRecipe) error
	ListPending(ctx context.Context) ([]entities.CommunityRecipe, error)
	ListApproved(ctx context.Context) ([]entities.CommunityRecipe, error)
	FindByID(ctx context.Context, recipeID string) (entities.CommunityRecipe, bool, error)
	Approve(ctx context.Context, recipeID string, now time.Time) (entities.CommunityRecipe, error)
	RemovePending(ctx context.Context, recipeID string) error
}
