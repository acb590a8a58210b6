package commands

import (
	"context"
	"log/slog"
	"strings"

	"anjett/contexts/community-kitchen/submission-service/application"
	"anjett/contexts/community-kitchen/submission-service/domain/entities"
	domainerrors "anjett/contexts/community-kitchen/submission-service/domain/errors"
	"anjett/contexts/community-kitchen/submission-service/ports"
)

// ApproveSubmissionUseCase moves a pending recipe to the head of the approved
// list. Approval is terminal; there is no path back to pending.
type ApproveSubmissionUseCase struct {
	Repository ports.Repository
	Gate       ports.ModeratorGate
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc ApproveSubmissionUseCase) Execute(ctx context.Context, token string, recipeID string) (entities.CommunityRecipe, error) {
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return entities.CommunityRecipe{}, domainerrors.ErrSubmissionNotFound
	}
	if err := uc.Gate.Verify(ctx, token); err != nil {
		return entities.CommunityRecipe{}, err
	}
	approved, err := uc.Repository.Approve(ctx, recipeID, uc.Clock.Now().UTC())
	if err != nil {
		return entities.CommunityRecipe{}, err
	}
	application.ResolveLogger(uc.Logger).Info("submission approved",
		"event", "submission_approved",
		"module", "community-kitchen/submission-service",
		"layer", "application",
		"recipe_id", approved.RecipeID,
	)
	return approved, nil
}

// RejectSubmissionUseCase deletes a pending recipe. Rejection is terminal and
// requires the caller to have confirmed the gesture.
type RejectSubmissionUseCase struct {
	Repository ports.Repository
	Gate       ports.ModeratorGate
	Logger     *slog.Logger
}

func (uc RejectSubmissionUseCase) Execute(ctx context.Context, token string, recipeID string, confirmed bool) error {
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return domainerrors.ErrSubmissionNotFound
	}
	if err := uc.Gate.Verify(ctx, token); err != nil {
		return err
	}
	if !confirmed {
		return domainerrors.ErrConfirmationRequired
	}
	if err := uc.Repository.RemovePending(ctx, recipeID); err != nil {
		return err
	}
	application.ResolveLogger(uc.Logger).Info("submission rejected",
		"event", "submission_rejected",
		"module", "community-kitchen/submission-service",
		"layer", "application",
		"recipe_id", recipeID,
	)
	return nil
}
