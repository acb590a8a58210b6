package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"anjett/contexts/community-kitchen/submission-service/application/commands"
	"anjett/contexts/community-kitchen/submission-service/application/queries"
	"anjett/contexts/community-kitchen/submission-service/domain/entities"
	domainerrors "anjett/contexts/community-kitchen/submission-service/domain/errors"
	"anjett/contexts/community-kitchen/submission-service/ports"
	httptransport "anjett/contexts/community-kitchen/submission-service/transport/http"
)

type Handler struct {
	SubmitDraft commands.SubmitDraftUseCase
	Approve     commands.ApproveSubmissionUseCase
	Reject      commands.RejectSubmissionUseCase
	Queries     queries.Queries
	Logger      *slog.Logger
}

func (h Handler) SubmitDraftHandler(ctx context.Context, req httptransport.SubmitDraftRequest) (httptransport.SubmissionResponse, error) {
	recipe, err := h.SubmitDraft.Execute(ctx, ports.DraftInput{
		Name:        req.Name,
		Chef:        req.Chef,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Tags:        req.Tags,
	})
	if err != nil {
		return httptransport.SubmissionResponse{}, err
	}
	resp := httptransport.SubmissionResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Submission = mapSubmission(recipe)
	return resp, nil
}

// ListSubmissionsHandler filters by status; an empty filter returns approved
// first, then pending.
func (h Handler) ListSubmissionsHandler(ctx context.Context, status string) (httptransport.SubmissionListResponse, error) {
	var (
		items []entities.CommunityRecipe
		err   error
	)
	switch strings.TrimSpace(status) {
	case "":
		var approved, pending []entities.CommunityRecipe
		approved, err = h.Queries.Approved(ctx)
		if err == nil {
			pending, err = h.Queries.Pending(ctx)
			items = append(approved, pending...)
		}
	case string(entities.SubmissionStatusPending):
		items, err = h.Queries.Pending(ctx)
	case string(entities.SubmissionStatusApproved):
		items, err = h.Queries.Approved(ctx)
	default:
		return httptransport.SubmissionListResponse{}, domainerrors.ErrInvalidDraft
	}
	if err != nil {
		return httptransport.SubmissionListResponse{}, err
	}
	resp := httptransport.SubmissionListResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Submissions = mapSubmissions(items)
	return resp, nil
}

func (h Handler) ApproveHandler(ctx context.Context, token string, recipeID string) (httptransport.SubmissionResponse, error) {
	recipe, err := h.Approve.Execute(ctx, token, strings.TrimSpace(recipeID))
	if err != nil {
		return httptransport.SubmissionResponse{}, err
	}
	resp := httptransport.SubmissionResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.Submission = mapSubmission(recipe)
	return resp, nil
}

func (h Handler) RejectHandler(
	ctx context.Context,
	token string,
	recipeID string,
	req httptransport.RejectSubmissionRequest,
) (httptransport.RejectSubmissionResponse, error) {
	if err := h.Reject.Execute(ctx, token, strings.TrimSpace(recipeID), req.Confirmed); err != nil {
		return httptransport.RejectSubmissionResponse{}, err
	}
	resp := httptransport.RejectSubmissionResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.RecipeID = strings.TrimSpace(recipeID)
	resp.Data.Rejected = true
	return resp, nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func mapSubmission(recipe entities.CommunityRecipe) httptransport.SubmissionView {
	view := httptransport.SubmissionView{
		ID:          recipe.RecipeID,
		Name:        recipe.Name,
		Chef:        recipe.ChefName,
		Preview:     recipe.Preview,
		Tags:        recipe.Tags,
		Ingredients: recipe.Ingredients,
		Price:       recipe.Price,
		Status:      string(recipe.Status),
		SubmittedAt: recipe.SubmittedAt.UTC().Format(time.RFC3339),
	}
	if recipe.ApprovedAt != nil {
		view.ApprovedAt = recipe.ApprovedAt.UTC().Format(time.RFC3339)
	}
	return view
}

func mapSubmissions(recipes []entities.CommunityRecipe) []httptransport.SubmissionView {
	views := make([]httptransport.SubmissionView, 0, len(recipes))
	for _, recipe := range recipes {
		views = append(views, mapSubmission(recipe))
	}
	return views
}
