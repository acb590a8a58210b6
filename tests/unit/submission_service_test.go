package unit

import (
	"context"
	"errors"
	"testing"

	communityerrors "anjett/contexts/community-kitchen/submission-service/domain/errors"
	communityhttp "anjett/contexts/community-kitchen/submission-service/transport/http"
)

func TestSubmissionDraftDefaults(t *testing.T) {
	modules := buildModules(t)

	resp, err := modules.Community.Handler.SubmitDraftHandler(context.Background(), communityhttp.SubmitDraftRequest{
		Name:        "Midnight Muncher",
		Chef:        "ChefOwl",
		Description: "Crunchy late-night fuel.",
		Ingredients: []string{"crackers", "cheese"},
		Steps:       []string{"Stack crackers.", "Add cheese."},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	submission := resp.Data.Submission
	if len(submission.ID) < 4 || submission.ID[:4] != "com-" {
		t.Fatalf("expected a com- prefixed id, got %q", submission.ID)
	}
	if submission.Price != 1.99 {
		t.Fatalf("expected the default card price, got %v", submission.Price)
	}
	if len(submission.Tags) != 1 || submission.Tags[0] != "community" {
		t.Fatalf("missing tags must default to the community tag, got %v", submission.Tags)
	}
	if submission.SubmittedAt == "" || submission.ApprovedAt != "" {
		t.Fatalf("pending submission timestamps look wrong: %+v", submission)
	}
}

func TestSubmissionRejectsInvalidDrafts(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  communityhttp.SubmitDraftRequest
	}{
		{"missing name", communityhttp.SubmitDraftRequest{
			Chef:        "ChefOwl",
			Description: "desc",
			Ingredients: []string{"a", "b"},
			Steps:       []string{"one.", "two."},
		}},
		{"single ingredient", communityhttp.SubmitDraftRequest{
			Name:        "Solo Snack",
			Chef:        "ChefOwl",
			Description: "desc",
			Ingredients: []string{"a"},
			Steps:       []string{"one.", "two."},
		}},
		{"single step", communityhttp.SubmitDraftRequest{
			Name:        "Solo Snack",
			Chef:        "ChefOwl",
			Description: "desc",
			Ingredients: []string{"a", "b"},
			Steps:       []string{"one."},
		}},
	}
	for _, tc := range cases {
		if _, err := modules.Community.Handler.SubmitDraftHandler(ctx, tc.req); !errors.Is(err, communityerrors.ErrInvalidDraft) {
			t.Fatalf("%s: expected ErrInvalidDraft, got %v", tc.name, err)
		}
	}
}

func TestSubmissionBlocksPersonalInfo(t *testing.T) {
	modules := buildModules(t)

	_, err := modules.Community.Handler.SubmitDraftHandler(context.Background(), communityhttp.SubmitDraftRequest{
		Name:        "Call Me Cookies",
		Chef:        "ChefOwl",
		Description: "Text 555-123-4567 for the secret batch.",
		Ingredients: []string{"flour", "sugar"},
		Steps:       []string{"Mix.", "Bake."},
	})
	if !errors.Is(err, communityerrors.ErrPersonalInfoDetected) {
		t.Fatalf("expected ErrPersonalInfoDetected, got %v", err)
	}
}

func TestSubmissionListFilters(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	submitTestDraft(t, modules)

	pending, err := modules.Community.Handler.ListSubmissionsHandler(ctx, "pending")
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending.Data.Submissions) != 1 || pending.Data.Submissions[0].Status != "pending" {
		t.Fatalf("unexpected pending list: %+v", pending.Data.Submissions)
	}

	approved, err := modules.Community.Handler.ListSubmissionsHandler(ctx, "approved")
	if err != nil {
		t.Fatalf("list approved failed: %v", err)
	}
	if len(approved.Data.Submissions) != 1 || approved.Data.Submissions[0].ID != "com-7mm-ice-monster" {
		t.Fatalf("expected only the seed to be approved, got %+v", approved.Data.Submissions)
	}

	all, err := modules.Community.Handler.ListSubmissionsHandler(ctx, "")
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all.Data.Submissions) != 2 || all.Data.Submissions[0].Status != "approved" {
		t.Fatalf("blank filter must list approved first, got %+v", all.Data.Submissions)
	}

	if _, err := modules.Community.Handler.ListSubmissionsHandler(ctx, "bogus"); !errors.Is(err, communityerrors.ErrInvalidDraft) {
		t.Fatalf("expected ErrInvalidDraft for an unknown filter, got %v", err)
	}
}
