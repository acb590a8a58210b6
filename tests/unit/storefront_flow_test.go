package unit

import (
	"context"
	"errors"
	"strings"
	"testing"

	communityerrors "anjett/contexts/community-kitchen/submission-service/domain/errors"
	communityhttp "anjett/contexts/community-kitchen/submission-service/transport/http"
	ledgererrors "anjett/contexts/storefront-commerce/purchase-ledger/domain/errors"
	ledgerhttp "anjett/contexts/storefront-commerce/purchase-ledger/transport/http"
	"anjett/internal/platform/httpserver"
)

func submitTestDraft(t *testing.T, modules httpserver.Modules) communityhttp.SubmissionView {
	t.Helper()
	resp, err := modules.Community.Handler.SubmitDraftHandler(context.Background(), communityhttp.SubmitDraftRequest{
		Name:        "Volcano Floats",
		Chef:        "ChefNova",
		Description: "Fizzy lava in a cup.",
		Ingredients: []string{"soda", "sherbet", "cherries"},
		Steps:       []string{"Scoop sherbet into a glass.", "Pour soda slowly.", "Top with cherries."},
		Tags:        []string{"drink", "fizzy"},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return resp.Data.Submission
}

func enableModeration(t *testing.T, modules httpserver.Modules) string {
	t.Helper()
	resp, err := modules.Admin.Handler.ToggleHandler(context.Background())
	if err != nil {
		t.Fatalf("admin toggle failed: %v", err)
	}
	if !resp.Data.ModerationEnabled || resp.Data.Token == "" {
		t.Fatalf("expected moderation enabled with a minted token, got %+v", resp.Data)
	}
	return resp.Data.Token
}

func TestModerationRoundTrip(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	token := enableModeration(t, modules)
	submission := submitTestDraft(t, modules)
	if submission.Status != "pending" {
		t.Fatalf("fresh submission should be pending, got %q", submission.Status)
	}

	approved, err := modules.Community.Handler.ApproveHandler(ctx, token, submission.ID)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Data.Submission.Status != "approved" || approved.Data.Submission.ApprovedAt == "" {
		t.Fatalf("expected an approved submission, got %+v", approved.Data.Submission)
	}

	catalog, err := modules.Catalog.Handler.CommunityCatalogHandler(ctx)
	if err != nil {
		t.Fatalf("community catalog failed: %v", err)
	}
	if len(catalog.Data.Recipes) != 2 || catalog.Data.Recipes[0].ID != submission.ID {
		t.Fatalf("newest approval should lead the community shelf, got %+v", catalog.Data.Recipes)
	}

	search, err := modules.Catalog.Handler.SearchHandler(ctx, "volcano")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(search.Data.Community) != 1 || search.Data.Community[0].ID != submission.ID {
		t.Fatalf("approved recipe should be searchable, got %+v", search.Data.Community)
	}
}

func TestApproveRequiresModeratorToken(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	submission := submitTestDraft(t, modules)

	// Moderation disabled: no token can be valid.
	if _, err := modules.Community.Handler.ApproveHandler(ctx, "anything", submission.ID); !errors.Is(err, communityerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized while moderation is off, got %v", err)
	}

	enableModeration(t, modules)
	if _, err := modules.Community.Handler.ApproveHandler(ctx, "wrong-token", submission.ID); !errors.Is(err, communityerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for a wrong token, got %v", err)
	}

	pending, err := modules.Community.Handler.ListSubmissionsHandler(ctx, "pending")
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending.Data.Submissions) != 1 {
		t.Fatalf("failed approvals must not consume the submission, got %d pending", len(pending.Data.Submissions))
	}
}

func TestRejectRemovesSubmission(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	token := enableModeration(t, modules)
	submission := submitTestDraft(t, modules)

	_, err := modules.Community.Handler.RejectHandler(ctx, token, submission.ID, communityhttp.RejectSubmissionRequest{})
	if !errors.Is(err, communityerrors.ErrConfirmationRequired) {
		t.Fatalf("unconfirmed reject must be refused, got %v", err)
	}

	resp, err := modules.Community.Handler.RejectHandler(ctx, token, submission.ID, communityhttp.RejectSubmissionRequest{Confirmed: true})
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if !resp.Data.Rejected {
		t.Fatalf("expected a rejected receipt, got %+v", resp.Data)
	}

	list, err := modules.Community.Handler.ListSubmissionsHandler(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, item := range list.Data.Submissions {
		if item.ID == submission.ID {
			t.Fatalf("rejected submission is still listed: %+v", item)
		}
	}
}

func TestPurchaseUnlocksCard(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	resp, err := modules.Purchases.Handler.RecordPurchaseHandler(ctx, ledgerhttp.RecordPurchaseRequest{
		ItemID:    "off-ice-beast",
		Confirmed: true,
	})
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if resp.Data.Outcome != "purchased" || resp.Data.Purchase == nil || resp.Data.Card == nil {
		t.Fatalf("expected a completed purchase with a card, got %+v", resp.Data)
	}
	if resp.Data.Purchase.Kind != "recipe-official" || resp.Data.Purchase.Artifact != "recipe" {
		t.Fatalf("unexpected purchase classification: %+v", resp.Data.Purchase)
	}
	if !strings.Contains(resp.Data.Card.Text, "Full Steps:") {
		t.Fatalf("purchased card must be unlocked:\n%s", resp.Data.Card.Text)
	}
	if !strings.Contains(resp.Data.Card.Text, "Freeze 3") {
		t.Fatalf("purchased card must include the locked steps:\n%s", resp.Data.Card.Text)
	}
	if strings.Contains(resp.Data.Card.Text, "LOCKED SECTION") {
		t.Fatalf("purchased card still shows the paywall:\n%s", resp.Data.Card.Text)
	}
}

func TestPurchaseDeclinedIsQuiet(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	resp, err := modules.Purchases.Handler.RecordPurchaseHandler(ctx, ledgerhttp.RecordPurchaseRequest{ItemID: "pack-ice"})
	if err != nil {
		t.Fatalf("declined purchase must not error: %v", err)
	}
	if resp.Data.Outcome != "cancelled" || resp.Data.Purchase != nil || resp.Data.Card != nil {
		t.Fatalf("declined purchase must record nothing, got %+v", resp.Data)
	}

	list, err := modules.Purchases.Handler.ListPurchasesHandler(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list.Data.Purchases) != 0 {
		t.Fatalf("declined purchase left a ledger entry: %+v", list.Data.Purchases)
	}
}

func TestPurchaseCommunityRecipeAfterApproval(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	token := enableModeration(t, modules)
	submission := submitTestDraft(t, modules)
	if _, err := modules.Community.Handler.ApproveHandler(ctx, token, submission.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	resp, err := modules.Purchases.Handler.RecordPurchaseHandler(ctx, ledgerhttp.RecordPurchaseRequest{
		ItemID:    submission.ID,
		Confirmed: true,
	})
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if resp.Data.Purchase.Kind != "recipe-community" {
		t.Fatalf("expected a community purchase, got %q", resp.Data.Purchase.Kind)
	}
	if !strings.Contains(resp.Data.Card.Text, "Chef: ChefNova") {
		t.Fatalf("community card must credit the chef:\n%s", resp.Data.Card.Text)
	}
	if !strings.Contains(resp.Data.Card.Text, "Scoop sherbet into a glass.") {
		t.Fatalf("community card must include the submitted steps:\n%s", resp.Data.Card.Text)
	}
}

func TestRedownloadAndClearHistory(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	bought, err := modules.Purchases.Handler.RecordPurchaseHandler(ctx, ledgerhttp.RecordPurchaseRequest{
		ItemID:    "pack-snack",
		Confirmed: true,
	})
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	again, err := modules.Purchases.Handler.RedownloadHandler(ctx, bought.Data.Purchase.ID)
	if err != nil {
		t.Fatalf("redownload failed: %v", err)
	}
	if again.Data.Card.Text != bought.Data.Card.Text || again.Data.Card.Filename != bought.Data.Card.Filename {
		t.Fatalf("redownloaded card differs from the original")
	}

	if _, err := modules.Purchases.Handler.ClearHistoryHandler(ctx, ledgerhttp.ClearHistoryRequest{}); !errors.Is(err, ledgererrors.ErrConfirmationRequired) {
		t.Fatalf("unconfirmed clear must be refused, got %v", err)
	}
	if _, err := modules.Purchases.Handler.ClearHistoryHandler(ctx, ledgerhttp.ClearHistoryRequest{Confirmed: true}); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if _, err := modules.Purchases.Handler.RedownloadHandler(ctx, bought.Data.Purchase.ID); !errors.Is(err, ledgererrors.ErrPurchaseNotFound) {
		t.Fatalf("expected ErrPurchaseNotFound after clearing, got %v", err)
	}
}
