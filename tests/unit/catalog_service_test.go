package unit

import (
	"context"
	"errors"
	"strings"
	"testing"

	catalogerrors "anjett/contexts/catalog-discovery/catalog-service/domain/errors"
	communityhttp "anjett/contexts/community-kitchen/submission-service/transport/http"
	"anjett/internal/app/bootstrap"
	"anjett/internal/platform/httpserver"
)

func buildModules(t *testing.T) httpserver.Modules {
	t.Helper()
	modules, err := bootstrap.BuildMemoryModules(nil)
	if err != nil {
		t.Fatalf("build modules: %v", err)
	}
	return modules
}

func TestOfficialCatalogIsStable(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	resp, err := modules.Catalog.Handler.OfficialCatalogHandler(ctx)
	if err != nil {
		t.Fatalf("official catalog failed: %v", err)
	}
	if len(resp.Data.Recipes) != 4 {
		t.Fatalf("expected 4 official recipes, got %d", len(resp.Data.Recipes))
	}
	if resp.Data.Recipes[0].ID != "off-ice-beast" {
		t.Fatalf("expected catalog order to start with off-ice-beast, got %s", resp.Data.Recipes[0].ID)
	}
	if len(resp.Data.Packs) != 3 {
		t.Fatalf("expected 3 packs, got %d", len(resp.Data.Packs))
	}
	if len(resp.Data.Trending) == 0 {
		t.Fatalf("expected trending names")
	}
	for _, recipe := range resp.Data.Recipes {
		if recipe.Price != 2.99 {
			t.Fatalf("official recipe %s has price %v", recipe.ID, recipe.Price)
		}
	}
}

func TestCommunityCatalogStartsWithSeed(t *testing.T) {
	modules := buildModules(t)

	resp, err := modules.Catalog.Handler.CommunityCatalogHandler(context.Background())
	if err != nil {
		t.Fatalf("community catalog failed: %v", err)
	}
	if len(resp.Data.Recipes) != 1 || resp.Data.Recipes[0].ID != "com-7mm-ice-monster" {
		t.Fatalf("expected the seeded community recipe, got %+v", resp.Data.Recipes)
	}
	if resp.Data.Recipes[0].Chef != "ChefJett7" {
		t.Fatalf("expected seed chef attribution, got %q", resp.Data.Recipes[0].Chef)
	}
}

func TestSearchRanksExactKeywordFirst(t *testing.T) {
	modules := buildModules(t)

	resp, err := modules.Catalog.Handler.SearchHandler(context.Background(), "ice beast")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(resp.Data.Official) != 2 {
		t.Fatalf("expected 2 official hits, got %d", len(resp.Data.Official))
	}
	if resp.Data.Official[0].ID != "off-ice-beast" {
		t.Fatalf("expected exact keyword match first, got %s", resp.Data.Official[0].ID)
	}
	if resp.Data.Official[1].ID != "off-mega-smoothie" {
		t.Fatalf("expected partial match second, got %s", resp.Data.Official[1].ID)
	}
	if len(resp.Data.Community) != 1 || resp.Data.Community[0].ID != "com-7mm-ice-monster" {
		t.Fatalf("expected the seed as the community hit, got %+v", resp.Data.Community)
	}
}

func TestSearchBlankQueryReturnsWholePools(t *testing.T) {
	modules := buildModules(t)

	resp, err := modules.Catalog.Handler.SearchHandler(context.Background(), "   ")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(resp.Data.Official) != 4 {
		t.Fatalf("blank query must return the whole official pool, got %d", len(resp.Data.Official))
	}
	if len(resp.Data.Community) != 1 {
		t.Fatalf("blank query must return the whole community pool, got %d", len(resp.Data.Community))
	}
	if resp.Data.Official[0].ID != "off-ice-beast" {
		t.Fatalf("blank query must preserve catalog order")
	}
}

func TestSearchNoMatches(t *testing.T) {
	modules := buildModules(t)

	resp, err := modules.Catalog.Handler.SearchHandler(context.Background(), "zzzz-nothing")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(resp.Data.Official) != 0 || len(resp.Data.Community) != 0 {
		t.Fatalf("expected empty result sets, got %d/%d", len(resp.Data.Official), len(resp.Data.Community))
	}
}

func TestGetItemResolvesPacksAndUnknowns(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	pack, err := modules.Catalog.Handler.GetItemHandler(ctx, "pack-ice")
	if err != nil {
		t.Fatalf("pack lookup failed: %v", err)
	}
	if pack.Data.Kind != "pack" || pack.Data.Pack == nil {
		t.Fatalf("expected a pack item, got %+v", pack.Data)
	}

	_, err = modules.Catalog.Handler.GetItemHandler(ctx, "off-unknown")
	if !errors.Is(err, catalogerrors.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

// Pending submissions stay resolvable by direct id so shared links keep
// working before moderation.
func TestGetItemResolvesPendingSubmission(t *testing.T) {
	modules := buildModules(t)
	ctx := context.Background()

	submitted, err := modules.Community.Handler.SubmitDraftHandler(ctx, communityhttp.SubmitDraftRequest{
		Name:        "Secret Pop",
		Chef:        "ChefHidden",
		Description: "Not approved yet.",
		Ingredients: []string{"ice", "juice"},
		Steps:       []string{"Freeze.", "Serve."},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	item, err := modules.Catalog.Handler.GetItemHandler(ctx, submitted.Data.Submission.ID)
	if err != nil {
		t.Fatalf("pending item lookup failed: %v", err)
	}
	if item.Data.Recipe == nil || item.Data.Recipe.ID != submitted.Data.Submission.ID {
		t.Fatalf("expected the pending recipe, got %+v", item.Data)
	}
}

func TestPreviewCardNeverLeaksSteps(t *testing.T) {
	modules := buildModules(t)

	resp, err := modules.Catalog.Handler.PreviewCardHandler(context.Background(), "off-ice-beast")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if resp.Data.Unlocked {
		t.Fatalf("preview card must be locked")
	}
	if !strings.Contains(resp.Data.Text, "LOCKED SECTION") {
		t.Fatalf("preview card missing paywall notice")
	}
	if strings.Contains(resp.Data.Text, "Freeze 3") {
		t.Fatalf("preview card leaked a locked step")
	}
	if resp.Data.Filename != "Ice-Beast-AnJett-Card.txt" {
		t.Fatalf("unexpected filename %q", resp.Data.Filename)
	}
}
