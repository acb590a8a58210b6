package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	memoryadapter "anjett/contexts/community-kitchen/submission-service/adapters/memory"
	"anjett/contexts/community-kitchen/submission-service/application/commands"
	"anjett/contexts/community-kitchen/submission-service/domain/entities"
	domainerrors "anjett/contexts/community-kitchen/submission-service/domain/errors"
	"anjett/contexts/community-kitchen/submission-service/ports"
)

func newSubmitUseCase(store *memoryadapter.Store) commands.SubmitDraftUseCase {
	return commands.SubmitDraftUseCase{
		Repository: store,
		Clock:      store,
		IDGen:      store,
	}
}

func validDraft() ports.DraftInput {
	return ports.DraftInput{
		Name:        "Lava Cocoa",
		Chef:        "ChefNova",
		Description: "Hot cocoa that erupts with marshmallows.",
		Ingredients: []string{"cocoa", "milk", "marshmallows"},
		Steps:       []string{"Heat the milk.", "Stir in cocoa.", "Drop the marshmallows."},
	}
}

func TestSubmitDraftCreatesPendingRecipe(t *testing.T) {
	store := memoryadapter.NewStore()
	uc := newSubmitUseCase(store)

	recipe, err := uc.Execute(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !strings.HasPrefix(recipe.RecipeID, "com-") {
		t.Fatalf("expected community id prefix, got %q", recipe.RecipeID)
	}
	if recipe.Status != entities.SubmissionStatusPending {
		t.Fatalf("expected pending status, got %q", recipe.Status)
	}
	if recipe.Price != entities.DefaultCardPrice {
		t.Fatalf("expected default card price, got %v", recipe.Price)
	}

	pending, err := store.ListPending(context.Background())
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].RecipeID != recipe.RecipeID {
		t.Fatalf("expected the new draft at the head of pending, got %+v", pending)
	}
}

func TestSubmitDraftDefaultsTags(t *testing.T) {
	store := memoryadapter.NewStore()
	uc := newSubmitUseCase(store)

	input := validDraft()
	input.Tags = nil
	recipe, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if len(recipe.Tags) != 1 || recipe.Tags[0] != "community" {
		t.Fatalf("expected default community tag, got %v", recipe.Tags)
	}
}

func TestSubmitDraftDerivesKeywords(t *testing.T) {
	store := memoryadapter.NewStore()
	uc := newSubmitUseCase(store)

	input := validDraft()
	input.Tags = []string{"hot", "sweet"}
	recipe, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	want := []string{"lava cocoa", "chefnova", "hot", "sweet", "cocoa", "milk", "marshmallows", "heat the milk.", "stir in cocoa.", "drop the marshmallows."}
	if len(recipe.Keywords) != len(want) {
		t.Fatalf("expected %d keywords, got %v", len(want), recipe.Keywords)
	}
	for i, keyword := range want {
		if recipe.Keywords[i] != keyword {
			t.Fatalf("keyword %d: got %q, want %q", i, recipe.Keywords[i], keyword)
		}
	}
}

func TestSubmitDraftValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.DraftInput)
	}{
		{"empty name", func(in *ports.DraftInput) { in.Name = "  " }},
		{"empty description", func(in *ports.DraftInput) { in.Description = "" }},
		{"empty chef", func(in *ports.DraftInput) { in.Chef = "" }},
		{"one ingredient", func(in *ports.DraftInput) { in.Ingredients = []string{"cocoa"} }},
		{"blank ingredients collapse", func(in *ports.DraftInput) { in.Ingredients = []string{"cocoa", "  ", ""} }},
		{"one step", func(in *ports.DraftInput) { in.Steps = []string{"Heat the milk."} }},
	}
	for _, tc := range cases {
		store := memoryadapter.NewStore()
		uc := newSubmitUseCase(store)

		input := validDraft()
		tc.mutate(&input)
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerrors.ErrInvalidDraft) {
			t.Errorf("%s: expected ErrInvalidDraft, got %v", tc.name, err)
		}
		pending, _ := store.ListPending(context.Background())
		if len(pending) != 0 {
			t.Errorf("%s: rejected draft must not be persisted", tc.name)
		}
	}
}

func TestSubmitDraftBlocksPersonalInfo(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.DraftInput)
	}{
		{"phone number", func(in *ports.DraftInput) { in.Description = "Call me at 555-123-4567 for tips." }},
		{"at symbol", func(in *ports.DraftInput) { in.Name = "chef@home special" }},
		{"word street", func(in *ports.DraftInput) { in.Steps = []string{"Go to Baker Street.", "Cook."} }},
	}
	for _, tc := range cases {
		store := memoryadapter.NewStore()
		uc := newSubmitUseCase(store)

		input := validDraft()
		tc.mutate(&input)
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerrors.ErrPersonalInfoDetected) {
			t.Errorf("%s: expected ErrPersonalInfoDetected, got %v", tc.name, err)
		}
	}
}

func TestSubmitDraftPluggableFilter(t *testing.T) {
	store := memoryadapter.NewStore()
	uc := newSubmitUseCase(store)
	uc.PersonalInfo = func(string) bool { return true }

	if _, err := uc.Execute(context.Background(), validDraft()); !errors.Is(err, domainerrors.ErrPersonalInfoDetected) {
		t.Fatalf("expected substituted filter to block the draft, got %v", err)
	}
}
