package commands

import (
	"context"
	"log/slog"
	"strings"

	"anjett/contexts/community-kitchen/submission-service/application"
	"anjett/contexts/community-kitchen/submission-service/domain/entities"
	domainerrors "anjett/contexts/community-kitchen/submission-service/domain/errors"
	"anjett/contexts/community-kitchen/submission-service/domain/services"
	"anjett/contexts/community-kitchen/submission-service/ports"
)

const (
	defaultChefName    = "CommunityChef"
	defaultPreview     = "A brand new community monster recipe!"
	keywordIngredients = 6
	keywordSteps       = 3
)

var (
	defaultTags        = []string{"community"}
	defaultIngredients = []string{"mystery ingredient 1", "mystery ingredient 2"}
	defaultSteps       = []string{"Do something awesome", "Roar", "Eat"}
)

// SubmitDraftUseCase validates a community submission, completes it into a
// fully populated pending recipe, and persists it at the head of the queue.
type SubmitDraftUseCase struct {
	Repository   ports.Repository
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	PersonalInfo services.PersonalInfoFilter
	Logger       *slog.Logger
}

func (uc SubmitDraftUseCase) Execute(ctx context.Context, input ports.DraftInput) (entities.CommunityRecipe, error) {
	logger := application.ResolveLogger(uc.Logger)

	name := strings.TrimSpace(input.Name)
	chef := strings.TrimSpace(input.Chef)
	description := strings.TrimSpace(input.Description)
	ingredients := cleanLines(input.Ingredients)
	steps := cleanLines(input.Steps)
	tags := cleanLines(input.Tags)

	if name == "" || description == "" || chef == "" || len(ingredients) < 2 || len(steps) < 2 {
		return entities.CommunityRecipe{}, domainerrors.ErrInvalidDraft
	}

	combined := strings.ToLower(strings.Join([]string{
		name,
		description,
		strings.Join(steps, " "),
		strings.Join(ingredients, " "),
	}, " "))
	filter := uc.PersonalInfo
	if filter == nil {
		filter = services.DetectPersonalInfo
	}
	if filter(combined) {
		logger.Info("submission blocked by personal info filter",
			"event", "submission_personal_info_blocked",
			"module", "community-kitchen/submission-service",
			"layer", "application",
		)
		return entities.CommunityRecipe{}, domainerrors.ErrPersonalInfoDetected
	}

	recipeID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.CommunityRecipe{}, err
	}
	draft := completeDraft(entities.CommunityRecipe{
		RecipeID:    "com-" + recipeID,
		Name:        name,
		ChefName:    chef,
		Preview:     description,
		Tags:        tags,
		Ingredients: ingredients,
		LockedSteps: steps,
		Status:      entities.SubmissionStatusPending,
		SubmittedAt: uc.Clock.Now().UTC(),
	})
	draft.Keywords = deriveKeywords(draft)

	if err := uc.Repository.CreatePending(ctx, draft); err != nil {
		return entities.CommunityRecipe{}, err
	}
	logger.Info("submission queued for review",
		"event", "submission_queued",
		"module", "community-kitchen/submission-service",
		"layer", "application",
		"recipe_id", draft.RecipeID,
		"chef", draft.ChefName,
	)
	return draft, nil
}

// completeDraft fills every optional field left blank with its enumerated
// default so a persisted record is always fully populated.
func completeDraft(draft entities.CommunityRecipe) entities.CommunityRecipe {
	if draft.ChefName == "" {
		draft.ChefName = defaultChefName
	}
	if draft.Preview == "" {
		draft.Preview = defaultPreview
	}
	if len(draft.Tags) == 0 {
		draft.Tags = append([]string(nil), defaultTags...)
	}
	if len(draft.Ingredients) == 0 {
		draft.Ingredients = append([]string(nil), defaultIngredients...)
	}
	if len(draft.LockedSteps) == 0 {
		draft.LockedSteps = append([]string(nil), defaultSteps...)
	}
	draft.Price = entities.DefaultCardPrice
	return draft
}

// deriveKeywords builds the search-matching set from name, chef, tags, and a
// bounded prefix of the ingredient and step lines.
func deriveKeywords(draft entities.CommunityRecipe) []string {
	sources := []string{draft.Name, draft.ChefName}
	sources = append(sources, draft.Tags...)
	sources = append(sources, head(draft.Ingredients, keywordIngredients)...)
	sources = append(sources, head(draft.LockedSteps, keywordSteps)...)

	keywords := make([]string, 0, len(sources))
	for _, source := range sources {
		if value := strings.ToLower(strings.TrimSpace(source)); value != "" {
			keywords = append(keywords, value)
		}
	}
	return keywords
}

func head(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

func cleanLines(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
