package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"anjett/contexts/community-kitchen/submission-service/domain/entities"
	domainerrors "anjett/contexts/community-kitchen/submission-service/domain/errors"
)

// Store is an in-memory community collection for local runtime and tests.
// It starts with the same pre-approved example recipe the durable stores seed
// so the catalog is never empty.
type Store struct {
	mu       sync.RWMutex
	pending  []entities.CommunityRecipe
	approved []entities.CommunityRecipe
}

func NewStore() *Store {
	return &Store{
		approved: []entities.CommunityRecipe{entities.SeedRecipe()},
	}
}

func (s *Store) CreatePending(_ context.Context, recipe entities.CommunityRecipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range append(s.pending, s.approved...) {
		if existing.RecipeID == recipe.RecipeID {
			return domainerrors.ErrDuplicateSubmission
		}
	}
	s.pending = append([]entities.CommunityRecipe{recipe}, s.pending...)
	return nil
}

func (s *Store) ListPending(_ context.Context) ([]entities.CommunityRecipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.CommunityRecipe(nil), s.pending...), nil
}

func (s *Store) ListApproved(_ context.Context) ([]entities.CommunityRecipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.CommunityRecipe(nil), s.approved...), nil
}

func (s *Store) FindByID(_ context.Context, recipeID string) (entities.CommunityRecipe, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, recipe := range s.approved {
		if recipe.RecipeID == recipeID {
			return recipe, true, nil
		}
	}
	for _, recipe := range s.pending {
		if recipe.RecipeID == recipeID {
			return recipe, true, nil
		}
	}
	return entities.CommunityRecipe{}, false, nil
}

func (s *Store) Approve(_ context.Context, recipeID string, now time.Time) (entities.CommunityRecipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, recipe := range s.pending {
		if recipe.RecipeID != recipeID {
			continue
		}
		s.pending = append(s.pending[:i], s.pending[i+1:]...)
		recipe.Status = entities.SubmissionStatusApproved
		approvedAt := now
		recipe.ApprovedAt = &approvedAt
		s.approved = append([]entities.CommunityRecipe{recipe}, s.approved...)
		return recipe, nil
	}
	return entities.CommunityRecipe{}, domainerrors.ErrSubmissionNotFound
}

func (s *Store) RemovePending(_ context.Context, recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, recipe := range s.pending {
		if recipe.RecipeID == recipeID {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrSubmissionNotFound
}

// Now lets the store double as the module clock in tests.
func (s *Store) Now() time.Time {
	return time.Now()
}

// NewID lets the store double as the module id generator in tests.
func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
