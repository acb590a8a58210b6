package boltadapter

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"anjett/contexts/community-kitchen/submission-service/domain/entities"
	domainerrors "anjett/contexts/community-kitchen/submission-service/domain/errors"
	"anjett/internal/platform/kvstore"
)

const communityCollection = "community"

// Store keeps the community collection in the local bbolt file as one JSON
// document, mirroring the original single-session key-value layout. Mutations
// rewrite the whole document under the collection's version stamp.
type Store struct {
	kv      *kvstore.Store
	logger  *slog.Logger
	mu      sync.Mutex
	doc     communityDocument
	version uint64
}

type communityDocument struct {
	Approved []recipeDocument `json:"approved"`
	Pending  []recipeDocument `json:"pending"`
}

type recipeDocument struct {
	RecipeID    string     `json:"id"`
	Name        string     `json:"name"`
	Chef        string     `json:"chef"`
	Preview     string     `json:"preview"`
	Tags        []string   `json:"tags"`
	Keywords    []string   `json:"keywords"`
	Ingredients []string   `json:"need"`
	LockedSteps []string   `json:"stepsLocked"`
	Price       float64    `json:"priceCard"`
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
}

func NewStore(kv *kvstore.Store, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, logger: logger}
	version, found, err := kv.Load(communityCollection, &s.doc)
	if err != nil {
		return nil, err
	}
	s.version = version
	if !found {
		s.doc = communityDocument{
			Approved: []recipeDocument{toDocument(entities.SeedRecipe())},
			Pending:  []recipeDocument{},
		}
		if err := s.persist(); err != nil {
			return nil, err
		}
		logger.Info("community collection seeded",
			"event", "community_collection_seeded",
			"module", "community-kitchen/submission-service",
			"layer", "adapter",
		)
	}
	return s, nil
}

func (s *Store) CreatePending(_ context.Context, recipe entities.CommunityRecipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.contains(recipe.RecipeID) {
		return domainerrors.ErrDuplicateSubmission
	}
	s.doc.Pending = append([]recipeDocument{toDocument(recipe)}, s.doc.Pending...)
	return s.persist()
}

func (s *Store) ListPending(_ context.Context) ([]entities.CommunityRecipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toEntities(s.doc.Pending), nil
}

func (s *Store) ListApproved(_ context.Context) ([]entities.CommunityRecipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toEntities(s.doc.Approved), nil
}

func (s *Store) FindByID(_ context.Context, recipeID string) (entities.CommunityRecipe, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.doc.Approved {
		if doc.RecipeID == recipeID {
			return toEntity(doc), true, nil
		}
	}
	for _, doc := range s.doc.Pending {
		if doc.RecipeID == recipeID {
			return toEntity(doc), true, nil
		}
	}
	return entities.CommunityRecipe{}, false, nil
}

func (s *Store) Approve(_ context.Context, recipeID string, now time.Time) (entities.CommunityRecipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, doc := range s.doc.Pending {
		if doc.RecipeID != recipeID {
			continue
		}
		s.doc.Pending = append(s.doc.Pending[:i], s.doc.Pending[i+1:]...)
		doc.Status = string(entities.SubmissionStatusApproved)
		approvedAt := now
		doc.ApprovedAt = &approvedAt
		s.doc.Approved = append([]recipeDocument{doc}, s.doc.Approved...)
		if err := s.persist(); err != nil {
			return entities.CommunityRecipe{}, err
		}
		return toEntity(doc), nil
	}
	return entities.CommunityRecipe{}, domainerrors.ErrSubmissionNotFound
}

func (s *Store) RemovePending(_ context.Context, recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, doc := range s.doc.Pending {
		if doc.RecipeID == recipeID {
			s.doc.Pending = append(s.doc.Pending[:i], s.doc.Pending[i+1:]...)
			return s.persist()
		}
	}
	return domainerrors.ErrSubmissionNotFound
}

func (s *Store) contains(recipeID string) bool {
	for _, doc := range s.doc.Approved {
		if doc.RecipeID == recipeID {
			return true
		}
	}
	for _, doc := range s.doc.Pending {
		if doc.RecipeID == recipeID {
			return true
		}
	}
	return false
}

// persist must be called with the mutex held.
func (s *Store) persist() error {
	if err := s.kv.Save(communityCollection, s.doc, s.version); err != nil {
		return err
	}
	s.version++
	return nil
}

func toDocument(recipe entities.CommunityRecipe) recipeDocument {
	return recipeDocument{
		RecipeID:    recipe.RecipeID,
		Name:        recipe.Name,
		Chef:        recipe.ChefName,
		Preview:     recipe.Preview,
		Tags:        recipe.Tags,
		Keywords:    recipe.Keywords,
		Ingredients: recipe.Ingredients,
		LockedSteps: recipe.LockedSteps,
		Price:       recipe.Price,
		Status:      string(recipe.Status),
		SubmittedAt: recipe.SubmittedAt,
		ApprovedAt:  recipe.ApprovedAt,
	}
}

func toEntity(doc recipeDocument) entities.CommunityRecipe {
	price := doc.Price
	if price <= 0 {
		price = entities.DefaultCardPrice
	}
	return entities.CommunityRecipe{
		RecipeID:    doc.RecipeID,
		Name:        doc.Name,
		ChefName:    doc.Chef,
		Preview:     doc.Preview,
		Tags:        doc.Tags,
		Keywords:    doc.Keywords,
		Ingredients: doc.Ingredients,
		LockedSteps: doc.LockedSteps,
		Price:       price,
		Status:      entities.SubmissionStatus(doc.Status),
		SubmittedAt: doc.SubmittedAt,
		ApprovedAt:  doc.ApprovedAt,
	}
}

func toEntities(docs []recipeDocument) []entities.CommunityRecipe {
	recipes := make([]entities.CommunityRecipe, 0, len(docs))
	for _, doc := range docs {
		recipes = append(recipes, toEntity(doc))
	}
	return recipes
}
