package memoryadapter

import (
	"context"
	"sync"
	"time"

	"anjett/contexts/storefront-commerce/purchase-ledger/domain/entities"

	"github.com/google/uuid"
)

// Store is the in-memory ledger used by tests and the memory storage driver.
type Store struct {
	mu        sync.Mutex
	purchases []entities.Purchase
}

func NewStore() *Store {
	return &Store{purchases: []entities.Purchase{}}
}

func (s *Store) Add(_ context.Context, purchase entities.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = append([]entities.Purchase{purchase}, s.purchases...)
	return nil
}

func (s *Store) List(_ context.Context) ([]entities.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Purchase(nil), s.purchases...), nil
}

func (s *Store) FindByID(_ context.Context, purchaseID string) (entities.Purchase, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, purchase := range s.purchases {
		if purchase.PurchaseID == purchaseID {
			return purchase, true, nil
		}
	}
	return entities.Purchase{}, false, nil
}

func (s *Store) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = []entities.Purchase{}
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// NewID lets the store double as the module id generator in tests.
func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
