package boltadapter

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"anjett/contexts/storefront-commerce/purchase-ledger/domain/entities"
	"anjett/internal/platform/kvstore"
)

const purchasesCollection = "purchases"

// Store keeps the ledger in the local bbolt file as one JSON document,
// rewritten whole on every mutation under the collection's version stamp.
type Store struct {
	kv      *kvstore.Store
	logger  *slog.Logger
	mu      sync.Mutex
	doc     []purchaseDocument
	version uint64
}

type purchaseDocument struct {
	PurchaseID   string    `json:"id"`
	ItemID       string    `json:"itemId"`
	ItemName     string    `json:"name"`
	Price        float64   `json:"price"`
	Kind         string    `json:"kind"`
	ArtifactType string    `json:"type"`
	PurchasedAt  time.Time `json:"when"`
}

func NewStore(kv *kvstore.Store, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, logger: logger}
	version, found, err := kv.Load(purchasesCollection, &s.doc)
	if err != nil {
		return nil, err
	}
	s.version = version
	if !found {
		s.doc = []purchaseDocument{}
		if err := s.persist(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) Add(_ context.Context, purchase entities.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = append([]purchaseDocument{toDocument(purchase)}, s.doc...)
	return s.persist()
}

func (s *Store) List(_ context.Context) ([]entities.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	purchases := make([]entities.Purchase, 0, len(s.doc))
	for _, doc := range s.doc {
		purchases = append(purchases, toEntity(doc))
	}
	return purchases, nil
}

func (s *Store) FindByID(_ context.Context, purchaseID string) (entities.Purchase, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.doc {
		if doc.PurchaseID == purchaseID {
			return toEntity(doc), true, nil
		}
	}
	return entities.Purchase{}, false, nil
}

func (s *Store) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = []purchaseDocument{}
	return s.persist()
}

// persist must be called with the mutex held.
func (s *Store) persist() error {
	if err := s.kv.Save(purchasesCollection, s.doc, s.version); err != nil {
		return err
	}
	s.version++
	return nil
}

func toDocument(purchase entities.Purchase) purchaseDocument {
	return purchaseDocument{
		PurchaseID:   purchase.PurchaseID,
		ItemID:       purchase.ItemID,
		ItemName:     purchase.ItemName,
		Price:        purchase.Price,
		Kind:         string(purchase.Kind),
		ArtifactType: string(purchase.ArtifactType),
		PurchasedAt:  purchase.PurchasedAt,
	}
}

func toEntity(doc purchaseDocument) entities.Purchase {
	return entities.Purchase{
		PurchaseID:   doc.PurchaseID,
		ItemID:       doc.ItemID,
		ItemName:     doc.ItemName,
		Price:        doc.Price,
		Kind:         entities.PurchaseKind(doc.Kind),
		ArtifactType: entities.ArtifactType(doc.ArtifactType),
		PurchasedAt:  doc.PurchasedAt,
	}
}
