package boltadapter

import (
	"context"
	"log/slog"
	"sync"

	"anjett/contexts/identity-access/admin-gate/domain/entities"
	"anjett/internal/platform/kvstore"
)

const adminCollection = "admin"

// Store keeps the admin state in the local bbolt file. A missing collection
// reads as the disabled state.
type Store struct {
	kv      *kvstore.Store
	logger  *slog.Logger
	mu      sync.Mutex
	doc     adminDocument
	version uint64
}

type adminDocument struct {
	Enabled   bool   `json:"enabled"`
	TokenHash string `json:"tokenHash,omitempty"`
}

func NewStore(kv *kvstore.Store, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, logger: logger}
	version, found, err := kv.Load(adminCollection, &s.doc)
	if err != nil {
		return nil, err
	}
	s.version = version
	if !found {
		s.doc = adminDocument{}
		if err := s.persist(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) Load(_ context.Context) (entities.AdminState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entities.AdminState{Enabled: s.doc.Enabled, TokenHash: s.doc.TokenHash}, nil
}

func (s *Store) Save(_ context.Context, state entities.AdminState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = adminDocument{Enabled: state.Enabled, TokenHash: state.TokenHash}
	return s.persist()
}

// persist must be called with the mutex held.
func (s *Store) persist() error {
	if err := s.kv.Save(adminCollection, s.doc, s.version); err != nil {
		return err
	}
	s.version++
	return nil
}
