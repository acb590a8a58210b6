package memoryadapter

import (
	"context"
	"sync"

	"anjett/contexts/identity-access/admin-gate/domain/entities"

	"github.com/google/uuid"
)

// Store holds the admin state in memory for tests and the memory storage
// driver.
type Store struct {
	mu    sync.Mutex
	state entities.AdminState
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) (entities.AdminState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, nil
}

func (s *Store) Save(_ context.Context, state entities.AdminState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	return nil
}

// NewToken lets the store double as the token minter in tests.
func (s *Store) NewToken(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
