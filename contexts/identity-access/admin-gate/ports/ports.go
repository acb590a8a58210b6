package ports

import (
	"context"

	"anjett/contexts/identity-access/admin-gate/domain/entities"
)

type TokenMinter interface {
	NewToken(ctx context.Context) (string, error)
}

// Repository persists the single admin state record.
type Repository interface {
	Load(ctx context.Context) (entities.AdminState, error)
	Save(ctx context.Context, state entities.AdminState) error
}
