package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDMinter issues capability tokens as UUIDv4 strings.
type UUIDMinter struct{}

func (UUIDMinter) NewToken(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
