// Package admingate owns the moderation switch and the capability token it
// mints. Moderation endpoints in other modules accept the token instead of
// consulting the switch directly.
package admingate

import (
	"log/slog"

	httpadapter "anjett/contexts/identity-access/admin-gate/adapters/http"
	memoryadapter "anjett/contexts/identity-access/admin-gate/adapters/memory"
	"anjett/contexts/identity-access/admin-gate/application"
	"anjett/contexts/identity-access/admin-gate/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Repository ports.Repository
	Minter     ports.TokenMinter
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repository: deps.Repository,
		Minter:     deps.Minter,
		Logger:     deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule wires the module against the in-memory store, which also
// serves as token minter.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memoryadapter.NewStore()
	return NewModule(Dependencies{
		Repository: store,
		Minter:     store,
		Logger:     logger,
	})
}
