// Package catalogservice combines the fixed official catalog with the
// moderated community catalog and owns search, lookup, and card rendering.
package catalogservice

import (
	"log/slog"

	httpadapter "anjett/contexts/catalog-discovery/catalog-service/adapters/http"
	"anjett/contexts/catalog-discovery/catalog-service/application"
	"anjett/contexts/catalog-discovery/catalog-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Official  ports.OfficialCatalog
	Community ports.CommunitySource
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Official:  deps.Official,
		Community: deps.Community,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}
