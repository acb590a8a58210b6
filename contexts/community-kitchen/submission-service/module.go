// Package submissionservice owns community recipe drafts and the moderation
// queue: drafts come in, personal info is filtered out, and moderators move
// pending recipes into the approved catalog.
package submissionservice

import (
	"log/slog"

	httpadapter "anjett/contexts/community-kitchen/submission-service/adapters/http"
	memoryadapter "anjett/contexts/community-kitchen/submission-service/adapters/memory"
	"anjett/contexts/community-kitchen/submission-service/application/commands"
	"anjett/contexts/community-kitchen/submission-service/application/queries"
	"anjett/contexts/community-kitchen/submission-service/domain/services"
	"anjett/contexts/community-kitchen/submission-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Queries queries.Queries
}

type Dependencies struct {
	Repository   ports.Repository
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Gate         ports.ModeratorGate
	PersonalInfo services.PersonalInfoFilter
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	submissionQueries := queries.Queries{Repository: deps.Repository}
	return Module{
		Handler: httpadapter.Handler{
			SubmitDraft: commands.SubmitDraftUseCase{
				Repository:   deps.Repository,
				Clock:        deps.Clock,
				IDGen:        deps.IDGen,
				PersonalInfo: deps.PersonalInfo,
				Logger:       deps.Logger,
			},
			Approve: commands.ApproveSubmissionUseCase{
				Repository: deps.Repository,
				Gate:       deps.Gate,
				Clock:      deps.Clock,
				Logger:     deps.Logger,
			},
			Reject: commands.RejectSubmissionUseCase{
				Repository: deps.Repository,
				Gate:       deps.Gate,
				Logger:     deps.Logger,
			},
			Queries: submissionQueries,
			Logger:  deps.Logger,
		},
		Queries: submissionQueries,
	}
}

// NewInMemoryModule wires the module against the in-memory store, which also
// serves as clock and id generator.
func NewInMemoryModule(gate ports.ModeratorGate, logger *slog.Logger) Module {
	store := memoryadapter.NewStore()
	return NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		IDGen:      store,
		Gate:       gate,
		Logger:     logger,
	})
}
