package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	catalogservice "anjett/contexts/catalog-discovery/catalog-service"
	submissionservice "anjett/contexts/community-kitchen/submission-service"
	admingate "anjett/contexts/identity-access/admin-gate"
	purchaseledger "anjett/contexts/storefront-commerce/purchase-ledger"
	_ "anjett/internal/platform/httpserver/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	httpServer *http.Server
	catalog    catalogservice.Module
	community  submissionservice.Module
	purchases  purchaseledger.Module
	admin      admingate.Module
}

type Modules struct {
	Catalog   catalogservice.Module
	Community submissionservice.Module
	Purchases purchaseledger.Module
	Admin     admingate.Module
}

func New(modules Modules, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		catalog:   modules.Catalog,
		community: modules.Community,
		purchases: modules.Purchases,
		admin:     modules.Admin,
	}
	s.registerRoutes()
	s.httpServer = &http.Server{Addr: addr, Handler: s.mux}
	return s
}

// Handler exposes the routed mux for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /catalog/official", s.handleOfficialCatalog)
	s.mux.HandleFunc("GET /catalog/packs", s.handleListPacks)
	s.mux.HandleFunc("GET /catalog/trending", s.handleTrending)
	s.mux.HandleFunc("GET /catalog/community", s.handleCommunityCatalog)
	s.mux.HandleFunc("GET /catalog/search", s.handleSearch)
	s.mux.HandleFunc("GET /catalog/items/{item_id}", s.handleGetItem)
	s.mux.HandleFunc("GET /catalog/items/{item_id}/card", s.handlePreviewCard)
	s.mux.HandleFunc("POST /catalog/draft-card", s.handleDraftCard)

	s.mux.HandleFunc("POST /community/submissions", s.handleSubmitDraft)
	s.mux.HandleFunc("GET /community/submissions", s.handleListSubmissions)
	s.mux.HandleFunc("POST /community/submissions/{recipe_id}/approve", s.handleApproveSubmission)
	s.mux.HandleFunc("POST /community/submissions/{recipe_id}/reject", s.handleRejectSubmission)

	s.mux.HandleFunc("POST /purchases", s.handleRecordPurchase)
	s.mux.HandleFunc("GET /purchases", s.handleListPurchases)
	s.mux.HandleFunc("DELETE /purchases", s.handleClearPurchases)
	s.mux.HandleFunc("POST /purchases/{purchase_id}/redownload", s.handleRedownload)

	s.mux.HandleFunc("GET /admin/status", s.handleAdminStatus)
	s.mux.HandleFunc("POST /admin/toggle", s.handleAdminToggle)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
