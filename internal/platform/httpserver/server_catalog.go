package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	catalogerrors "anjett/contexts/catalog-discovery/catalog-service/domain/errors"
	cataloghttp "anjett/contexts/catalog-discovery/catalog-service/transport/http"
)

func (s *Server) handleOfficialCatalog(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.OfficialCatalogHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPacks(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.PackListHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.TrendingHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCommunityCatalog(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.CommunityCatalogHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.SearchHandler(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetItemHandler(r.Context(), r.PathValue("item_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePreviewCard(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.PreviewCardHandler(r.Context(), r.PathValue("item_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDraftCard(w http.ResponseWriter, r *http.Request) {
	var req cataloghttp.DraftCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.catalog.Handler.DraftCardHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrItemNotFound):
		writeCatalogError(w, http.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrInvalidRequest):
		writeCatalogError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
