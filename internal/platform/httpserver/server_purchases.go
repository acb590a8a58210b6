package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	purchaseerrors "anjett/contexts/storefront-commerce/purchase-ledger/domain/errors"
	purchasehttp "anjett/contexts/storefront-commerce/purchase-ledger/transport/http"
)

func (s *Server) handleRecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req purchasehttp.RecordPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePurchaseError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.purchases.Handler.RecordPurchaseHandler(r.Context(), req)
	if err != nil {
		writePurchaseDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPurchases(w http.ResponseWriter, r *http.Request) {
	resp, err := s.purchases.Handler.ListPurchasesHandler(r.Context())
	if err != nil {
		writePurchaseDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearPurchases(w http.ResponseWriter, r *http.Request) {
	var req purchasehttp.ClearHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writePurchaseError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.purchases.Handler.ClearHistoryHandler(r.Context(), req)
	if err != nil {
		writePurchaseDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRedownload(w http.ResponseWriter, r *http.Request) {
	resp, err := s.purchases.Handler.RedownloadHandler(r.Context(), r.PathValue("purchase_id"))
	if err != nil {
		writePurchaseDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writePurchaseDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, purchaseerrors.ErrItemNotFound):
		writePurchaseError(w, http.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, purchaseerrors.ErrPurchaseNotFound):
		writePurchaseError(w, http.StatusNotFound, "purchase_not_found", err.Error())
	case errors.Is(err, purchaseerrors.ErrConfirmationRequired):
		writePurchaseError(w, http.StatusBadRequest, "confirmation_required", err.Error())
	case errors.Is(err, purchaseerrors.ErrInvalidRequest):
		writePurchaseError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writePurchaseError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePurchaseError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, purchasehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
