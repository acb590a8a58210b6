package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	communityerrors "anjett/contexts/community-kitchen/submission-service/domain/errors"
	communityhttp "anjett/contexts/community-kitchen/submission-service/transport/http"
)

const adminTokenHeader = "X-Admin-Token"

func (s *Server) handleSubmitDraft(w http.ResponseWriter, r *http.Request) {
	var req communityhttp.SubmitDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCommunityError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.community.Handler.SubmitDraftHandler(r.Context(), req)
	if err != nil {
		writeCommunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	resp, err := s.community.Handler.ListSubmissionsHandler(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeCommunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApproveSubmission(w http.ResponseWriter, r *http.Request) {
	resp, err := s.community.Handler.ApproveHandler(
		r.Context(),
		r.Header.Get(adminTokenHeader),
		r.PathValue("recipe_id"),
	)
	if err != nil {
		writeCommunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRejectSubmission(w http.ResponseWriter, r *http.Request) {
	var req communityhttp.RejectSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeCommunityError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.community.Handler.RejectHandler(
		r.Context(),
		r.Header.Get(adminTokenHeader),
		r.PathValue("recipe_id"),
		req,
	)
	if err != nil {
		writeCommunityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCommunityDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, communityerrors.ErrInvalidDraft):
		writeCommunityError(w, http.StatusBadRequest, "invalid_draft", err.Error())
	case errors.Is(err, communityerrors.ErrPersonalInfoDetected):
		writeCommunityError(w, http.StatusUnprocessableEntity, "personal_info_detected", err.Error())
	case errors.Is(err, communityerrors.ErrSubmissionNotFound):
		writeCommunityError(w, http.StatusNotFound, "submission_not_found", err.Error())
	case errors.Is(err, communityerrors.ErrDuplicateSubmission):
		writeCommunityError(w, http.StatusConflict, "duplicate_submission", err.Error())
	case errors.Is(err, communityerrors.ErrConfirmationRequired):
		writeCommunityError(w, http.StatusBadRequest, "confirmation_required", err.Error())
	case errors.Is(err, communityerrors.ErrUnauthorized):
		writeCommunityError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	default:
		writeCommunityError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCommunityError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, communityhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
