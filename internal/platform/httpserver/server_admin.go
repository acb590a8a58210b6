package httpserver

import (
	"net/http"

	adminhttp "anjett/contexts/identity-access/admin-gate/transport/http"
)

func (s *Server) handleAdminStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := s.admin.Handler.StatusHandler(r.Context())
	if err != nil {
		writeAdminError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminToggle(w http.ResponseWriter, r *http.Request) {
	resp, err := s.admin.Handler.ToggleHandler(r.Context())
	if err != nil {
		writeAdminError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAdminError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, adminhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
