package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"anjett/contexts/identity-access/admin-gate/application"
	httptransport "anjett/contexts/identity-access/admin-gate/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) StatusHandler(ctx context.Context) (httptransport.AdminStatusResponse, error) {
	enabled, err := h.Service.Status(ctx)
	if err != nil {
		return httptransport.AdminStatusResponse{}, err
	}
	resp := httptransport.AdminStatusResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.ModerationEnabled = enabled
	return resp, nil
}

func (h Handler) ToggleHandler(ctx context.Context) (httptransport.AdminToggleResponse, error) {
	enabled, token, err := h.Service.Toggle(ctx)
	if err != nil {
		return httptransport.AdminToggleResponse{}, err
	}
	resp := httptransport.AdminToggleResponse{Status: "success", Timestamp: timestamp()}
	resp.Data.ModerationEnabled = enabled
	resp.Data.Token = token
	return resp, nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
