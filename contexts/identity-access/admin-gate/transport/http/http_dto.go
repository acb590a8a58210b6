package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AdminStatusResponse struct {
	Status string `json:"status"`
	Data   struct {
		ModerationEnabled bool `json:"moderation_enabled"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

// AdminToggleResponse carries the capability token only when toggling on;
// the token is never retrievable again.
type AdminToggleResponse struct {
	Status string `json:"status"`
	Data   struct {
		ModerationEnabled bool   `json:"moderation_enabled"`
		Token             string `json:"token,omitempty"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}
