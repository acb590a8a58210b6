package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SubmitDraftRequest struct {
	Name        string   `json:"name"`
	Chef        string   `json:"chef"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tags        []string `json:"tags,omitempty"`
}

type SubmissionView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Chef        string   `json:"chef"`
	Preview     string   `json:"preview"`
	Tags        []string `json:"tags"`
	Ingredients []string `json:"ingredients"`
	Price       float64  `json:"price"`
	Status      string   `json:"status"`
	SubmittedAt string   `json:"submitted_at"`
	ApprovedAt  string   `json:"approved_at,omitempty"`
}

type SubmissionResponse struct {
	Status string `json:"status"`
	Data   struct {
		Submission SubmissionView `json:"submission"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type SubmissionListResponse struct {
	Status string `json:"status"`
	Data   struct {
		Submissions []SubmissionView `json:"submissions"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type RejectSubmissionRequest struct {
	Confirmed bool `json:"confirmed"`
}

type RejectSubmissionResponse struct {
	Status string `json:"status"`
	Data   struct {
		RecipeID string `json:"recipe_id"`
		Rejected bool   `json:"rejected"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}
