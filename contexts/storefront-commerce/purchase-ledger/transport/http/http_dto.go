package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RecordPurchaseRequest struct {
	ItemID    string `json:"item_id"`
	Confirmed bool   `json:"confirmed"`
}

type PurchaseView struct {
	ID          string  `json:"id"`
	ItemID      string  `json:"item_id"`
	ItemName    string  `json:"item_name"`
	Price       float64 `json:"price"`
	Kind        string  `json:"kind"`
	Artifact    string  `json:"artifact"`
	PurchasedAt string  `json:"purchased_at"`
}

type CardView struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

type RecordPurchaseResponse struct {
	Status string `json:"status"`
	Data   struct {
		Outcome  string        `json:"outcome"`
		Purchase *PurchaseView `json:"purchase,omitempty"`
		Card     *CardView     `json:"card,omitempty"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type PurchaseListResponse struct {
	Status string `json:"status"`
	Data   struct {
		Purchases []PurchaseView `json:"purchases"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type ClearHistoryRequest struct {
	Confirmed bool `json:"confirmed"`
}

type ClearHistoryResponse struct {
	Status string `json:"status"`
	Data   struct {
		Cleared bool `json:"cleared"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type RedownloadResponse struct {
	Status string `json:"status"`
	Data   struct {
		Purchase PurchaseView `json:"purchase"`
		Card     CardView     `json:"card"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}
