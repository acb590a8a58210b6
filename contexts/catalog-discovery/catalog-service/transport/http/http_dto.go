package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RecipeView struct {
	ID          string   `json:"id"`
	Origin      string   `json:"origin"`
	Name        string   `json:"name"`
	Chef        string   `json:"chef,omitempty"`
	Preview     string   `json:"preview"`
	Tags        []string `json:"tags"`
	Ingredients []string `json:"ingredients"`
	Price       float64  `json:"price"`
}

type PackView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Includes []string `json:"includes"`
}

type OfficialCatalogResponse struct {
	Status string `json:"status"`
	Data   struct {
		Recipes  []RecipeView `json:"recipes"`
		Packs    []PackView   `json:"packs"`
		Trending []string     `json:"trending"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type PackListResponse struct {
	Status string `json:"status"`
	Data   struct {
		Packs []PackView `json:"packs"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type TrendingResponse struct {
	Status string `json:"status"`
	Data   struct {
		Trending []string `json:"trending"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type CommunityCatalogResponse struct {
	Status string `json:"status"`
	Data   struct {
		Recipes []RecipeView `json:"recipes"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type SearchResponse struct {
	Status string `json:"status"`
	Data   struct {
		Query     string       `json:"query"`
		Official  []RecipeView `json:"official"`
		Community []RecipeView `json:"community"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type ItemResponse struct {
	Status string `json:"status"`
	Data   struct {
		Kind   string      `json:"kind"`
		Recipe *RecipeView `json:"recipe,omitempty"`
		Pack   *PackView   `json:"pack,omitempty"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

type CardResponse struct {
	Status string `json:"status"`
	Data   struct {
		Filename string `json:"filename"`
		Text     string `json:"text"`
		Unlocked bool   `json:"unlocked"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

// DraftCardRequest previews a community submission as a locked card before it
// is ever submitted.
type DraftCardRequest struct {
	Name        string   `json:"name"`
	Chef        string   `json:"chef,omitempty"`
	Preview     string   `json:"preview,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}
