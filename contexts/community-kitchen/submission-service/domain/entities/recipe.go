package entities

import "time"

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
)

// DefaultCardPrice is the fixed unlock price for every community recipe.
const DefaultCardPrice = 1.99

// CommunityRecipe is a user-submitted recipe. It is born pending and either
// moves to approved exactly once or is deleted on rejection; approved recipes
// are never edited or removed by this workflow.
type CommunityRecipe struct {
	RecipeID    string
	Name        string
	ChefName    string
	Preview     string
	Tags        []string
	Keywords    []string
	Ingredients []string
	LockedSteps []string
	Price       float64
	Status      SubmissionStatus
	SubmittedAt time.Time
	ApprovedAt  *time.Time
}

// SeedRecipe is the pre-approved example recipe every store installs on its
// first-ever load so the community catalog is never empty.
func SeedRecipe() CommunityRecipe {
	approvedAt := time.Date(2024, time.January, 7, 12, 0, 0, 0, time.UTC)
	return CommunityRecipe{
		RecipeID: "com-7mm-ice-monster",
		Name:     "7mm Ice Monster Pops",
		ChefName: "ChefJett7",
		Tags:     []string{"ice", "funny", "7mm"},
		Preview:  "It’s small… but it ROARS!",
		Ingredients: []string{
			"yogurt", "juice", "berries", "molds",
		},
		LockedSteps: []string{
			"Mix juice and yogurt (half and half).",
			"Add tiny berry bits.",
			"Freeze in molds.",
			"Roar when you take the first bite.",
		},
		Keywords:    []string{"7 millimeters", "7mm", "millimeters", "ice", "monster", "pops"},
		Price:       DefaultCardPrice,
		Status:      SubmissionStatusApproved,
		SubmittedAt: approvedAt,
		ApprovedAt:  &approvedAt,
	}
}
