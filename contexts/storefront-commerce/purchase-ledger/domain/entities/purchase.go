package entities

import "time"

// PurchaseKind records which side of the catalog an item came from at the
// time it was bought.
type PurchaseKind string

const (
	PurchaseKindOfficialRecipe  PurchaseKind = "recipe-official"
	PurchaseKindCommunityRecipe PurchaseKind = "recipe-community"
	PurchaseKindPack            PurchaseKind = "pack"
)

// ArtifactType selects which card layout a purchase unlocks.
type ArtifactType string

const (
	ArtifactTypeRecipe ArtifactType = "recipe"
	ArtifactTypePack   ArtifactType = "pack"
)

// Purchase is one ledger entry. Price is the amount captured when the entry
// was recorded, not the item's current catalog price.
type Purchase struct {
	PurchaseID   string
	ItemID       string
	ItemName     string
	Price        float64
	Kind         PurchaseKind
	ArtifactType ArtifactType
	PurchasedAt  time.Time
}
