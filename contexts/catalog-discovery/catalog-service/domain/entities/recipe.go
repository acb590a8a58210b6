package entities

import "strings"

type Origin string

const (
	OriginOfficial  Origin = "official"
	OriginCommunity Origin = "community"
)

type Recipe struct {
	RecipeID    string
	Origin      Origin
	Name        string
	Preview     string
	ChefName    string
	Tags        []string
	Keywords    []string
	Ingredients []string
	LockedSteps []string
	Price       float64
}

func (r Recipe) IsCommunity() bool {
	return r.Origin == OriginCommunity
}

// DisplayChef always yields an attribution label for community recipes.
func (r Recipe) DisplayChef() string {
	if strings.TrimSpace(r.ChefName) == "" {
		return "Community"
	}
	return r.ChefName
}

type Pack struct {
	PackID   string
	Name     string
	Price    float64
	Includes []string
}

type ItemKind string

const (
	ItemKindRecipe ItemKind = "recipe"
	ItemKindPack   ItemKind = "pack"
)

// Item is the result of a catalog lookup: exactly one of Recipe or Pack is
// populated depending on Kind.
type Item struct {
	Kind   ItemKind
	Recipe Recipe
	Pack   Pack
}

func (i Item) ID() string {
	if i.Kind == ItemKindPack {
		return i.Pack.PackID
	}
	return i.Recipe.RecipeID
}

func (i Item) Name() string {
	if i.Kind == ItemKindPack {
		return i.Pack.Name
	}
	return i.Recipe.Name
}

func (i Item) Price() float64 {
	if i.Kind == ItemKindPack {
		return i.Pack.Price
	}
	return i.Recipe.Price
}
