package embedded

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"anjett/contexts/catalog-discovery/catalog-service/domain/entities"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog serves the built-in official recipes, packs, and trending chips
// from data compiled into the binary. It is immutable after construction.
type Catalog struct {
	recipes  []entities.Recipe
	packs    []entities.Pack
	trending []string
}

type catalogDocument struct {
	Recipes []struct {
		ID          string   `yaml:"id"`
		Name        string   `yaml:"name"`
		Price       float64  `yaml:"price"`
		Tags        []string `yaml:"tags"`
		Preview     string   `yaml:"preview"`
		Ingredients []string `yaml:"ingredients"`
		LockedSteps []string `yaml:"lockedSteps"`
		Keywords    []string `yaml:"keywords"`
	} `yaml:"recipes"`
	Packs []struct {
		ID       string   `yaml:"id"`
		Name     string   `yaml:"name"`
		Price    float64  `yaml:"price"`
		Includes []string `yaml:"includes"`
	} `yaml:"packs"`
	Trending []string `yaml:"trending"`
}

func NewCatalog() (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}

	catalog := &Catalog{trending: doc.Trending}
	for _, r := range doc.Recipes {
		catalog.recipes = append(catalog.recipes, entities.Recipe{
			RecipeID:    r.ID,
			Origin:      entities.OriginOfficial,
			Name:        r.Name,
			Preview:     r.Preview,
			Tags:        r.Tags,
			Keywords:    r.Keywords,
			Ingredients: r.Ingredients,
			LockedSteps: r.LockedSteps,
			Price:       r.Price,
		})
	}
	for _, p := range doc.Packs {
		catalog.packs = append(catalog.packs, entities.Pack{
			PackID:   p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Includes: p.Includes,
		})
	}
	return catalog, nil
}

func (c *Catalog) Recipes() []entities.Recipe {
	return c.recipes
}

func (c *Catalog) Packs() []entities.Pack {
	return c.packs
}

func (c *Catalog) Trending() []string {
	return c.trending
}
