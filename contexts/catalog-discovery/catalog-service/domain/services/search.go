package services

import (
	"sort"
	"strings"

	"anjett/contexts/catalog-discovery/catalog-service/domain/entities"
)

// ExactKeywordBonus is the flat score boost for a keyword matching the whole
// query string.
const ExactKeywordBonus = 3

// TokenizeQuery lower-cases and splits a raw query on whitespace. An empty
// token slice means "browse everything" to the caller.
func TokenizeQuery(raw string) (tokens []string, full string) {
	full = strings.ToLower(strings.TrimSpace(raw))
	if full == "" {
		return nil, ""
	}
	return strings.Fields(full), full
}

// ScoreRecipe implements the storefront relevance rule: one point per query
// token appearing anywhere in the recipe haystack (name, preview, tags,
// keywords), plus ExactKeywordBonus when any keyword equals the full query.
func ScoreRecipe(r entities.Recipe, tokens []string, fullQuery string) int {
	parts := make([]string, 0, 2+len(r.Tags)+len(r.Keywords))
	parts = append(parts, r.Name, r.Preview)
	parts = append(parts, r.Tags...)
	parts = append(parts, r.Keywords...)
	haystack := strings.ToLower(strings.Join(parts, " "))

	score := 0
	for _, token := range tokens {
		if strings.Contains(haystack, token) {
			score++
		}
	}
	for _, keyword := range r.Keywords {
		if strings.ToLower(keyword) == fullQuery {
			score += ExactKeywordBonus
			break
		}
	}
	return score
}

// RankPool filters out zero-score recipes and orders the survivors by
// descending score. The sort is stable so ties preserve catalog order.
func RankPool(pool []entities.Recipe, tokens []string, fullQuery string) []entities.Recipe {
	type scored struct {
		recipe entities.Recipe
		score  int
	}
	survivors := make([]scored, 0, len(pool))
	for _, recipe := range pool {
		if s := ScoreRecipe(recipe, tokens, fullQuery); s > 0 {
			survivors = append(survivors, scored{recipe: recipe, score: s})
		}
	}
	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].score > survivors[j].score
	})
	ranked := make([]entities.Recipe, 0, len(survivors))
	for _, s := range survivors {
		ranked = append(ranked, s.recipe)
	}
	return ranked
}
