package services

import (
	"fmt"
	"regexp"
	"strings"

	"anjett/contexts/catalog-discovery/catalog-service/domain/entities"
)

const (
	recipeCardBanner = "AnJett.com — Recipe Card"
	packCardBanner   = "AnJett.com — Recipe Pack"
	cardRule         = "======================="
)

// Money renders a price the way the storefront displays it everywhere.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// RecipeCard renders the downloadable text card for a recipe. When unlocked
// is false the locked steps are omitted entirely and replaced with the paywall
// notice; this is the content-gating contract.
func RecipeCard(r entities.Recipe, unlocked bool) string {
	head := []string{
		recipeCardBanner,
		cardRule,
		"Name: " + r.Name,
		"Type: " + originLabel(r),
	}
	if r.IsCommunity() {
		head = append(head, "Chef: "+r.DisplayChef())
	}
	head = append(head, "Tags: "+strings.Join(r.Tags, ", "))
	head = append(head, "Preview:")
	if r.Preview != "" {
		head = append(head, r.Preview)
	}
	head = append(head, "What you'll need:")
	for _, ingredient := range r.Ingredients {
		head = append(head, "- "+ingredient)
	}

	if !unlocked {
		head = append(head,
			"LOCKED SECTION: Pay to download for full steps + tips.",
			"Price: "+Money(r.Price),
		)
		return strings.Join(head, "\n")
	}

	head = append(head, "Full Steps:")
	for i, step := range r.LockedSteps {
		head = append(head, fmt.Sprintf("%d) %s", i+1, step))
	}
	head = append(head,
		"",
		"Beast Tips:",
		"- Keep it fun. Keep it safe.",
		"- Ask an adult for heat/sharp tools.",
		"",
		"Price Paid: "+Money(r.Price)+" (demo)",
	)
	return strings.Join(head, "\n")
}

// PackCard renders the downloadable text card for a pack. Packs carry no
// locked content; everything on the card is informational.
func PackCard(p entities.Pack) string {
	lines := []string{
		packCardBanner,
		cardRule,
		"",
		"Pack: " + p.Name,
		"Price: " + Money(p.Price) + " (demo)",
		"",
		"Includes:",
	}
	for _, name := range p.Includes {
		lines = append(lines, "- "+name)
	}
	lines = append(lines,
		"",
		"Tip: Search the recipe names to find matching cards.",
	)
	return strings.Join(lines, "\n")
}

// ItemCard dispatches on the item kind; packs ignore the unlocked flag.
func ItemCard(item entities.Item, unlocked bool) string {
	if item.Kind == entities.ItemKindPack {
		return PackCard(item.Pack)
	}
	return RecipeCard(item.Recipe, unlocked)
}

var (
	filenameStrip    = regexp.MustCompile(`[^\w\s\-]+`)
	filenameCollapse = regexp.MustCompile(`\s+`)
)

// CardFilename derives the exported artifact filename from an item's display
// name: non-word/non-space runes stripped, internal whitespace collapsed to
// single hyphens.
func CardFilename(item entities.Item) string {
	safe := filenameStrip.ReplaceAllString(item.Name(), "")
	safe = filenameCollapse.ReplaceAllString(strings.TrimSpace(safe), "-")
	if item.Kind == entities.ItemKindPack {
		return safe + "-AnJett-Pack.txt"
	}
	return safe + "-AnJett-Card.txt"
}

func originLabel(r entities.Recipe) string {
	if r.IsCommunity() {
		return "Community"
	}
	return "Official"
}
