// Package filter narrows a recipe collection by free text, ingredient,
// and category facets. It is a pure transform over cache reads; it
// never fetches and never reorders.
package filter

import (
	"strconv"
	"strings"

	"github.com/oliveplate/oliveplate/models"
)

// Criteria are the independently optional facets. An empty facet
// matches everything; supplied facets compose with AND.
type Criteria struct {
	Text         string
	IngredientID string
	CategoryID   string
}

// Empty reports whether no facet is set.
func (c Criteria) Empty() bool {
	return c.Text == "" && c.IngredientID == "" && c.CategoryID == ""
}

// Apply returns the order-preserving subsequence of recipes matching
// every supplied facet.
func Apply(recipes []models.Recipe, c Criteria) []models.Recipe {
	if c.Empty() {
		return recipes
	}
	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matches(&r, c) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r *models.Recipe, c Criteria) bool {
	if c.Text != "" && !matchesText(r, c.Text) {
		return false
	}
	if c.IngredientID != "" && !r.HasIngredient(c.IngredientID) {
		return false
	}
	if c.CategoryID != "" && !r.HasCategory(c.CategoryID) {
		return false
	}
	return true
}

// matchesText is a case-insensitive substring match against the name,
// the stringified cook time, or the stringified calorie value.
func matchesText(r *models.Recipe, text string) bool {
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(r.Name), needle) {
		return true
	}
	if strings.Contains(strconv.Itoa(r.TimeToCook), needle) {
		return true
	}
	return strings.Contains(strconv.Itoa(r.Calories), needle)
}
