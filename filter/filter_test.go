package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveplate/oliveplate/models"
)

func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:          "r1",
			Name:        "Olive Tapenade",
			TimeToCook:  10,
			Calories:    120,
			Ingredients: []models.Ingredient{{ID: "ing1", Name: "olives"}},
			Categories:  []models.Category{{ID: "cat1", Name: "starter"}},
		},
		{
			ID:          "r2",
			Name:        "Herb Salad",
			TimeToCook:  5,
			Calories:    80,
			Ingredients: []models.Ingredient{{ID: "ing2", Name: "rocket"}},
			Categories:  []models.Category{{ID: "cat2", Name: "salad"}},
		},
	}
}

func names(recipes []models.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Name)
	}
	return out
}

func TestApply_EmptyCriteriaIsIdentity(t *testing.T) {
	recipes := sampleRecipes()
	got := Apply(recipes, Criteria{})
	assert.Equal(t, recipes, got)
}

func TestApply_TextMatchesName(t *testing.T) {
	got := Apply(sampleRecipes(), Criteria{Text: "olive"})
	require.Len(t, got, 1)
	assert.Equal(t, "Olive Tapenade", got[0].Name)
}

func TestApply_TextMatchesCookTimeAndCalories(t *testing.T) {
	// "5" hits Herb Salad's cook time only; "120" hits Olive Tapenade's calories.
	assert.Equal(t, []string{"Herb Salad"}, names(Apply(sampleRecipes(), Criteria{Text: "5"})))
	assert.Equal(t, []string{"Olive Tapenade"}, names(Apply(sampleRecipes(), Criteria{Text: "120"})))
}

func TestApply_TextIsCaseInsensitive(t *testing.T) {
	got := Apply(sampleRecipes(), Criteria{Text: "HERB"})
	require.Len(t, got, 1)
	assert.Equal(t, "Herb Salad", got[0].Name)
}

func TestApply_IngredientFacet(t *testing.T) {
	got := Apply(sampleRecipes(), Criteria{IngredientID: "ing2"})
	require.Len(t, got, 1)
	assert.Equal(t, "Herb Salad", got[0].Name)
}

func TestApply_CategoryFacet(t *testing.T) {
	got := Apply(sampleRecipes(), Criteria{CategoryID: "cat1"})
	require.Len(t, got, 1)
	assert.Equal(t, "Olive Tapenade", got[0].Name)
}

func TestApply_FacetsComposeWithAnd(t *testing.T) {
	// "salad" matches Herb Salad by name, but ing1 belongs to the other
	// recipe, so the conjunction is empty.
	got := Apply(sampleRecipes(), Criteria{Text: "salad", IngredientID: "ing1"})
	assert.Empty(t, got)
}

func TestApply_Idempotent(t *testing.T) {
	criteria := []Criteria{
		{},
		{Text: "olive"},
		{IngredientID: "ing2"},
		{Text: "a", CategoryID: "cat2"},
	}
	for _, c := range criteria {
		once := Apply(sampleRecipes(), c)
		twice := Apply(once, c)
		assert.Equal(t, once, twice, "criteria %+v", c)
	}
}

func TestApply_PreservesOrder(t *testing.T) {
	recipes := []models.Recipe{
		{ID: "a", Name: "Pasta One", TimeToCook: 1, Calories: 1},
		{ID: "b", Name: "Other", TimeToCook: 2, Calories: 2},
		{ID: "c", Name: "Pasta Two", TimeToCook: 3, Calories: 3},
	}
	got := Apply(recipes, Criteria{Text: "pasta"})
	assert.Equal(t, []string{"Pasta One", "Pasta Two"}, names(got))
}
