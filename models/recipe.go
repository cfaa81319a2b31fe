package models

// Recipe represents a published recipe with its reaction sets.
// A settled recipe never lists the same user in both likes and
// dislikes; the server owns that invariant.
type Recipe struct {
	ID           string       `json:"_id"`
	User         User         `json:"user"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Instructions []string     `json:"instructions,omitempty"`
	TimeToCook   int          `json:"timeToCook"`
	Calories     int          `json:"calories"`
	Image        string       `json:"image,omitempty"`
	Ingredients  []Ingredient `json:"ingredients,omitempty"`
	Categories   []Category   `json:"category,omitempty"`
	Likes        []User       `json:"likes,omitempty"`
	Dislikes     []User       `json:"dislikes,omitempty"`
}

// Ingredient is a named component referenced by many recipes.
type Ingredient struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Category is a named grouping referenced by many recipes.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// LikedBy reports whether userID is in the recipe's like set.
func (r *Recipe) LikedBy(userID string) bool {
	for _, u := range r.Likes {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// DislikedBy reports whether userID is in the recipe's dislike set.
func (r *Recipe) DislikedBy(userID string) bool {
	for _, u := range r.Dislikes {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// HasIngredient reports whether the recipe references ingredientID.
func (r *Recipe) HasIngredient(ingredientID string) bool {
	for _, ing := range r.Ingredients {
		if ing.ID == ingredientID {
			return true
		}
	}
	return false
}

// HasCategory reports whether the recipe references categoryID.
func (r *Recipe) HasCategory(categoryID string) bool {
	for _, cat := range r.Categories {
		if cat.ID == categoryID {
			return true
		}
	}
	return false
}
