package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/oliveplate/oliveplate/models"
)

// SearchParams are the optional facets of the server-side recipe search.
// Zero values are omitted from the query string.
type SearchParams struct {
	Query      string
	CookTime   int
	Calories   int
	Ingredient string
	Category   string
}

// ListRecipes fetches every published recipe.
func (c *Client) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var out []models.Recipe
	if err := c.getJSON(ctx, "/recipes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRecipe fetches one recipe by id.
func (c *Client) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	var out models.Recipe
	if err := c.getJSON(ctx, "/recipes/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRecipe publishes a new recipe; the optional image travels in
// the multipart body.
func (c *Client) CreateRecipe(ctx context.Context, in models.RecipeInput) (*models.Recipe, error) {
	if err := models.Validate(in); err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}
	var out models.Recipe
	if err := c.doMultipart(ctx, http.MethodPost, "/recipes", recipeFields(in), recipeRepeated(in), in.ImagePath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRecipe overwrites a recipe. The server applies the write as
// given; the last writer wins.
func (c *Client) UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) (*models.Recipe, error) {
	if err := models.Validate(in); err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}
	var out models.Recipe
	if err := c.doMultipart(ctx, http.MethodPut, "/recipes/"+url.PathEscape(id), recipeFields(in), recipeRepeated(in), in.ImagePath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRecipe removes a recipe.
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, "/recipes/"+url.PathEscape(id), nil)
}

// ToggleLike flips the caller's like on a recipe. The response body
// is ignored; callers refetch the recipe for the authoritative sets.
func (c *Client) ToggleLike(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/recipes/"+url.PathEscape(id)+"/like", nil, nil, "", nil)
}

// ToggleDislike flips the caller's dislike on a recipe.
func (c *Client) ToggleDislike(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/recipes/"+url.PathEscape(id)+"/dislike", nil, nil, "", nil)
}

// RecipeLikes fetches the users currently liking a recipe.
func (c *Client) RecipeLikes(ctx context.Context, id string) ([]models.User, error) {
	var out []models.User
	if err := c.getJSON(ctx, "/recipes/"+url.PathEscape(id)+"/likes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecipeDislikes fetches the users currently disliking a recipe.
func (c *Client) RecipeDislikes(ctx context.Context, id string) ([]models.User, error) {
	var out []models.User
	if err := c.getJSON(ctx, "/recipes/"+url.PathEscape(id)+"/dislikes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchRecipes runs the server-side faceted search.
func (c *Client) SearchRecipes(ctx context.Context, params SearchParams) ([]models.Recipe, error) {
	q := url.Values{}
	if params.Query != "" {
		q.Set("query", params.Query)
	}
	if params.CookTime > 0 {
		q.Set("cookTime", strconv.Itoa(params.CookTime))
	}
	if params.Calories > 0 {
		q.Set("calories", strconv.Itoa(params.Calories))
	}
	if params.Ingredient != "" {
		q.Set("ingredient", params.Ingredient)
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	var out []models.Recipe
	if err := c.getJSON(ctx, "/recipes/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func recipeFields(in models.RecipeInput) map[string]string {
	return map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"timeToCook":  strconv.Itoa(in.TimeToCook),
		"calories":    strconv.Itoa(in.Calories),
	}
}

func recipeRepeated(in models.RecipeInput) map[string][]string {
	return map[string][]string{
		"instructions": in.Instructions,
		"ingredients":  in.IngredientIDs,
		"category":     in.CategoryIDs,
	}
}
