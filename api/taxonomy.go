package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/oliveplate/oliveplate/models"
)

// Ingredients and categories are deduplicated by name at creation
// time by convention only; the server does not enforce uniqueness.

// ListIngredients fetches all known ingredients.
func (c *Client) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var out []models.Ingredient
	if err := c.getJSON(ctx, "/ingredients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetIngredient fetches one ingredient by id.
func (c *Client) GetIngredient(ctx context.Context, id string) (*models.Ingredient, error) {
	var out models.Ingredient
	if err := c.getJSON(ctx, "/ingredients/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateIngredient registers a new ingredient name.
func (c *Client) CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	in := models.NameInput{Name: name}
	if err := models.Validate(in); err != nil {
		return nil, fmt.Errorf("invalid ingredient: %w", err)
	}
	var out models.Ingredient
	if err := c.postJSON(ctx, "/ingredients", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateIngredient renames an ingredient.
func (c *Client) UpdateIngredient(ctx context.Context, id, name string) (*models.Ingredient, error) {
	in := models.NameInput{Name: name}
	if err := models.Validate(in); err != nil {
		return nil, fmt.Errorf("invalid ingredient: %w", err)
	}
	var out models.Ingredient
	if err := c.putJSON(ctx, "/ingredients/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteIngredient removes an ingredient.
func (c *Client) DeleteIngredient(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, "/ingredients/"+url.PathEscape(id), nil)
}

// ListCategories fetches all known categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.getJSON(ctx, "/category", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCategory fetches one category by id.
func (c *Client) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var out models.Category
	if err := c.getJSON(ctx, "/category/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory registers a new category name.
func (c *Client) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	in := models.NameInput{Name: name}
	if err := models.Validate(in); err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}
	var out models.Category
	if err := c.postJSON(ctx, "/category", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, id, name string) (*models.Category, error) {
	in := models.NameInput{Name: name}
	if err := models.Validate(in); err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}
	var out models.Category
	if err := c.putJSON(ctx, "/category/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, "/category/"+url.PathEscape(id), nil)
}
