package reconcile

import (
	"context"

	"github.com/oliveplate/oliveplate/cache"
	"github.com/oliveplate/oliveplate/models"
	"github.com/oliveplate/oliveplate/utils"
)

// Ingredient and category writes share one gate per collection, so a
// rename cannot race a delete of the same name.

// CreateIngredient registers a new ingredient name.
func (m *Mutators) CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	if err := m.gate.acquire("ingredients", "write"); err != nil {
		return nil, err
	}
	defer m.gate.release("ingredients", "write")

	created, err := m.client.CreateIngredient(ctx, utils.SanitizeText(name))
	if err != nil {
		return nil, classify(err)
	}
	m.invalidate(cache.IngredientsKey())
	return created, nil
}

// RenameIngredient changes an ingredient's name everywhere it appears.
func (m *Mutators) RenameIngredient(ctx context.Context, id, name string) (*models.Ingredient, error) {
	if err := m.gate.acquire("ingredients", "write"); err != nil {
		return nil, err
	}
	defer m.gate.release("ingredients", "write")

	updated, err := m.client.UpdateIngredient(ctx, id, utils.SanitizeText(name))
	if err != nil {
		return nil, m.fail(err, cache.IngredientsKey())
	}
	// Recipes embed ingredient names, so cached recipe views go stale too.
	m.invalidate(cache.IngredientsKey(), cache.RecipesKey())
	return updated, nil
}

// DeleteIngredient removes an ingredient.
func (m *Mutators) DeleteIngredient(ctx context.Context, id string) error {
	if err := m.gate.acquire("ingredients", "write"); err != nil {
		return err
	}
	defer m.gate.release("ingredients", "write")

	if err := m.client.DeleteIngredient(ctx, id); err != nil {
		if f := classify(err); f.Kind == FailureNotFound {
			m.invalidate(cache.IngredientsKey())
			return nil
		}
		return m.fail(err, cache.IngredientsKey())
	}
	m.invalidate(cache.IngredientsKey())
	return nil
}

// CreateCategory registers a new category name.
func (m *Mutators) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	if err := m.gate.acquire("categories", "write"); err != nil {
		return nil, err
	}
	defer m.gate.release("categories", "write")

	created, err := m.client.CreateCategory(ctx, utils.SanitizeText(name))
	if err != nil {
		return nil, classify(err)
	}
	m.invalidate(cache.CategoriesKey())
	return created, nil
}

// RenameCategory changes a category's name everywhere it appears.
func (m *Mutators) RenameCategory(ctx context.Context, id, name string) (*models.Category, error) {
	if err := m.gate.acquire("categories", "write"); err != nil {
		return nil, err
	}
	defer m.gate.release("categories", "write")

	updated, err := m.client.UpdateCategory(ctx, id, utils.SanitizeText(name))
	if err != nil {
		return nil, m.fail(err, cache.CategoriesKey())
	}
	m.invalidate(cache.CategoriesKey(), cache.RecipesKey())
	return updated, nil
}

// DeleteCategory removes a category.
func (m *Mutators) DeleteCategory(ctx context.Context, id string) error {
	if err := m.gate.acquire("categories", "write"); err != nil {
		return err
	}
	defer m.gate.release("categories", "write")

	if err := m.client.DeleteCategory(ctx, id); err != nil {
		if f := classify(err); f.Kind == FailureNotFound {
			m.invalidate(cache.CategoriesKey())
			return nil
		}
		return m.fail(err, cache.CategoriesKey())
	}
	m.invalidate(cache.CategoriesKey())
	return nil
}
