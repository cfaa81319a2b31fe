package reconcile

import (
	"context"

	"github.com/oliveplate/oliveplate/cache"
	"github.com/oliveplate/oliveplate/models"
)

// CreateRecipe publishes a recipe and refreshes every collection that
// now contains it.
func (m *Mutators) CreateRecipe(ctx context.Context, in models.RecipeInput) (*models.Recipe, error) {
	if err := m.gate.acquire("recipes", "create"); err != nil {
		return nil, err
	}
	defer m.gate.release("recipes", "create")

	created, err := m.client.CreateRecipe(ctx, in)
	if err != nil {
		return nil, classify(err)
	}
	m.invalidate(cache.RecipesKey(), cache.CurrentUserKey())
	return created, nil
}

// UpdateRecipe overwrites a recipe. Two sessions editing the same
// recipe resolve as last-write-overwrites; there is no merge.
func (m *Mutators) UpdateRecipe(ctx context.Context, recipeID string, in models.RecipeInput) (*models.Recipe, error) {
	if err := m.gate.acquire("recipe", recipeID); err != nil {
		return nil, err
	}
	defer m.gate.release("recipe", recipeID)

	updated, err := m.client.UpdateRecipe(ctx, recipeID, in)
	if err != nil {
		return nil, m.fail(err, cache.RecipeKey(recipeID))
	}
	m.invalidate(cache.RecipeKey(recipeID), cache.RecipesKey())
	return updated, nil
}

// DeleteRecipe removes a recipe and purges it from the collections
// that embedded it, including its owner's profile.
func (m *Mutators) DeleteRecipe(ctx context.Context, recipeID, ownerID string) error {
	if err := m.gate.acquire("recipe", recipeID); err != nil {
		return err
	}
	defer m.gate.release("recipe", recipeID)

	if err := m.client.DeleteRecipe(ctx, recipeID); err != nil {
		// Already deleted elsewhere: converged, just resync.
		if f := classify(err); f.Kind == FailureNotFound {
			m.invalidateAfterRecipeDelete(recipeID, ownerID)
			return nil
		}
		return m.fail(err, cache.RecipeKey(recipeID))
	}
	m.invalidateAfterRecipeDelete(recipeID, ownerID)
	return nil
}

func (m *Mutators) invalidateAfterRecipeDelete(recipeID, ownerID string) {
	keys := []cache.Key{cache.RecipeKey(recipeID), cache.RecipesKey(), cache.CurrentUserKey()}
	if ownerID != "" {
		keys = append(keys, cache.ProfileKey(ownerID))
	}
	m.invalidate(keys...)
}
