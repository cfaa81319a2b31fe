package reconcile

import (
	"context"

	"github.com/oliveplate/oliveplate/cache"
)

// AddFavorite marks a recipe as a favorite of the signed-in user.
func (m *Mutators) AddFavorite(ctx context.Context, recipeID string) error {
	return m.driveFavorite(ctx, recipeID, m.client.AddFavorite, "already in favorites")
}

// RemoveFavorite unmarks a favorite.
func (m *Mutators) RemoveFavorite(ctx context.Context, recipeID string) error {
	return m.driveFavorite(ctx, recipeID, m.client.RemoveFavorite, "not in favorites")
}

func (m *Mutators) driveFavorite(ctx context.Context, recipeID string, call func(context.Context, string) error, convergedFragment string) error {
	if err := m.gate.acquire("favorite", recipeID); err != nil {
		return err
	}
	defer m.gate.release("favorite", recipeID)

	if err := call(ctx, recipeID); err != nil && !convergedOn(err, convergedFragment) {
		return m.fail(err, cache.RecipeKey(recipeID))
	}
	m.invalidate(cache.FavoritesKey(), cache.CurrentUserKey())
	return nil
}
