package reconcile

import (
	"context"

	"github.com/oliveplate/oliveplate/cache"
)

// Like and dislike share one gate per recipe: a like racing a dislike
// on the same recipe is exactly the lost-update case the gate exists
// to prevent. The client never edits the reaction sets itself; the
// server applies mutual exclusion and the refetch shows the result in
// a single observable step.

// ToggleLike flips the caller's like on a recipe.
func (m *Mutators) ToggleLike(ctx context.Context, recipeID string) error {
	return m.toggleReaction(ctx, recipeID, m.client.ToggleLike)
}

// ToggleDislike flips the caller's dislike on a recipe.
func (m *Mutators) ToggleDislike(ctx context.Context, recipeID string) error {
	return m.toggleReaction(ctx, recipeID, m.client.ToggleDislike)
}

func (m *Mutators) toggleReaction(ctx context.Context, recipeID string, call func(context.Context, string) error) error {
	if err := m.gate.acquire("reaction", recipeID); err != nil {
		return err
	}
	defer m.gate.release("reaction", recipeID)

	if err := call(ctx, recipeID); err != nil {
		return m.fail(err, cache.RecipeKey(recipeID))
	}
	m.invalidate(cache.RecipeKey(recipeID))
	return nil
}
