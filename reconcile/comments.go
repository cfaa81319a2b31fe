package reconcile

import (
	"context"

	"github.com/oliveplate/oliveplate/cache"
	"github.com/oliveplate/oliveplate/models"
	"github.com/oliveplate/oliveplate/utils"
)

// Comment writes all invalidate the owning recipe's comment-tree key;
// after the refetch the tree is whatever the server says it is,
// including whether deleting a comment orphans or cascades its replies.

// CreateComment posts a new top-level comment on a recipe.
func (m *Mutators) CreateComment(ctx context.Context, recipeID, content string) (*models.Comment, error) {
	if err := m.gate.acquire("comments", recipeID); err != nil {
		return nil, err
	}
	defer m.gate.release("comments", recipeID)

	created, err := m.client.CreateComment(ctx, recipeID, utils.SanitizeText(content))
	if err != nil {
		return nil, m.fail(err, cache.RecipeKey(recipeID))
	}
	m.invalidate(cache.CommentsKey(recipeID))
	return created, nil
}

// DeleteComment removes a comment from a recipe's tree. Terminal:
// there is no client-side undo, and replies are the server's problem.
func (m *Mutators) DeleteComment(ctx context.Context, commentID, recipeID string) error {
	if err := m.gate.acquire("comment", commentID); err != nil {
		return err
	}
	defer m.gate.release("comment", commentID)

	if err := m.client.DeleteComment(ctx, commentID); err != nil {
		// A comment already gone is a converged delete.
		if f := classify(err); f.Kind == FailureNotFound {
			m.invalidate(cache.CommentsKey(recipeID))
			return nil
		}
		return m.fail(err, cache.CommentsKey(recipeID))
	}
	m.invalidate(cache.CommentsKey(recipeID))
	return nil
}

// ReplyToComment nests a reply one level under an existing comment.
func (m *Mutators) ReplyToComment(ctx context.Context, commentID, recipeID, content string) (*models.Reply, error) {
	if err := m.gate.acquire("comment", commentID); err != nil {
		return nil, err
	}
	defer m.gate.release("comment", commentID)

	reply, err := m.client.ReplyToComment(ctx, commentID, utils.SanitizeText(content))
	if err != nil {
		return nil, m.fail(err, cache.CommentsKey(recipeID))
	}
	m.invalidate(cache.CommentsKey(recipeID))
	return reply, nil
}
