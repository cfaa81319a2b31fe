package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/oliveplate/oliveplate/models"
)

// CommentsForRecipe fetches the one-level comment tree of a recipe.
func (c *Client) CommentsForRecipe(ctx context.Context, recipeID string) ([]models.Comment, error) {
	var out []models.Comment
	if err := c.getJSON(ctx, "/comments/recipe/"+url.PathEscape(recipeID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateComment posts a new top-level comment on a recipe.
func (c *Client) CreateComment(ctx context.Context, recipeID, content string) (*models.Comment, error) {
	in := models.CommentInput{Content: content}
	if err := models.Validate(in); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}
	var out models.Comment
	if err := c.postJSON(ctx, "/comments/recipe/"+url.PathEscape(recipeID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes a comment. Whether the server cascades to its
// replies is the backend's contract; the refetched tree is authoritative.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.deleteJSON(ctx, "/comments/"+url.PathEscape(commentID), nil)
}

// ReplyToComment nests a reply under an existing comment.
func (c *Client) ReplyToComment(ctx context.Context, commentID, content string) (*models.Reply, error) {
	in := models.CommentInput{Content: content}
	if err := models.Validate(in); err != nil {
		return nil, fmt.Errorf("invalid reply: %w", err)
	}
	var out models.Reply
	if err := c.postJSON(ctx, "/comments/"+url.PathEscape(commentID)+"/reply", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
