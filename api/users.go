package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/oliveplate/oliveplate/models"
)

// AuthResponse is returned by signup and signin; the token becomes
// the persisted session credential.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, in models.SignUpInput) (*AuthResponse, error) {
	if err := models.Validate(in); err != nil {
		return nil, fmt.Errorf("invalid signup: %w", err)
	}
	var out AuthResponse
	if err := c.postJSON(ctx, "/users/signup", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn authenticates an existing account.
func (c *Client) SignIn(ctx context.Context, in models.SignInInput) (*AuthResponse, error) {
	if err := models.Validate(in); err != nil {
		return nil, fmt.Errorf("invalid signin: %w", err)
	}
	var out AuthResponse
	if err := c.postJSON(ctx, "/users/signin", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the signed-in user's own profile.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.getJSON(ctx, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile fetches another user's profile, including whether the
// caller currently follows them.
func (c *Client) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	var out models.Profile
	if err := c.getJSON(ctx, "/users/profile/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchUsers lists users, optionally filtered by username substring.
func (c *Client) SearchUsers(ctx context.Context, username string) ([]models.User, error) {
	q := url.Values{}
	if username != "" {
		q.Set("username", username)
	}
	var out []models.User
	if err := c.getJSON(ctx, "/users/all", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProfile updates the caller's own profile; the optional image
// travels in the multipart body.
func (c *Client) UpdateProfile(ctx context.Context, in models.ProfileInput) (*models.User, error) {
	if err := models.Validate(in); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	fields := map[string]string{}
	if in.Username != "" {
		fields["username"] = in.Username
	}
	if in.Bio != "" {
		fields["bio"] = in.Bio
	}
	if in.Gender != "" {
		fields["gender"] = in.Gender
	}
	var out models.User
	if err := c.doMultipart(ctx, http.MethodPut, "/users/update", fields, nil, in.ImagePath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Follow adds the caller as a follower of the target user.
func (c *Client) Follow(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(id)+"/follow", nil, nil, "", nil)
}

// Unfollow removes the caller from the target user's followers.
func (c *Client) Unfollow(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(id)+"/unfollow", nil, nil, "", nil)
}

// Favorites fetches the caller's favorite recipes.
func (c *Client) Favorites(ctx context.Context) ([]models.Recipe, error) {
	var out []models.Recipe
	if err := c.getJSON(ctx, "/users/favorites", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddFavorite marks a recipe as a favorite of the caller.
func (c *Client) AddFavorite(ctx context.Context, recipeID string) error {
	return c.do(ctx, http.MethodPost, "/users/favorites/"+url.PathEscape(recipeID), nil, nil, "", nil)
}

// RemoveFavorite unmarks a favorite.
func (c *Client) RemoveFavorite(ctx context.Context, recipeID string) error {
	return c.deleteJSON(ctx, "/users/favorites/"+url.PathEscape(recipeID), nil)
}
