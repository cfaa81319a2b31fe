package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// SignUpInput is the payload for account creation.
type SignUpInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignInInput is the payload for authentication.
type SignInInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RecipeInput carries the fields of a recipe create or update.
// The optional image is attached separately as a multipart file part.
type RecipeInput struct {
	Name          string   `validate:"required,max=255"`
	Description   string   `validate:"max=4096"`
	Instructions  []string `validate:"dive,max=1024"`
	TimeToCook    int      `validate:"gte=0"`
	Calories      int      `validate:"gte=0"`
	IngredientIDs []string `validate:"dive,required"`
	CategoryIDs   []string `validate:"dive,required"`
	ImagePath     string
}

// ProfileInput carries the fields of a profile update.
type ProfileInput struct {
	Username  string `validate:"omitempty,min=3,max=64"`
	Bio       string `validate:"max=1024"`
	Gender    string `validate:"omitempty,oneof=male female other"`
	ImagePath string
}

// CommentInput is the payload for a new comment or reply.
type CommentInput struct {
	Content string `json:"content" validate:"required,max=2048"`
}

// NameInput is the payload for ingredient and category writes.
type NameInput struct {
	Name string `json:"name" validate:"required,max=128"`
}

// Validate checks v against its declared constraints.
func Validate(v any) error {
	return validate.Struct(v)
}
