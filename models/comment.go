package models

import "time"

// Comment is a top-level comment on a recipe. Replies nest exactly
// one level deep; a reply never has replies of its own.
type Comment struct {
	ID        string    `json:"_id"`
	RecipeID  string    `json:"recipe"`
	User      User      `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Replies   []Reply   `json:"replies,omitempty"`
}

// Reply is a response nested under exactly one comment.
type Reply struct {
	ID        string    `json:"_id"`
	User      User      `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
