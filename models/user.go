package models

// User represents a recipe service account as returned by the API.
// Followers/following mirroring is enforced server-side; the client
// only observes both sets.
type User struct {
	ID        string   `json:"_id"`
	Username  string   `json:"username"`
	Email     string   `json:"email,omitempty"`
	Image     string   `json:"image,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Recipes   []Recipe `json:"recipes,omitempty"`
	Followers []User   `json:"followers,omitempty"`
	Following []User   `json:"following,omitempty"`
	Favorites []Recipe `json:"favorites,omitempty"`
}

// Profile is a user as seen by another signed-in user.
type Profile struct {
	User
	IsFollowing bool `json:"isFollowing"`
}

// HasFollower reports whether userID appears in the user's follower set.
func (u *User) HasFollower(userID string) bool {
	for _, f := range u.Followers {
		if f.ID == userID {
			return true
		}
	}
	return false
}

// IsFollowingUser reports whether userID appears in the user's following set.
func (u *User) IsFollowingUser(userID string) bool {
	for _, f := range u.Following {
		if f.ID == userID {
			return true
		}
	}
	return false
}
