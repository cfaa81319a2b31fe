package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowSetLookups(t *testing.T) {
	u := User{
		ID:        "u1",
		Followers: []User{{ID: "u2"}, {ID: "u3"}},
		Following: []User{{ID: "u3"}},
	}

	assert.True(t, u.HasFollower("u2"))
	assert.False(t, u.HasFollower("u9"))
	assert.True(t, u.IsFollowingUser("u3"))
	assert.False(t, u.IsFollowingUser("u2"))
}

func TestProfileDecodesServerShape(t *testing.T) {
	raw := `{"_id":"u7","username":"olive","isFollowing":true}`
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, "u7", p.ID)
	assert.Equal(t, "olive", p.Username)
	assert.True(t, p.IsFollowing)
}

func TestValidateRejectsBadPayloads(t *testing.T) {
	assert.Error(t, Validate(SignUpInput{Username: "ab", Email: "nope", Password: "short"}))
	assert.NoError(t, Validate(SignUpInput{Username: "cook", Email: "cook@example.com", Password: "longenough"}))

	assert.Error(t, Validate(ProfileInput{Gender: "robot"}))
	assert.NoError(t, Validate(ProfileInput{Bio: "makes soup"}))
}
