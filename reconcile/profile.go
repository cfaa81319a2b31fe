package reconcile

import (
	"context"

	"github.com/oliveplate/oliveplate/cache"
	"github.com/oliveplate/oliveplate/models"
	"github.com/oliveplate/oliveplate/utils"
)

// UpdateProfile rewrites the caller's own profile. The bio may carry
// markup, so it goes through the UGC policy before leaving the client.
func (m *Mutators) UpdateProfile(ctx context.Context, in models.ProfileInput) (*models.User, error) {
	if err := m.gate.acquire("profile", "me"); err != nil {
		return nil, err
	}
	defer m.gate.release("profile", "me")

	in.Bio = utils.Sanitize(in.Bio)
	updated, err := m.client.UpdateProfile(ctx, in)
	if err != nil {
		return nil, m.fail(err, cache.CurrentUserKey())
	}
	keys := []cache.Key{cache.CurrentUserKey()}
	if updated.ID != "" {
		// Anyone viewing this profile should see the new fields.
		keys = append(keys, cache.ProfileKey(updated.ID))
	}
	m.invalidate(keys...)
	return updated, nil
}
