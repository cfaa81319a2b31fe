// Package reconcile wraps every write operation against the service.
// A mutator performs the remote call, classifies the outcome, and
// resolves the entity cache to match: invalidating exactly the keys
// the write could have changed on success, touching nothing on
// transport failure, and normalizing converged-state refusals to
// success. Views call mutators and read the cache; they never issue
// raw writes.
package reconcile

import (
	"github.com/oliveplate/oliveplate/api"
	"github.com/oliveplate/oliveplate/cache"
	"github.com/oliveplate/oliveplate/session"
	"github.com/oliveplate/oliveplate/utils"
)

// Mutators is the sole writer of the entity cache and session store.
type Mutators struct {
	client   *api.Client
	store    *cache.Store
	sessions *session.Store
	gate     *gate
	follow   *followTracker
}

// New wires the mutators over a client, a cache store, and the
// session store. sessions may be nil when only entity mutations are used.
func New(client *api.Client, store *cache.Store, sessions *session.Store) *Mutators {
	return &Mutators{
		client:   client,
		store:    store,
		sessions: sessions,
		gate:     newGate(),
		follow:   newFollowTracker(),
	}
}

// invalidate marks each key stale, logging the blast radius of the write.
func (m *Mutators) invalidate(keys ...cache.Key) {
	for _, key := range keys {
		m.store.Invalidate(key)
	}
	if utils.Sugar != nil && len(keys) > 0 {
		utils.Sugar.Debugf("mutation invalidated %d key(s), first=%s", len(keys), keys[0])
	}
}

// fail classifies err, applies the not-found eviction rule against
// target, and returns the surfaced failure.
func (m *Mutators) fail(err error, target cache.Key) *Failure {
	f := classify(err)
	if f.Kind == FailureNotFound {
		// Stop offering actions on an entity the server no longer has.
		m.store.Invalidate(target)
	}
	return f
}
