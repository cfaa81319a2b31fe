package reconcile

import (
	"context"
	"sync"

	"github.com/oliveplate/oliveplate/cache"
)

// FollowState is the per-target follow machine. Pending is first
// class: it is what the gate protects, and no path may strand it.
type FollowState int

const (
	NotFollowing FollowState = iota
	Pending
	Following
)

func (s FollowState) String() string {
	switch s {
	case NotFollowing:
		return "not-following"
	case Pending:
		return "pending"
	case Following:
		return "following"
	default:
		return "unknown"
	}
}

// followTracker holds the settled follow state per target user id, as
// last observed or driven by this client. The server's transposed
// follower/following sets remain authoritative; this exists so the
// in-flight window and rollback have a defined pre-mutation value.
type followTracker struct {
	mu     sync.Mutex
	states map[string]FollowState
}

func newFollowTracker() *followTracker {
	return &followTracker{states: map[string]FollowState{}}
}

func (t *followTracker) get(targetID string) FollowState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[targetID]
}

func (t *followTracker) set(targetID string, s FollowState) {
	t.mu.Lock()
	t.states[targetID] = s
	t.mu.Unlock()
}

// FollowState returns the tracked state for a target user.
func (m *Mutators) FollowState(targetID string) FollowState {
	return m.follow.get(targetID)
}

// ObserveFollowing seeds the tracker from a fetched profile, so the
// first mutation rolls back to what the server last reported rather
// than to the zero value.
func (m *Mutators) ObserveFollowing(targetID string, following bool) {
	if m.follow.get(targetID) == Pending {
		return
	}
	if following {
		m.follow.set(targetID, Following)
	} else {
		m.follow.set(targetID, NotFollowing)
	}
}

// Follow drives the (self, target) pair to Following. A refusal
// because the pair already is Following counts as success. Any other
// failure rolls the state back and surfaces.
func (m *Mutators) Follow(ctx context.Context, targetID string) error {
	return m.driveFollow(ctx, targetID, Following, "already following")
}

// Unfollow drives the (self, target) pair to NotFollowing, with the
// symmetric converged rule for "not following this user".
func (m *Mutators) Unfollow(ctx context.Context, targetID string) error {
	return m.driveFollow(ctx, targetID, NotFollowing, "not following")
}

func (m *Mutators) driveFollow(ctx context.Context, targetID string, want FollowState, convergedFragment string) error {
	if err := m.gate.acquire("follow", targetID); err != nil {
		return err
	}
	defer m.gate.release("follow", targetID)

	prev := m.follow.get(targetID)
	m.follow.set(targetID, Pending)

	var err error
	if want == Following {
		err = m.client.Follow(ctx, targetID)
	} else {
		err = m.client.Unfollow(ctx, targetID)
	}

	if err != nil && !convergedOn(err, convergedFragment) {
		m.follow.set(targetID, prev)
		return m.fail(err, cache.ProfileKey(targetID))
	}

	// Success, or the server reported the pair already settled where
	// we were driving it. Either way both User copies changed (or were
	// never what we cached); refetch rather than patch so the
	// follower/following transpose can't go asymmetric locally.
	m.follow.set(targetID, want)
	m.invalidate(cache.ProfileKey(targetID), cache.CurrentUserKey())
	return nil
}
