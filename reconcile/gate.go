package reconcile

import "sync"

// gate enforces at most one in-flight mutation per (kind, id) pair.
// A second attempt is rejected rather than queued; the caller sees
// ErrMutationInFlight and the first mutation's outcome stands.
type gate struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func newGate() *gate {
	return &gate{inflight: map[string]struct{}{}}
}

func (g *gate) acquire(kind, id string) error {
	key := kind + ":" + id
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, held := g.inflight[key]; held {
		return ErrMutationInFlight
	}
	g.inflight[key] = struct{}{}
	return nil
}

func (g *gate) release(kind, id string) {
	key := kind + ":" + id
	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()
}
