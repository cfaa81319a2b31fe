package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/oliveplate/oliveplate/utils"
)

// Loader fetches the authoritative value for a key.
type Loader func(ctx context.Context) (any, error)

// subscription wraps one subscriber callback. The mutex serializes
// deliveries; the closed flag is atomic so cancel never has to wait
// for a delivery in progress, which lets a callback cancel its own
// subscription without deadlocking.
type subscription struct {
	mu     sync.Mutex
	fn     func(Key)
	closed atomic.Bool
}

func (s *subscription) notify(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed.Load() {
		s.fn(key)
	}
}

type entry struct {
	value     any
	status    Status
	err       error
	loader    Loader
	gen       uint64
	fetchedAt time.Time
	subs      map[int]*subscription
}

// Store is the entity cache: a keyed, freshness-tracked store of
// server-fetched values. Mutators are the only writers; readers go
// through Get/FetchIfNeeded and never mutate values in place.
type Store struct {
	mu     sync.RWMutex
	ttl    time.Duration
	nextID int
	data   map[Key]*entry
	flight singleflight.Group
}

// New builds a store whose fresh entries age into stale after ttl.
// A non-positive ttl disables age-based staleness.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:  ttl,
		data: map[Key]*entry{},
	}
}

// Get returns the cached value and its freshness. It never triggers a load.
func (s *Store) Get(key Key) (any, Status) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[key]
	if !ok {
		return nil, StatusAbsent
	}
	if e.status == StatusFresh && s.expired(e) {
		return e.value, StatusStale
	}
	return e.value, e.status
}

// Err returns the failure of the latest load, or nil.
func (s *Store) Err(key Key) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.data[key]; ok {
		return e.err
	}
	return nil
}

// FetchIfNeeded returns the fresh value for key, running loader only
// when the entry is absent, stale, or errored. Concurrent callers for
// the same key share a single in-flight load.
func (s *Store) FetchIfNeeded(ctx context.Context, key Key, loader Loader) (any, error) {
	s.mu.Lock()
	e := s.ensureLocked(key)
	e.loader = loader
	if e.status == StatusFresh && !s.expired(e) {
		v := e.value
		s.mu.Unlock()
		return v, nil
	}
	if e.status == StatusAbsent {
		e.status = StatusLoading
	}
	s.mu.Unlock()

	return s.load(ctx, key, loader)
}

// load runs the loader through singleflight and settles the entry.
// The generation captured before the loader runs lets settle detect an
// Invalidate that landed mid-flight and discard the stale result.
func (s *Store) load(ctx context.Context, key Key, loader Loader) (any, error) {
	v, err, shared := s.flight.Do(key.String(), func() (any, error) {
		gen := s.generation(key)
		val, err := loader(ctx)
		if err != nil {
			s.settleError(key, err, gen)
			return nil, err
		}
		s.settleValue(key, val, gen)
		return val, nil
	})
	if err != nil {
		return nil, err
	}
	if shared && utils.Sugar != nil {
		utils.Sugar.Debugf("cache load shared key=%s", key)
	}
	return v, nil
}

// Invalidate marks the entry stale. With active subscribers the
// refetch happens immediately using the last-known loader; with none
// it is deferred until the next access.
func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	e, ok := s.data[key]
	if !ok {
		s.mu.Unlock()
		return
	}
	e.status = StatusStale
	e.err = nil
	e.gen++
	loader := e.loader
	refetch := len(e.subs) > 0 && loader != nil
	s.mu.Unlock()

	// A load already in flight predates this mutation; stop new callers
	// from joining it, and let the bumped generation void its result.
	s.flight.Forget(key.String())

	if utils.Sugar != nil {
		utils.Sugar.Debugf("cache invalidate key=%s refetch=%t", key, refetch)
	}
	if refetch {
		_, _ = s.load(context.Background(), key, loader)
	}
}

// Write locally patches the cached value without changing its fetch
// status. Used for optimistic updates between a mutation and the
// authoritative refetch.
func (s *Store) Write(key Key, value any) {
	s.mu.Lock()
	e := s.ensureLocked(key)
	e.value = value
	subs := snapshotLocked(e)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.notify(key)
	}
}

// Subscribe registers interest in a key. The callback fires after
// every settled load or local patch until cancel is called; cancel is
// idempotent, never blocks on a delivery in progress, and stops every
// later delivery. A callback may cancel its own subscription.
func (s *Store) Subscribe(key Key, fn func(Key)) (cancel func()) {
	s.mu.Lock()
	e := s.ensureLocked(key)
	id := s.nextID
	s.nextID++
	sub := &subscription{fn: fn}
	e.subs[id] = sub
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.closed.Store(true)

			s.mu.Lock()
			if e, ok := s.data[key]; ok {
				delete(e.subs, id)
				// A stale, unvalued, unwatched entry is just a slot; drop it.
				if len(e.subs) == 0 && e.status == StatusStale && e.value == nil {
					delete(s.data, key)
				}
			}
			s.mu.Unlock()
		})
	}
}

// Subscribers reports the active subscription count for a key.
func (s *Store) Subscribers(key Key) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.data[key]; ok {
		return len(e.subs)
	}
	return 0
}

func (s *Store) settleValue(key Key, val any, gen uint64) {
	s.mu.Lock()
	e := s.ensureLocked(key)
	if e.gen != gen {
		// Invalidated while loading: this value predates the mutation
		// and must not be stamped fresh over the entry.
		s.mu.Unlock()
		return
	}
	e.value = val
	e.status = StatusFresh
	e.err = nil
	e.fetchedAt = time.Now()
	subs := snapshotLocked(e)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.notify(key)
	}
}

func (s *Store) settleError(key Key, err error, gen uint64) {
	s.mu.Lock()
	e := s.ensureLocked(key)
	if e.gen != gen {
		s.mu.Unlock()
		return
	}
	e.status = StatusError
	e.err = err
	s.mu.Unlock()
}

func (s *Store) generation(key Key) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked(key).gen
}

func (s *Store) ensureLocked(key Key) *entry {
	e, ok := s.data[key]
	if !ok {
		e = &entry{status: StatusAbsent, subs: map[int]*subscription{}}
		s.data[key] = e
	}
	return e
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && time.Since(e.fetchedAt) > s.ttl
}

func snapshotLocked(e *entry) []*subscription {
	subs := make([]*subscription, 0, len(e.subs))
	for _, sub := range e.subs {
		subs = append(subs, sub)
	}
	return subs
}
