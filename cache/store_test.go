package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLoader returns val and tallies invocations.
func countingLoader(counter *int32, val any) Loader {
	return func(ctx context.Context) (any, error) {
		atomic.AddInt32(counter, 1)
		return val, nil
	}
}

func TestGet_AbsentKey(t *testing.T) {
	s := New(time.Minute)
	v, status := s.Get(RecipeKey("missing"))
	assert.Nil(t, v)
	assert.Equal(t, StatusAbsent, status)
}

func TestFetchIfNeeded_LoadsOnceWhileFresh(t *testing.T) {
	s := New(time.Minute)
	var calls int32
	key := RecipeKey("r1")

	v, err := s.FetchIfNeeded(context.Background(), key, countingLoader(&calls, "value"))
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	// A fresh entry must not reload.
	v, err = s.FetchIfNeeded(context.Background(), key, countingLoader(&calls, "other"))
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, status := s.Get(key)
	assert.Equal(t, StatusFresh, status)
}

func TestFetchIfNeeded_ConcurrentCallersShareOneLoad(t *testing.T) {
	s := New(time.Minute)
	key := RecipesKey()
	var calls int32
	release := make(chan struct{})
	loader := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "list", nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]any, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := s.FetchIfNeeded(context.Background(), key, loader)
			require.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Let every goroutine reach the flight before the loader returns.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, "list", v)
	}
}

func TestFetchIfNeeded_ErrorParksEntryThenRetries(t *testing.T) {
	s := New(time.Minute)
	key := RecipeKey("r1")
	boom := errors.New("boom")

	_, err := s.FetchIfNeeded(context.Background(), key, func(ctx context.Context) (any, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	_, status := s.Get(key)
	assert.Equal(t, StatusError, status)
	assert.ErrorIs(t, s.Err(key), boom)

	// The next access retries and can succeed.
	var calls int32
	v, err := s.FetchIfNeeded(context.Background(), key, countingLoader(&calls, "recovered"))
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, int32(1), calls)
	assert.NoError(t, s.Err(key))
}

func TestInvalidate_NoSubscribersDefersRefetch(t *testing.T) {
	s := New(time.Minute)
	key := RecipeKey("r1")
	var calls int32

	_, err := s.FetchIfNeeded(context.Background(), key, countingLoader(&calls, "v1"))
	require.NoError(t, err)

	s.Invalidate(key)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "refetch must wait for next access")

	v, status := s.Get(key)
	assert.Equal(t, "v1", v, "stale value remains readable")
	assert.Equal(t, StatusStale, status)

	_, err = s.FetchIfNeeded(context.Background(), key, countingLoader(&calls, "v2"))
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestInvalidate_WithSubscriberRefetchesImmediately(t *testing.T) {
	s := New(time.Minute)
	key := RecipeKey("r1")
	var calls int32

	notified := make(chan Key, 4)
	cancel := s.Subscribe(key, func(k Key) { notified <- k })
	defer cancel()

	_, err := s.FetchIfNeeded(context.Background(), key, countingLoader(&calls, "v1"))
	require.NoError(t, err)
	<-notified

	s.Invalidate(key)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "live subscriber forces one refetch")
	<-notified

	_, status := s.Get(key)
	assert.Equal(t, StatusFresh, status)
}

// blockingLoader blocks its first call until release closes and tells
// the caller via started; later calls return the second value at once.
func blockingLoader(calls *int32, started, release chan struct{}, first, rest any) Loader {
	return func(ctx context.Context) (any, error) {
		if atomic.AddInt32(calls, 1) == 1 {
			close(started)
			<-release
			return first, nil
		}
		return rest, nil
	}
}

func TestInvalidate_DuringInFlightLoadRefetchWins(t *testing.T) {
	s := New(time.Minute)
	key := RecipeKey("r1")
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	loader := blockingLoader(&calls, started, release, "pre-mutation", "post-mutation")

	cancel := s.Subscribe(key, func(Key) {})
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.FetchIfNeeded(context.Background(), key, loader)
	}()
	<-started

	// The mutation lands while the pre-mutation load is still in
	// flight; the live subscriber forces an immediate refetch.
	s.Invalidate(key)
	close(release)
	<-done

	v, status := s.Get(key)
	assert.Equal(t, "post-mutation", v, "the pre-mutation result must not win")
	assert.Equal(t, StatusFresh, status)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestInvalidate_DuringInFlightLoadWithoutSubscriberStaysStale(t *testing.T) {
	s := New(time.Minute)
	key := RecipeKey("r1")
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	loader := blockingLoader(&calls, started, release, "pre-mutation", "post-mutation")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.FetchIfNeeded(context.Background(), key, loader)
	}()
	<-started

	s.Invalidate(key)
	close(release)
	<-done

	// The overtaken result is discarded, not stamped fresh.
	_, status := s.Get(key)
	assert.Equal(t, StatusStale, status)

	v, err := s.FetchIfNeeded(context.Background(), key, loader)
	require.NoError(t, err)
	assert.Equal(t, "post-mutation", v)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestWrite_PatchesValueWithoutChangingStatus(t *testing.T) {
	s := New(time.Minute)
	key := RecipeKey("r1")
	var calls int32

	_, err := s.FetchIfNeeded(context.Background(), key, countingLoader(&calls, "loaded"))
	require.NoError(t, err)

	s.Write(key, "patched")
	v, status := s.Get(key)
	assert.Equal(t, "patched", v)
	assert.Equal(t, StatusFresh, status)

	// Still fresh, so the loader stays idle.
	_, err = s.FetchIfNeeded(context.Background(), key, countingLoader(&calls, "reloaded"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSubscribe_CancelStopsNotifications(t *testing.T) {
	s := New(time.Minute)
	key := RecipeKey("r1")

	var fired int32
	cancel := s.Subscribe(key, func(Key) { atomic.AddInt32(&fired, 1) })

	s.Write(key, "v1")
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))

	cancel()
	cancel() // idempotent

	s.Write(key, "v2")
	s.Invalidate(key)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired), "no callback after cancel")
	assert.Equal(t, 0, s.Subscribers(key))
}

func TestSubscribe_CallbackMayCancelItself(t *testing.T) {
	s := New(time.Minute)
	key := RecipeKey("r1")

	var fired int32
	var cancel func()
	cancel = s.Subscribe(key, func(Key) {
		atomic.AddInt32(&fired, 1)
		cancel()
	})

	s.Write(key, "v1") // must not deadlock
	s.Write(key, "v2")

	assert.Equal(t, int32(1), atomic.LoadInt32(&fired), "one-shot subscriber hears exactly one delivery")
	assert.Equal(t, 0, s.Subscribers(key))
}

func TestSubscribe_LateResultAbsorbedButNotDelivered(t *testing.T) {
	s := New(time.Minute)
	key := RecipeKey("r1")

	var fired int32
	cancel := s.Subscribe(key, func(Key) { atomic.AddInt32(&fired, 1) })

	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.FetchIfNeeded(context.Background(), key, func(ctx context.Context) (any, error) {
			<-release
			return "late", nil
		})
	}()

	// Tear the subscriber down while the fetch is still in flight.
	time.Sleep(20 * time.Millisecond)
	cancel()
	close(release)
	<-done

	// The cache absorbs the result; the dead subscriber hears nothing.
	v, status := s.Get(key)
	assert.Equal(t, "late", v)
	assert.Equal(t, StatusFresh, status)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestTTL_FreshAgesIntoStale(t *testing.T) {
	s := New(30 * time.Millisecond)
	key := RecipeKey("r1")
	var calls int32

	_, err := s.FetchIfNeeded(context.Background(), key, countingLoader(&calls, "v1"))
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	_, status := s.Get(key)
	assert.Equal(t, StatusStale, status)

	_, err = s.FetchIfNeeded(context.Background(), key, countingLoader(&calls, "v2"))
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "recipe:r1", RecipeKey("r1").String())
	assert.Equal(t, "recipes:all", RecipesKey().String())
	assert.Equal(t, "currentUser", CurrentUserKey().String())
	assert.Equal(t, "recipes:search?query=pasta", SearchKey("query=pasta").String())
}
