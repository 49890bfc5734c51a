package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_EntriesExpire(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	store.Set(context.Background(), "k", 1)
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry to be present")
	}

	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
	if got := store.Stats().Entries; got != 0 {
		t.Fatalf("expired entry not evicted, entries=%d", got)
	}
}

func TestStore_LoaderErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	boom := errors.New("boom")

	for i := 0; i < 2; i++ {
		_, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
			calls.Add(1)
			return nil, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected loader error, got %v", err)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "calendar:a:1", 1)
	store.Set(ctx, "calendar:a:2", 2)
	store.Set(ctx, "calendar:b:1", 3)

	store.DeletePrefix(ctx, "calendar:a:")
	if _, ok := store.Get(ctx, "calendar:a:1"); ok {
		t.Fatalf("expected calendar:a:1 to be deleted")
	}
	if _, ok := store.Get(ctx, "calendar:b:1"); !ok {
		t.Fatalf("expected calendar:b:1 to survive")
	}
}

func TestStore_DisabledAlwaysLoads(t *testing.T) {
	t.Parallel()

	store := NewDisabledStore()
	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		v, err := Load(context.Background(), store, "k", func(context.Context) (int, error) {
			calls.Add(1)
			return 42, nil
		})
		if err != nil || v != 42 {
			t.Fatalf("Load = %d, %v", v, err)
		}
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("loader called %d times, want 3", got)
	}
	if got := store.Stats().Entries; got != 0 {
		t.Fatalf("disabled store retained %d entries", got)
	}
}

func TestLoad_TypedAndCounted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	loader := func(context.Context) ([]string, error) { return []string{"a", "b"}, nil }

	for i := 0; i < 3; i++ {
		got, err := Load(ctx, store, "roster", loader)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("unexpected value %v", got)
		}
	}

	stats := store.Stats()
	if stats.Loads != 1 || stats.Hits != 2 || stats.Entries != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	store.Set(ctx, "roster", 7)
	got, err := Load(ctx, store, "roster", loader)
	if err != nil || len(got) != 2 {
		t.Fatalf("expected mistyped entry to be reloaded, got %v, %v", got, err)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
