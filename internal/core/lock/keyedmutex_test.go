package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	m := NewKeyedMutex()
	ctx := context.Background()

	const workers = 20
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := m.Acquire(ctx, "room-1")
			if err != nil {
				t.Error(err)
				return
			}
			defer release()
			// Unsynchronized increment; the race detector flags it if two
			// goroutines ever hold the lock at once.
			counter++
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Errorf("counter = %d, want %d", counter, workers)
	}
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	m := NewKeyedMutex()
	ctx := context.Background()

	release1, err := m.Acquire(ctx, "room-1")
	if err != nil {
		t.Fatal(err)
	}
	defer release1()

	acquireCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	release2, err := m.Acquire(acquireCtx, "room-2")
	if err != nil {
		t.Fatalf("other key must not block: %v", err)
	}
	release2()
}

func TestKeyedMutex_AcquireHonorsContext(t *testing.T) {
	m := NewKeyedMutex()

	release, err := m.Acquire(context.Background(), "room-1")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := m.Acquire(ctx, "room-1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}

	release()

	// The key is usable again after a cancelled wait.
	release2, err := m.Acquire(context.Background(), "room-1")
	if err != nil {
		t.Fatalf("key unusable after cancelled wait: %v", err)
	}
	release2()
}

func TestKeyedMutex_ReleaseIsIdempotent(t *testing.T) {
	m := NewKeyedMutex()

	release, err := m.Acquire(context.Background(), "room-1")
	if err != nil {
		t.Fatal(err)
	}
	release()
	release() // second call is a no-op

	release2, err := m.Acquire(context.Background(), "room-1")
	if err != nil {
		t.Fatalf("double release corrupted the lock: %v", err)
	}
	release2()
}

func TestKeyedMutex_EntriesAreDroppedWhenIdle(t *testing.T) {
	m := NewKeyedMutex()

	release, err := m.Acquire(context.Background(), "room-1")
	if err != nil {
		t.Fatal(err)
	}
	release()

	m.mu.Lock()
	n := len(m.entries)
	m.mu.Unlock()
	if n != 0 {
		t.Errorf("entries = %d after release, want 0", n)
	}
}
