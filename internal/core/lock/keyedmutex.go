// Package lock provides in-process serialization of booking writes per
// resource key. The read-validate-write sequence the booking service runs
// is not atomic on its own; locking per roomId closes the race without
// serializing unrelated rooms behind one global lock.
package lock

import (
	"context"
	"sync"
)

// KeyedMutex hands out one mutex per key, created on first use and dropped
// again once no caller holds or waits for it. The zero value is not usable;
// construct with NewKeyedMutex.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	ch   chan struct{} // 1-slot semaphore
	refs int           // holders + waiters
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*entry)}
}

// Acquire blocks until the lock for key is held or ctx is done. On success
// the returned release function must be called exactly once.
func (m *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		m.entries[key] = e
	}
	e.refs++
	m.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		m.unref(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			<-e.ch
			m.unref(key, e)
		})
	}
	return release, nil
}

func (m *KeyedMutex) unref(key string, e *entry) {
	m.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
	m.mu.Unlock()
}
