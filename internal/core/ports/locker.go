package ports

import "context"

// Locker serializes the read-validate-write sequence for a resource key
// (the booking service locks per roomId). Acquire blocks until the lock is
// held or ctx is done; the returned release function must always be called.
//
// In-process deployments use a keyed mutex; multi-instance deployments
// against MongoDB can use the Redis-backed implementation instead.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
