package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockTTL       = 10 * time.Second
	retryInterval = 25 * time.Millisecond
)

// releaseScript deletes the lock key only when it still holds our token, so
// a lock that expired and was re-acquired by another instance is never
// released by the old holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RoomLock serializes booking writes per roomId across instances using
// SET NX with a TTL. Key format: lock:room:<roomId>.
//
// The TTL bounds how long a crashed holder can block a room; it must
// comfortably exceed one read-validate-write cycle.
type RoomLock struct {
	client *redis.Client
}

// NewRoomLock creates a RoomLock wrapping the given Redis client.
func NewRoomLock(client *redis.Client) *RoomLock {
	return &RoomLock{client: client}
}

// Acquire polls until the lock for key is held or ctx is done.
func (l *RoomLock) Acquire(ctx context.Context, key string) (func(), error) {
	token, err := randomToken()
	if err != nil {
		return nil, err
	}
	redisKey := l.key(key)

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("room lock acquire: %w", err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	release := func() {
		// Detached context: the lock must be released even when the
		// request context is already cancelled.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err()
	}
	return release, nil
}

func (l *RoomLock) key(roomID string) string {
	return "lock:room:" + roomID
}

func randomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("room lock token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
