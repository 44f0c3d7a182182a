package seats

import (
	"context"
	"fmt"
	"time"

	"saunie/internal/shared/constants"
	"saunie/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Only the holder that set the token may delete the key
var luaReleaseTripLock = redis.NewScript(`
-- KEYS[1] = lock key
-- ARGV[1] = holder token
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker holds a trip across server replicas. The TTL frees the trip
// if a holder dies without releasing it.
type RedisLocker struct {
	client        *redis.Client
	ttl           time.Duration
	retryInterval time.Duration
}

func NewRedisLocker(client *redis.Client, ttl, retryInterval time.Duration) *RedisLocker {
	if retryInterval <= 0 {
		retryInterval = 25 * time.Millisecond
	}
	return &RedisLocker{
		client:        client,
		ttl:           ttl,
		retryInterval: retryInterval,
	}
}

func (r *RedisLocker) Lock(ctx context.Context, tripID uuid.UUID) (func(), error) {
	key := constants.BuildTripLockKey(tripID.String())
	token := uuid.NewString()

	ticker := time.NewTicker(r.retryInterval)
	defer ticker.Stop()

	for {
		acquired, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire trip lock: %w", err)
		}
		if acquired {
			return func() { r.unlock(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *RedisLocker) unlock(key, token string) {
	// released on a fresh context; the request context may already be gone
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := luaReleaseTripLock.Run(ctx, r.client, []string{key}, token).Err(); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "Failed to release trip lock", err, map[string]interface{}{"key": key})
	}
}
