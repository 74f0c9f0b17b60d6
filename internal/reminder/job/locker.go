package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Locker grants a lease on key for at most ttl. ok is false when another
// holder owns the lease.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context), ok bool, err error)
}

// releaseScript deletes the key only if it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

type redisLocker struct {
	client goredis.UniversalClient
}

// NewRedisLocker returns a Locker backed by SET NX PX.
func NewRedisLocker(client goredis.UniversalClient) Locker {
	return &redisLocker{client: client}
}

func (r *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context), bool, error) {
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}

	release := func(ctx context.Context) {
		_ = releaseScript.Run(ctx, r.client, []string{key}, token).Err()
	}
	return release, true, nil
}
