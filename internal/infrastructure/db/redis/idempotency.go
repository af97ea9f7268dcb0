package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultIdempotencyTTL bounds how long a replayable create is remembered.
const DefaultIdempotencyTTL = 24 * time.Hour

// pendingTTL bounds a reservation whose holder died before completing it.
const pendingTTL = time.Minute

const pendingMarker = "pending"

// completeScript sets the record ID only while the key still holds the
// pending marker, so the first completed ID is kept.
var completeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
	return 1
end
return 0`)

// releaseScript deletes the key only while it holds the pending marker.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// IdempotencyStore records create results in Redis.
// Key format: idem:<resource>:<key>
type IdempotencyStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. A non-positive ttl uses DefaultIdempotencyTTL.
func NewIdempotencyStore(client redis.Cmdable, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

func (s *IdempotencyStore) Reserve(ctx context.Context, resource, key string) (int64, bool, error) {
	k := s.key(resource, key)
	claimed, err := s.client.SetNX(ctx, k, pendingMarker, pendingTTL).Result()
	if err != nil {
		return 0, false, fmt.Errorf("idempotency reserve: %w", err)
	}
	if claimed {
		return 0, true, nil
	}

	val, err := s.client.Get(ctx, k).Result()
	switch {
	case errors.Is(err, redis.Nil), err == nil && val == pendingMarker:
		// Held by another request, or released between the two calls.
		return 0, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("idempotency reserve: %w", err)
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency reserve: corrupt value %q", val)
	}
	return id, false, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, resource, key string, id int64) error {
	err := completeScript.Run(ctx, s.client, []string{s.key(resource, key)},
		pendingMarker, strconv.FormatInt(id, 10), s.ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, resource, key string) error {
	if err := releaseScript.Run(ctx, s.client, []string{s.key(resource, key)}, pendingMarker).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(resource, key string) string {
	return fmt.Sprintf("idem:%s:%s", resource, key)
}
