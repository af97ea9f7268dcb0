package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient implements the commands the store issues; any other call panics
// on the nil embedded interface.
type fakeClient struct {
	redis.Cmdable
	data    map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failErr != nil {
		return redis.NewStringResult("", f.failErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeClient) SetNX(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd {
	if f.failErr != nil {
		return redis.NewBoolResult(false, f.failErr)
	}
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = value.(string)
	f.ttls[key] = ttl
	return redis.NewBoolResult(true, nil)
}

// EvalSha runs the two idempotency scripts natively, recognised by hash.
func (f *fakeClient) EvalSha(_ context.Context, sha string, keys []string, args ...interface{}) *redis.Cmd {
	if f.failErr != nil {
		return redis.NewCmdResult(nil, f.failErr)
	}
	key := keys[0]
	if f.data[key] != fmt.Sprint(args[0]) {
		return redis.NewCmdResult(int64(0), nil)
	}
	switch sha {
	case completeScript.Hash():
		ms, _ := strconv.ParseInt(fmt.Sprint(args[2]), 10, 64)
		f.data[key] = fmt.Sprint(args[1])
		f.ttls[key] = time.Duration(ms) * time.Millisecond
	case releaseScript.Hash():
		delete(f.data, key)
		delete(f.ttls, key)
	default:
		return redis.NewCmdResult(nil, errors.New("NOSCRIPT unknown script"))
	}
	return redis.NewCmdResult(int64(1), nil)
}

func TestIdempotencyStore_ReserveCompleteReplay(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewIdempotencyStore(client, time.Hour)

	id, claimed, err := store.Reserve(ctx, "driver", "abc")
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.Zero(t, id)
	assert.Equal(t, pendingTTL, client.ttls["idem:driver:abc"])

	id, claimed, err = store.Reserve(ctx, "driver", "abc")
	require.NoError(t, err)
	assert.False(t, claimed, "a held key must not be claimed twice")
	assert.Zero(t, id)

	require.NoError(t, store.Complete(ctx, "driver", "abc", 7))
	id, claimed, err = store.Reserve(ctx, "driver", "abc")
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Equal(t, int64(7), id)

	assert.Equal(t, "7", client.data["idem:driver:abc"])
	assert.Equal(t, time.Hour, client.ttls["idem:driver:abc"])
}

func TestIdempotencyStore_FirstCompletionWins(t *testing.T) {
	ctx := context.Background()
	store := NewIdempotencyStore(newFakeClient(), 0)

	_, _, err := store.Reserve(ctx, "vehicle", "k")
	require.NoError(t, err)
	require.NoError(t, store.Complete(ctx, "vehicle", "k", 1))
	require.NoError(t, store.Complete(ctx, "vehicle", "k", 2))

	id, _, err := store.Reserve(ctx, "vehicle", "k")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestIdempotencyStore_ReleaseFreesPendingKeyOnly(t *testing.T) {
	ctx := context.Background()
	store := NewIdempotencyStore(newFakeClient(), 0)

	_, _, err := store.Reserve(ctx, "officer", "k")
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "officer", "k"))
	_, claimed, err := store.Reserve(ctx, "officer", "k")
	require.NoError(t, err)
	assert.True(t, claimed, "a released key can be reserved again")

	require.NoError(t, store.Complete(ctx, "officer", "k", 4))
	require.NoError(t, store.Release(ctx, "officer", "k"))
	id, _, err := store.Reserve(ctx, "officer", "k")
	require.NoError(t, err)
	assert.Equal(t, int64(4), id, "release must not drop a completed key")
}

func TestIdempotencyStore_KeysAreScopedByResource(t *testing.T) {
	ctx := context.Background()
	store := NewIdempotencyStore(newFakeClient(), 0)

	_, _, err := store.Reserve(ctx, "driver", "k")
	require.NoError(t, err)
	_, claimed, err := store.Reserve(ctx, "vehicle", "k")
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestIdempotencyStore_DefaultTTL(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	store := NewIdempotencyStore(client, -time.Second)

	_, _, err := store.Reserve(ctx, "officer", "k")
	require.NoError(t, err)
	require.NoError(t, store.Complete(ctx, "officer", "k", 3))
	assert.Equal(t, DefaultIdempotencyTTL, client.ttls["idem:officer:k"])
}

func TestIdempotencyStore_Errors(t *testing.T) {
	ctx := context.Background()
	down := errors.New("connection refused")

	client := newFakeClient()
	client.failErr = down
	store := NewIdempotencyStore(client, 0)

	_, _, err := store.Reserve(ctx, "driver", "k")
	assert.ErrorIs(t, err, down)
	assert.ErrorIs(t, store.Complete(ctx, "driver", "k", 1), down)
	assert.ErrorIs(t, store.Release(ctx, "driver", "k"), down)

	corrupt := newFakeClient()
	corrupt.data["idem:driver:k"] = "not-a-number"
	_, claimed, err := NewIdempotencyStore(corrupt, 0).Reserve(ctx, "driver", "k")
	assert.Error(t, err)
	assert.False(t, claimed)
}

type pingClient struct {
	redis.Cmdable
	err error
}

func (p pingClient) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", p.err)
}

func TestProbe(t *testing.T) {
	assert.NoError(t, Probe(pingClient{})(context.Background()))

	down := errors.New("i/o timeout")
	assert.ErrorIs(t, Probe(pingClient{err: down})(context.Background()), down)
}

func TestConfig_Options(t *testing.T) {
	opts := Config{Addr: "cache:6379", DB: 2}.options()
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, defaultDialTimeout, opts.DialTimeout)
	assert.Equal(t, defaultDialTimeout, opts.ReadTimeout)

	opts = Config{DialTimeout: time.Second}.options()
	assert.Equal(t, time.Second, opts.WriteTimeout)
}
