package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nysp/correction-notices/internal/core/domain"
	"github.com/nysp/correction-notices/internal/core/ports"
)

const (
	defaultReplayWait = 5 * time.Second
	defaultReplayPoll = 20 * time.Millisecond
)

// replayer wraps an optional IdempotencyStore. Store failures are logged and
// never fail the request; the create then runs without replay protection.
type replayer struct {
	store ports.IdempotencyStore
	log   zerolog.Logger
	// wait bounds how long a request blocks on a key another request holds.
	wait time.Duration
	poll time.Duration
}

// claim is the reservation of one key. A nil claim is valid and does nothing.
type claim struct {
	store         ports.IdempotencyStore
	log           zerolog.Logger
	resource, key string
	held          bool
}

// begin reserves key for resource. When a request already completed under
// key, begin returns its record ID with replay set. When another request
// holds key, begin waits for it and fails with domain.ErrIdempotencyInFlight
// once r.wait elapses.
func (r replayer) begin(ctx context.Context, resource, key string) (c *claim, id int64, replay bool, err error) {
	if r.store == nil || key == "" {
		return nil, 0, false, nil
	}
	wait, poll := r.wait, r.poll
	if wait <= 0 {
		wait = defaultReplayWait
	}
	if poll <= 0 {
		poll = defaultReplayPoll
	}
	deadline := time.Now().Add(wait)

	for {
		id, claimed, err := r.store.Reserve(ctx, resource, key)
		switch {
		case err != nil:
			r.log.Warn().Err(err).Str("resource", resource).Msg("idempotency reserve failed, creating anyway")
			return nil, 0, false, nil
		case claimed:
			return &claim{store: r.store, log: r.log, resource: resource, key: key, held: true}, 0, false, nil
		case id != 0:
			r.log.Info().Str("resource", resource).Str("idempotency_key", key).Int64("id", id).Msg("idempotent replay")
			return nil, id, true, nil
		}

		if time.Now().After(deadline) {
			return nil, 0, false, domain.ErrIdempotencyInFlight
		}
		select {
		case <-ctx.Done():
			return nil, 0, false, ctx.Err()
		case <-time.After(poll):
		}
	}
}

// complete binds the reserved key to id.
func (c *claim) complete(ctx context.Context, id int64) {
	if c == nil || !c.held {
		return
	}
	c.held = false
	if err := c.store.Complete(context.WithoutCancel(ctx), c.resource, c.key, id); err != nil {
		c.log.Warn().Err(err).Str("resource", c.resource).Int64("id", id).Msg("failed to record idempotency key")
	}
}

// release gives the key up unless complete already ran.
func (c *claim) release(ctx context.Context) {
	if c == nil || !c.held {
		return
	}
	c.held = false
	if err := c.store.Release(context.WithoutCancel(ctx), c.resource, c.key); err != nil {
		c.log.Warn().Err(err).Str("resource", c.resource).Msg("failed to release idempotency key")
	}
}
