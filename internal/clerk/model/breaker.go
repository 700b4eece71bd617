package model

import (
	"context"
	"errors"
	"sync"
	"time"

	dErrors "tpb/pkg/domain-errors"
)

// Breaker wraps an Invoker and fails fast after a run of consecutive
// failures. While open, calls return an upstream error without reaching the
// provider. Once the cooldown passes exactly one call is let through while the
// rest keep failing fast; its outcome decides whether the circuit closes again.
type Breaker struct {
	next Invoker

	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	failures  int
	openUntil time.Time
	isOpen    bool
	trialing  bool
	now       func() time.Time
}

// NewBreaker returns next unchanged when threshold is not positive.
func NewBreaker(next Invoker, threshold int, cooldown time.Duration) Invoker {
	if threshold <= 0 {
		return next
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return &Breaker{
		next:      next,
		threshold: threshold,
		cooldown:  cooldown,
		now:       time.Now,
	}
}

func (b *Breaker) Invoke(ctx context.Context, req Request) (*Reply, error) {
	trial, ok := b.allow()
	if !ok {
		return nil, dErrors.New(dErrors.CodeUpstream, msgCallFailed)
	}
	reply, err := b.next.Invoke(ctx, req)
	switch {
	case err == nil:
		b.recordSuccess()
	case errors.Is(ctx.Err(), context.Canceled):
		// caller went away; says nothing about the provider
		if trial {
			b.endTrial()
		}
	default:
		b.recordFailure()
	}
	return reply, err
}

// IsOpen reports whether calls are currently short-circuited.
func (b *Breaker) IsOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isOpen && (b.trialing || b.now().Before(b.openUntil))
}

// allow reports whether a call may proceed and whether it is the half-open
// trial. While a trial is in flight every other call is refused.
func (b *Breaker) allow() (trial, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.isOpen {
		return false, true
	}
	if b.trialing || b.now().Before(b.openUntil) {
		return false, false
	}
	b.trialing = true
	return true, true
}

func (b *Breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.isOpen = false
	b.trialing = false
}

func (b *Breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	if b.trialing || b.failures >= b.threshold {
		b.isOpen = true
		b.openUntil = b.now().Add(b.cooldown)
	}
	b.trialing = false
}

// endTrial releases an abandoned trial so the next caller can try.
func (b *Breaker) endTrial() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trialing = false
}
