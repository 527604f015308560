package client

import (
	"math"
	"math/rand"
	"time"
)

// BackoffStrategy decides how long to wait before a retry.
type BackoffStrategy interface {
	// Backoff returns how much duration to wait for a given attempt
	Backoff(attempt int) time.Duration
}

// BackoffFunc is an adapter to use ordinary functions as a BackoffStrategy.
type BackoffFunc func(attempt int) time.Duration

func (s BackoffFunc) Backoff(attempt int) time.Duration { return s(attempt) }

type ConstBackoff struct {
	// Delay is the time duration to wait before each retry attempt
	Delay time.Duration
}

func (c ConstBackoff) Backoff(int) time.Duration { return c.Delay }

// LinearBackoff will backoff linearly. It will start at InitialDelay, capping at MaxDelay.
type LinearBackoff struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func (l LinearBackoff) Backoff(attempt int) time.Duration {
	if d := l.InitialDelay * time.Duration(attempt); d < l.MaxDelay {
		return d
	}
	return l.MaxDelay
}

// ExponentialBackoff multiplies the delay after every attempt, capped at MaxDelay.
type ExponentialBackoff struct {
	Multiplier   float64
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// Jitter is the fraction of the computed delay added at random.
	Jitter float64
}

func (b *ExponentialBackoff) Backoff(attempt int) time.Duration {
	duration := b.InitialDelay * time.Duration(math.Pow(b.Multiplier, float64(attempt-1)))

	if b.MaxDelay > 0 && duration > b.MaxDelay {
		duration = b.MaxDelay
	}

	if b.Jitter > 0 {
		duration += time.Duration(rand.Float64() * b.Jitter * float64(duration)) //nolint:gosec
	}

	return duration
}

// DefaultBackoff suits interactive calls against the catalog API.
var DefaultBackoff = &ExponentialBackoff{
	Multiplier:   2,
	InitialDelay: 250 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Jitter:       0.2,
}
