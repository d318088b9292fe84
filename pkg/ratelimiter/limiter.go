package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidConfig     = errors.New("invalid rate limit configuration")
	ErrInvalidTokenCount = errors.New("invalid token count")
)

// Config sizes a bucket.
type Config struct {
	Burst    int           `env:"RATE_BURST" envDefault:"30"`
	Refill   int           `env:"RATE_REFILL" envDefault:"10"`
	Interval time.Duration `env:"RATE_INTERVAL" envDefault:"1s"`
}

// Enabled reports whether c describes a usable bucket.
func (c Config) Enabled() bool {
	return c.validate() == nil
}

func (c Config) validate() error {
	switch {
	case c.Burst <= 0:
		return fmt.Errorf("%w: burst must be positive, got %d", ErrInvalidConfig, c.Burst)
	case c.Refill <= 0:
		return fmt.Errorf("%w: refill must be positive, got %d", ErrInvalidConfig, c.Refill)
	case c.Interval <= 0:
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalidConfig, c.Interval)
	}
	return nil
}

// Result is the bucket state after a request.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request got a token.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is how long a denied caller should wait; zero when allowed.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() || !r.ResetAt.After(now) {
		return 0
	}
	return r.ResetAt.Sub(now)
}

// Bucket applies one Config to every key of a Store.
type Bucket struct {
	store  Store
	config Config
}

// NewBucket validates cfg and returns a Bucket over store.
func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, config: cfg}, nil
}

// Allow consumes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN consumes n tokens for key.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	remaining, resetAt, err := b.store.Take(ctx, key, n, b.config)
	if err != nil {
		return Result{}, err
	}
	return Result{Limit: b.config.Burst, Remaining: remaining, ResetAt: resetAt}, nil
}

// Reset forgets key.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}
