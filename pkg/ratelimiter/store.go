package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Store keeps bucket state per key.
type Store interface {
	// Take refills the bucket of key, removes tokens from it and returns what
	// is left. A negative remainder means the request is denied.
	Take(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

type bucketState struct {
	tokens     int
	lastRefill time.Time
	lastSeen   time.Time
}

// MemoryStore is a Store in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState
	now     func() time.Time

	sweepEvery time.Duration
	idleAfter  time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithSweep removes buckets idle for longer than idle, checking every
// interval. A zero interval disables sweeping.
func WithSweep(interval, idle time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.sweepEvery = interval
		if idle > 0 {
			ms.idleAfter = idle
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// NewMemoryStore returns an empty store. Call Close to stop sweeping.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets:    make(map[string]*bucketState),
		now:        time.Now,
		sweepEvery: 5 * time.Minute,
		idleAfter:  time.Hour,
		stop:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}
	if ms.sweepEvery > 0 {
		go ms.sweepLoop()
	}
	return ms
}

func (ms *MemoryStore) Take(_ context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	b, ok := ms.buckets[key]
	if !ok {
		b = &bucketState{tokens: cfg.Burst, lastRefill: now}
		ms.buckets[key] = b
	}

	// Bounded so a long idle period cannot overflow.
	maxIntervals := int64(cfg.Burst/cfg.Refill + 1)
	if intervals := int(min(int64(now.Sub(b.lastRefill)/cfg.Interval), maxIntervals)); intervals > 0 {
		b.tokens = min(b.tokens+intervals*cfg.Refill, cfg.Burst)
		b.lastRefill = now
	}

	b.tokens -= tokens
	remaining := b.tokens
	if b.tokens < 0 {
		// A denied request does not dig the bucket deeper.
		b.tokens += tokens
	}
	b.lastSeen = now
	return remaining, b.lastRefill.Add(cfg.Interval), nil
}

func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.buckets, key)
	return nil
}

// Len returns the number of tracked keys.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.buckets)
}

// Sweep removes idle buckets now.
func (ms *MemoryStore) Sweep() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	now := ms.now()
	for key, b := range ms.buckets {
		if now.Sub(b.lastSeen) > ms.idleAfter {
			delete(ms.buckets, key)
		}
	}
}

func (ms *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(ms.sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ms.Sweep()
		case <-ms.stop:
			return
		}
	}
}

// Close stops sweeping. It is safe to call more than once.
func (ms *MemoryStore) Close() {
	ms.stopOnce.Do(func() { close(ms.stop) })
}
