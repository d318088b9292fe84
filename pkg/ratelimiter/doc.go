// Package ratelimiter is a token bucket rate limiter with an in-memory store
// and net/http middleware.
//
// Each key owns a bucket holding up to Burst tokens. Every Interval, Refill
// tokens are added back. A request consumes one token and is denied when the
// bucket is empty.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{Burst: 30, Refill: 10, Interval: time.Second})
//	...
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.RemoteIP, denied)).Post("/forms/{form}/validate/{field}", h)
package ratelimiter
