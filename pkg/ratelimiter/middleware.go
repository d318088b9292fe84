package ratelimiter

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"
)

// KeyFunc picks the bucket key of a request.
type KeyFunc func(r *http.Request) string

// RemoteIP keys requests by the host part of RemoteAddr. Put chi's RealIP
// middleware in front of it when running behind a proxy.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware limits requests per key. Denied requests get the rate limit
// headers and are passed to denied; a nil denied answers 429 in plain text.
// Store errors let the request through.
func Middleware(b *Bucket, key KeyFunc, denied http.Handler) func(http.Handler) http.Handler {
	if denied == nil {
		denied = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := b.Allow(r.Context(), key(r))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if wait := res.RetryAfter(time.Now()); wait > 0 {
					h.Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				}
				denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
