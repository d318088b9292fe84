package httpserver

import (
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*options)

type options struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
	startHooks      []func(addr string)
	stopHooks       []func()
}

// WithAddr sets the listen address. An empty addr keeps the default.
func WithAddr(addr string) Option {
	return func(o *options) {
		if addr != "" {
			o.addr = addr
		}
	}
}

// WithReadTimeout bounds reading a whole request. Zero means no limit.
func WithReadTimeout(d time.Duration) Option {
	return func(o *options) { o.readTimeout = max(d, 0) }
}

// WithWriteTimeout bounds writing a response. Zero means no limit, which
// long-lived SSE responses need.
func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { o.writeTimeout = max(d, 0) }
}

// WithIdleTimeout bounds keep-alive idle time.
func WithIdleTimeout(d time.Duration) Option {
	return func(o *options) { o.idleTimeout = max(d, 0) }
}

// WithShutdownTimeout bounds graceful shutdown. Non-positive values keep the default.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}

// WithLogger sets the server's logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStartHook runs h with the bound address once the listener is open.
func WithStartHook(h func(addr string)) Option {
	return func(o *options) {
		if h != nil {
			o.startHooks = append(o.startHooks, h)
		}
	}
}

// WithStopHook runs h after a graceful shutdown.
func WithStopHook(h func()) Option {
	return func(o *options) {
		if h != nil {
			o.stopHooks = append(o.stopHooks, h)
		}
	}
}
