// Package httpserver runs an http.Handler until its context is cancelled and
// then drains in-flight requests within a shutdown timeout.
//
// Options or a Config (bound from HTTP_* variables) set the address and
// timeouts. Start hooks receive the bound address, which is useful with
// ":0"; stop hooks run after the graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthHandler answers liveness and readiness checks.
package httpserver
