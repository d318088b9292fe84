// Package requestid tags every HTTP request with an id, echoed in the
// X-Request-ID response header and attached to log records.
//
// A valid id sent by the client is reused; anything else is replaced with a
// new UUID. Handlers read the id with FromContext.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
