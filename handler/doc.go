// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value decoded by the
// configured binders, and returns a Response. Responses adapt to the client:
// page responses render HTML for ordinary requests and become datastar
// element patches over SSE when the request comes from a datastar client.
//
//	h := handler.Wrap(
//		func(ctx handler.Context, req LoginRequest) handler.Response {
//			if !valid(req) {
//				return handler.TemplStatus(http.StatusUnprocessableEntity, page)
//			}
//			return handler.Redirect("/predict?notice=welcome")
//		},
//		handler.WithBinders[LoginRequest](binder.Form(0)),
//		handler.WithErrorHandler[LoginRequest](errorHandler),
//	)
//
// Errors returned by binders or Render go to the ErrorHandler. NewErrorHandler
// renders an error page, or a notification banner for datastar requests.
package handler
