// Package binder decodes HTTP requests into tagged structs.
//
// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies using `form:"name"` tags for values and `file:"name"` tags for
// uploads. Signals binds the JSON signal payload a datastar client sends.
// A binder returns ErrNotApplicable when the request is not meant for it, so
// handlers may chain several:
//
//	type loginRequest struct {
//		Email    string `form:"email" json:"email"`
//		Password string `form:"password" json:"password"`
//	}
//
//	handler.WithBinders[loginRequest](binder.Signals(), binder.Form(binder.DefaultMaxMemory))
//
// Fields may be string, []string, *multipart.FileHeader or
// []*multipart.FileHeader.
package binder
