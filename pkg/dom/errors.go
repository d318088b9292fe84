package dom

import "errors"

var (
	// ErrParse is returned when markup cannot be parsed into a document.
	ErrParse = errors.New("dom: failed to parse markup")

	// ErrRender is returned when a document or element cannot be serialised.
	ErrRender = errors.New("dom: failed to render markup")
)
