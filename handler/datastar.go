package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarHeader is sent by the datastar client on every backend action.
	DataStarHeader = "Datastar-Request"
	// DataStarQueryParam carries signals on GET actions.
	DataStarQueryParam = "datastar"
)

const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether r comes from a datastar client and expects an
// event stream.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// WithTarget patches the element matching selector instead of matching by id.
func WithTarget(selector string) datastar.PatchElementOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how patched elements are merged.
func WithPatchMode(mode datastar.ElementPatchMode) datastar.PatchElementOption {
	return datastar.WithMode(mode)
}
