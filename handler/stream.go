package handler

import (
	"encoding/json"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is a Context with an open datastar event stream.
type StreamContext interface {
	Context
	// SendComponent patches a rendered component into the page.
	SendComponent(component TemplComponent, opts ...datastar.PatchElementOption) error
	// SendHTML patches raw markup into the page.
	SendHTML(elements string, opts ...datastar.PatchElementOption) error
	// Remove deletes the elements matching selector.
	Remove(selector string) error
	// SendSignals merges values into the client's signals.
	SendSignals(signals map[string]any) error
}

// SSEHandler runs for the lifetime of the stream.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}
	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE streams events produced by h.
func SSE(h SSEHandler) Response {
	return sseResponse{handler: h}
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component TemplComponent, opts ...datastar.PatchElementOption) error {
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendHTML(elements string, opts ...datastar.PatchElementOption) error {
	return c.sse.PatchElements(elements, opts...)
}

func (c *streamContext) Remove(selector string) error {
	return c.sse.PatchElements("", datastar.WithSelector(selector), datastar.WithMode(datastar.ElementPatchModeRemove))
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}
