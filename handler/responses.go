package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent is satisfied by templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

type templResponse struct {
	component TemplComponent
	status    int
	options   []datastar.PatchElementOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ renders component as HTML, or patches it in over SSE for datastar requests.
func Templ(component TemplComponent, opts ...datastar.PatchElementOption) Response {
	return templResponse{component: component, options: opts}
}

// TemplStatus is Templ with a status code for the HTML response.
func TemplStatus(status int, component TemplComponent, opts ...datastar.PatchElementOption) Response {
	return templResponse{component: component, status: status, options: opts}
}

type redirectResponse struct {
	url string
}

func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).Redirect(rr.url)
	}
	http.Redirect(w, r, rr.url, http.StatusSeeOther)
	return nil
}

// Redirect sends the client to url with 303 See Other, or through a datastar
// redirect for datastar requests.
func Redirect(url string) Response {
	return redirectResponse{url: url}
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON encodes v with the given status.
func JSON(status int, v any) Response {
	return jsonResponse{status: status, body: v}
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Fail hands err to the error handler.
func Fail(err error) Response {
	return errorResponse{err: err}
}
