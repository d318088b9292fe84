// Package dom is a small in-memory HTML document with browser-style event
// dispatch. It hosts the form behaviours outside a browser: pages are parsed
// with golang.org/x/net/html, listeners are registered per element and event
// kind, and every mutation (classes, text, attributes, children) is visible in
// the rendered markup.
//
// # Events
//
// Events are a tagged variant: an Event carries its Kind (submit, blur, input,
// click, dragover, dragleave, drop, change, DOMContentLoaded), the target
// element and, for drop/change, the files involved. Listeners can cancel the
// default action with PreventDefault; Dispatch reports whether the default
// action should proceed.
//
//	doc, _ := dom.ParseString(page)
//	form := doc.ByID("loginForm")
//	doc.AddEventListener(form, dom.Submit, func(ev *dom.Event) {
//	    ev.PreventDefault()
//	})
//	proceed := doc.Dispatch(form, dom.NewEvent(dom.Submit))
//
// # Concurrency
//
// A Document serialises Dispatch and Do on one mutex, so listeners and timer
// callbacks run to completion one at a time, like a browser event loop.
// Element methods do not lock; call them from listeners or inside Do.
package dom
