// Package ui binds the small page affordances of the portal to a dom.Document:
// the password visibility toggle, the digit-only mobile mask, the CSV upload
// zone and transient notifications.
//
// Binding functions register listeners and return; the behaviour then runs as
// events are dispatched. Listener bodies and timer callbacks run under the
// document's lock, so a Notifier may be used from inside any listener.
package ui
