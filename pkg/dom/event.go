package dom

// EventKind names an event type. The values match the browser event names.
type EventKind string

const (
	ContentLoaded EventKind = "DOMContentLoaded"
	Submit        EventKind = "submit"
	Blur          EventKind = "blur"
	Input         EventKind = "input"
	Click         EventKind = "click"
	DragOver      EventKind = "dragover"
	DragLeave     EventKind = "dragleave"
	Drop          EventKind = "drop"
	Change        EventKind = "change"
)

// File describes a file selected in a file input or dropped on an element.
type File struct {
	Name string
	Size int64
	Type string
}

// Event is a single dispatched event.
type Event struct {
	Kind   EventKind
	Target *Element
	// Files carries the dropped files for Drop events.
	Files []File

	defaultPrevented bool
}

// NewEvent creates an event of the given kind.
func NewEvent(kind EventKind) *Event {
	return &Event{Kind: kind}
}

// NewDropEvent creates a Drop event carrying files.
func NewDropEvent(files ...File) *Event {
	return &Event{Kind: Drop, Files: files}
}

// PreventDefault cancels the host's default action for the event.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener cancelled the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener handles a dispatched event.
type Listener func(ev *Event)
