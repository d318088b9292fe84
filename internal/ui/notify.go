package ui

import (
	"time"

	"github.com/google/uuid"

	"github.com/auroraair/formkit/pkg/dom"
)

// Type is the visual category of a notification.
type Type string

const (
	Success Type = "success"
	Error   Type = "error"
	Warning Type = "warning"
	Info    Type = "info"
)

// ParseType maps s to a known Type, falling back to Info.
func ParseType(s string) Type {
	switch t := Type(s); t {
	case Success, Error, Warning, Info:
		return t
	default:
		return Info
	}
}

const (
	// NotificationClass marks the notification banner.
	NotificationClass = "notification"

	// DefaultDisplay is how long a banner stays before sliding out.
	DefaultDisplay = 5 * time.Second
	// DefaultExit is the slide-out duration before the banner is removed.
	DefaultExit = 300 * time.Millisecond

	notificationBox = "position: fixed; top: 80px; right: 20px; z-index: 9999; min-width: 300px; "
)

// Banner styles for each phase of the lifecycle.
const (
	SlideInStyle  = notificationBox + "animation: slideIn 0.3s ease;"
	SlideOutStyle = notificationBox + "animation: slideOut 0.3s ease;"
)

// Keyframes defines the slideIn and slideOut animations used by banners.
const Keyframes = `
@keyframes slideIn {
    from { transform: translateX(100%); opacity: 0; }
    to { transform: translateX(0); opacity: 1; }
}
@keyframes slideOut {
    from { transform: translateX(0); opacity: 1; }
    to { transform: translateX(100%); opacity: 0; }
}
`

// InjectKeyframes appends a style element holding Keyframes to the head.
func InjectKeyframes(doc *dom.Document) {
	head := doc.Head()
	if head == nil {
		return
	}
	style := doc.CreateElement("style")
	style.SetText(Keyframes)
	head.AppendChild(style)
}

// ClassName is the class attribute of a banner of type t.
func ClassName(t Type) string {
	if t == "" {
		t = Info
	}
	return NotificationClass + " alert alert-" + string(t)
}

// NewNotificationID returns a unique element id for a banner.
func NewNotificationID() string {
	return "notification-" + uuid.NewString()
}

// NewNotification builds a detached banner in doc.
func NewNotification(doc *dom.Document, id, message string, t Type) *dom.Element {
	el := doc.CreateElement("div")
	if id != "" {
		el.SetAttr("id", id)
	}
	el.SetAttr("class", ClassName(t))
	el.SetStyle(SlideInStyle)
	el.SetText(message)
	return el
}

// Timer is a pending one-shot callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) NotifierOption {
	return func(n *Notifier) {
		if s != nil {
			n.sched = s
		}
	}
}

// WithDelays overrides the display and exit delays. Non-positive values keep the defaults.
func WithDelays(display, exit time.Duration) NotifierOption {
	return func(n *Notifier) {
		if display > 0 {
			n.display = display
		}
		if exit > 0 {
			n.exit = exit
		}
	}
}

// Phase is a step of a banner's lifecycle.
type Phase int

const (
	// Shown: earlier banners were removed and this one appended to the body.
	Shown Phase = iota
	// SlidingOut: the banner switched to the slide-out animation.
	SlidingOut
	// Removed: the banner left the document.
	Removed
)

// WithPhaseHook calls h, under the document lock, at every lifecycle step.
func WithPhaseHook(h func(Phase, *dom.Element)) NotifierOption {
	return func(n *Notifier) {
		if h != nil {
			n.hooks = append(n.hooks, h)
		}
	}
}

// Notifier shows at most one transient banner in a document.
// Show must run under the document lock: inside a listener or Document.Do.
type Notifier struct {
	doc     *dom.Document
	sched   Scheduler
	display time.Duration
	exit    time.Duration

	hooks   []func(Phase, *dom.Element)
	current *dom.Element
	timer   Timer
}

func (n *Notifier) emit(p Phase, el *dom.Element) {
	for _, h := range n.hooks {
		h(p, el)
	}
}

// NewNotifier returns a Notifier for doc.
func NewNotifier(doc *dom.Document, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		doc:     doc,
		sched:   realClock{},
		display: DefaultDisplay,
		exit:    DefaultExit,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Show replaces any banner on the page with a new one and schedules its
// slide-out and removal. An empty t means Info.
func (n *Notifier) Show(message string, t Type) *dom.Element {
	body := n.doc.Body()
	if body == nil {
		return nil
	}

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	for _, old := range n.doc.QueryAll(dom.ByClass(NotificationClass)) {
		old.Remove()
	}

	el := NewNotification(n.doc, NewNotificationID(), message, t)
	body.AppendChild(el)
	n.current = el
	n.emit(Shown, el)

	n.timer = n.sched.AfterFunc(n.display, func() {
		n.doc.Do(func() {
			if n.current != el {
				return
			}
			el.SetStyle(SlideOutStyle)
			n.emit(SlidingOut, el)
			n.timer = n.sched.AfterFunc(n.exit, func() {
				n.doc.Do(func() {
					el.Remove()
					n.emit(Removed, el)
					if n.current == el {
						n.current = nil
						n.timer = nil
					}
				})
			})
		})
	})
	return el
}

// Current returns the banner on display, or nil.
func (n *Notifier) Current() *dom.Element {
	return n.current
}

// NotificationHTML renders a detached banner as markup, for pages and
// patches built outside a live document.
func NotificationHTML(id, message string, t Type) string {
	doc, err := dom.ParseString("")
	if err != nil {
		return ""
	}
	return NewNotification(doc, id, message, t).OuterHTML()
}
