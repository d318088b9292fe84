package dom

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page with event listeners attached to its elements.
type Document struct {
	mu        sync.Mutex
	root      *html.Node
	elements  map[*html.Node]*Element
	listeners map[listenerKey][]Listener
	files     map[*html.Node][]File
}

type listenerKey struct {
	target *html.Node // nil for document-level listeners
	kind   EventKind
}

// Parse reads an HTML page. Missing html/head/body elements are synthesised
// the way a browser would.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return newDocument(root), nil
}

// ParseString is Parse for in-memory markup.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

func newDocument(root *html.Node) *Document {
	return &Document{
		root:      root,
		elements:  make(map[*html.Node]*Element),
		listeners: make(map[listenerKey][]Listener),
		files:     make(map[*html.Node][]File),
	}
}

// wrap returns the Element for n, reusing the existing wrapper so element
// identity is stable across lookups.
func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) *Element {
	if id == "" {
		return nil
	}
	return d.Query(ByAttr("id", id))
}

// Query returns the first element in document order matching m, or nil.
func (d *Document) Query(m Matcher) *Element {
	return d.wrap(findFirst(d.root, d, m))
}

// QueryAll returns every element in document order matching m.
func (d *Document) QueryAll(m Matcher) []*Element {
	var out []*Element
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if el := d.wrap(n); m(el) {
			out = append(out, el)
		}
	})
	return out
}

// Body returns the body element.
func (d *Document) Body() *Element {
	return d.Query(ByTag("body"))
}

// Head returns the head element.
func (d *Document) Head() *Element {
	return d.Query(ByTag("head"))
}

// CreateElement creates a detached element. Attach it with AppendChild.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// AddEventListener registers l for events of kind dispatched at target.
// A nil target registers a document-level listener.
func (d *Document) AddEventListener(target *Element, kind EventKind, l Listener) {
	if l == nil {
		return
	}
	key := listenerKey{kind: kind}
	if target != nil {
		key.target = target.node
	}
	d.listeners[key] = append(d.listeners[key], l)
}

// Dispatch delivers ev to the listeners registered on target (or on the
// document when target is nil) in registration order. It reports whether the
// default action should proceed, i.e. no listener called PreventDefault.
func (d *Document) Dispatch(target *Element, ev *Event) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dispatch(target, ev)
}

func (d *Document) dispatch(target *Element, ev *Event) bool {
	ev.Target = target
	key := listenerKey{kind: ev.Kind}
	if target != nil {
		key.target = target.node
	}

	// Listeners added while dispatching see the next event, not this one.
	ls := append([]Listener(nil), d.listeners[key]...)
	for _, l := range ls {
		l(ev)
	}
	return !ev.DefaultPrevented()
}

// Do runs fn with the same exclusion as Dispatch. Timer callbacks use it so
// they never interleave with a running listener.
func (d *Document) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return errors.Join(ErrRender, err)
	}
	return nil
}

// HTML returns the rendered document.
func (d *Document) HTML() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Clone returns an independent copy of the markup. Listeners and file lists
// are not copied.
func (d *Document) Clone() (*Document, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return Parse(&buf)
}

func findFirst(n *html.Node, d *Document, m Matcher) *html.Node {
	if n.Type == html.ElementNode && m(d.wrap(n)) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, d, m); found != nil {
			return found
		}
	}
	return nil
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
