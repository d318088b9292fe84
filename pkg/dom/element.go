package dom

import (
	"bytes"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Element is an element node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// Tag returns the lowercase tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// ID returns the id attribute.
func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// Attr returns the value of an attribute and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute.
func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute if present.
func (e *Element) RemoveAttr(key string) {
	e.node.Attr = slices.DeleteFunc(e.node.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == key
	})
}

// Value returns the current value of an input.
func (e *Element) Value() string {
	v, _ := e.Attr("value")
	return v
}

// SetValue replaces the value of an input.
func (e *Element) SetValue(v string) {
	e.SetAttr("value", v)
}

// Name returns the name attribute.
func (e *Element) Name() string {
	v, _ := e.Attr("name")
	return v
}

// Type returns the type attribute of an input.
func (e *Element) Type() string {
	v, _ := e.Attr("type")
	return v
}

// SetType changes the type attribute of an input.
func (e *Element) SetType(t string) {
	e.SetAttr("type", t)
}

// Classes returns the class list in attribute order.
func (e *Element) Classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.Classes(), name)
}

// AddClass appends name to the class list unless it is already present.
func (e *Element) AddClass(name string) {
	classes := e.Classes()
	if slices.Contains(classes, name) {
		return
	}
	e.SetAttr("class", strings.Join(append(classes, name), " "))
}

// RemoveClass removes name from the class list. The class attribute is
// dropped when the list becomes empty.
func (e *Element) RemoveClass(name string) {
	classes := e.Classes()
	if !slices.Contains(classes, name) {
		return
	}
	classes = slices.DeleteFunc(classes, func(c string) bool { return c == name })
	if len(classes) == 0 {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(classes, " "))
}

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
	})
	return b.String()
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(s string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	if s != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

// Style returns the inline style attribute.
func (e *Element) Style() string {
	v, _ := e.Attr("style")
	return v
}

// SetStyle replaces the inline style attribute.
func (e *Element) SetStyle(css string) {
	e.SetAttr("style", css)
}

// Parent returns the parent element, or nil for detached or top-level nodes.
func (e *Element) Parent() *Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.doc.wrap(p)
}

// Query returns the first descendant matching m, or nil.
func (e *Element) Query(m Matcher) *Element {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, e.doc, m); found != nil {
			return e.doc.wrap(found)
		}
	}
	return nil
}

// AppendChild moves child to the end of e's children.
func (e *Element) AppendChild(child *Element) {
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
}

// Remove detaches the element from its parent. Removing a detached element is a no-op.
func (e *Element) Remove() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

// IsConnected reports whether the element is attached to its document.
func (e *Element) IsConnected() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

// Files returns the files assigned to a file input.
func (e *Element) Files() []File {
	return slices.Clone(e.doc.files[e.node])
}

// SetFiles replaces the files assigned to a file input.
func (e *Element) SetFiles(files []File) {
	if len(files) == 0 {
		delete(e.doc.files, e.node)
		return
	}
	e.doc.files[e.node] = slices.Clone(files)
}

// Click dispatches a click event at the element, as a script calling
// element.click() would. Like other element methods it expects to run inside
// a listener or Document.Do.
func (e *Element) Click() bool {
	return e.doc.dispatch(e, NewEvent(Click))
}

// OuterHTML renders the element and its subtree.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return ""
	}
	return buf.String()
}

// Node exposes the underlying parse tree node.
func (e *Element) Node() *html.Node {
	return e.node
}
