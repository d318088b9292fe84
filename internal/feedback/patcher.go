package feedback

import (
	"slices"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/auroraair/formkit/pkg/dom"
)

// ElementPatcher sends element patches to a browser.
// *datastar.ServerSentEventGenerator satisfies it.
type ElementPatcher interface {
	PatchElements(elements string, opts ...datastar.PatchElementOption) error
}

// Patcher is a DOMPresenter that remembers which fields it touched so their
// inputs and error labels can be pushed to the browser in one patch.
type Patcher struct {
	doc     *dom.Document
	inner   *DOMPresenter
	touched []string
}

// NewPatcher returns a Patcher bound to doc.
func NewPatcher(doc *dom.Document) *Patcher {
	return &Patcher{doc: doc, inner: NewDOMPresenter(doc)}
}

func (p *Patcher) ShowError(field, message string) {
	p.inner.ShowError(field, message)
	p.touch(field)
}

func (p *Patcher) HideError(field string) {
	p.inner.HideError(field)
	p.touch(field)
}

func (p *Patcher) touch(field string) {
	if !slices.Contains(p.touched, field) {
		p.touched = append(p.touched, field)
	}
}

// Touched returns the fields changed since the last Flush.
func (p *Patcher) Touched() []string {
	return slices.Clone(p.touched)
}

// Flush renders the touched inputs and error labels and sends them as one
// patch. Elements are matched by id in the browser. Fields missing from the
// document are skipped; nothing is sent when no element remains.
func (p *Patcher) Flush(sink ElementPatcher) error {
	var b strings.Builder
	for _, field := range p.touched {
		for _, el := range []*dom.Element{p.doc.ByID(field), p.doc.ByID(ErrorID(field))} {
			if el != nil {
				b.WriteString(el.OuterHTML())
			}
		}
	}
	p.touched = p.touched[:0]

	if b.Len() == 0 {
		return nil
	}
	return sink.PatchElements(b.String())
}
