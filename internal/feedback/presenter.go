// Package feedback translates validation outcomes into visible error state.
//
// Presenter is the port the form validators write to. DOMPresenter applies it
// to a dom.Document; Patcher additionally streams the touched elements to a
// browser as datastar element patches.
package feedback

import (
	"github.com/auroraair/formkit/pkg/dom"
)

const (
	// ErrorClass marks an input whose value failed validation.
	ErrorClass = "error"
	// ShowClass makes an error label visible.
	ShowClass = "show"
	// ErrorSuffix is appended to a field id to find its error label.
	ErrorSuffix = "-error"
)

// Presenter shows and hides the error state of a field.
// Implementations must be idempotent and ignore unknown fields.
type Presenter interface {
	ShowError(field, message string)
	HideError(field string)
}

// ErrorID returns the id of the error label paired with field.
func ErrorID(field string) string {
	return field + ErrorSuffix
}

// ShowError marks input as errored and puts message in errorEl, making it
// visible. Either element may be nil.
func ShowError(input, errorEl *dom.Element, message string) {
	if input != nil {
		input.AddClass(ErrorClass)
	}
	if errorEl != nil {
		errorEl.SetText(message)
		errorEl.AddClass(ShowClass)
	}
}

// HideError clears the error marker of input and hides errorEl. The label
// keeps its last text. Either element may be nil.
func HideError(input, errorEl *dom.Element) {
	if input != nil {
		input.RemoveClass(ErrorClass)
	}
	if errorEl != nil {
		errorEl.RemoveClass(ShowClass)
	}
}

// DOMPresenter applies error state to a document by field id.
type DOMPresenter struct {
	doc *dom.Document
}

// NewDOMPresenter returns a Presenter bound to doc.
func NewDOMPresenter(doc *dom.Document) *DOMPresenter {
	return &DOMPresenter{doc: doc}
}

func (p *DOMPresenter) ShowError(field, message string) {
	ShowError(p.doc.ByID(field), p.doc.ByID(ErrorID(field)), message)
}

func (p *DOMPresenter) HideError(field string) {
	HideError(p.doc.ByID(field), p.doc.ByID(ErrorID(field)))
}
