package forms

import "github.com/auroraair/formkit/pkg/dom"

// Values is the view-model a form validator reads field values from.
// A missing field reads as the empty string.
type Values interface {
	Value(field string) string
}

// Map is a Values backed by a plain map.
type Map map[string]string

func (m Map) Value(field string) string {
	return m[field]
}

// DocumentValues reads current input values from a document by element id.
type DocumentValues struct {
	doc *dom.Document
}

// FromDocument returns Values reading the inputs of doc.
func FromDocument(doc *dom.Document) DocumentValues {
	return DocumentValues{doc: doc}
}

func (d DocumentValues) Value(field string) string {
	if el := d.doc.ByID(field); el != nil {
		return el.Value()
	}
	return ""
}

// Canceler is the part of a submit event a form validator needs.
// *dom.Event satisfies it.
type Canceler interface {
	PreventDefault()
}
