package ui

import (
	"github.com/auroraair/formkit/pkg/dom"
	"github.com/auroraair/formkit/pkg/validator"
)

// MobileInputs returns every input named mobile.
func MobileInputs(doc *dom.Document) []*dom.Element {
	return doc.QueryAll(dom.All(dom.ByTag("input"), dom.ByAttr("name", "mobile")))
}

// MobileMask strips non-digits from every mobile input on each input event
// and keeps at most validator.MobileLength digits. It returns the inputs bound.
func MobileMask(doc *dom.Document) []*dom.Element {
	inputs := MobileInputs(doc)
	for _, in := range inputs {
		doc.AddEventListener(in, dom.Input, func(*dom.Event) {
			in.SetValue(MaskMobile(in.Value()))
		})
	}
	return inputs
}

// MaskMobile keeps the first validator.MobileLength ASCII digits of s.
func MaskMobile(s string) string {
	digits := validator.DigitsOnly(s)
	if len(digits) > validator.MobileLength {
		digits = digits[:validator.MobileLength]
	}
	return digits
}
