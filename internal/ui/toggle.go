package ui

import "github.com/auroraair/formkit/pkg/dom"

const (
	// ToggleClass marks password visibility buttons.
	ToggleClass = "toggle-btn"

	// IconRevealed is shown while the password is readable.
	IconRevealed = "🙈"
	// IconMasked is shown while the password is hidden.
	IconMasked = "👁️"
)

// PasswordToggle makes every .toggle-btn flip the first input of its parent
// between type=password and type=text. It returns the number of buttons bound.
func PasswordToggle(doc *dom.Document) int {
	buttons := doc.QueryAll(dom.ByClass(ToggleClass))
	for _, btn := range buttons {
		doc.AddEventListener(btn, dom.Click, func(*dom.Event) {
			TogglePassword(btn)
		})
	}
	return len(buttons)
}

// TogglePassword performs one toggle for btn. A button without a parent
// input is left alone.
func TogglePassword(btn *dom.Element) {
	parent := btn.Parent()
	if parent == nil {
		return
	}
	input := parent.Query(dom.ByTag("input"))
	if input == nil {
		return
	}
	if input.Type() == "password" {
		input.SetType("text")
		btn.SetText(IconRevealed)
		return
	}
	input.SetType("password")
	btn.SetText(IconMasked)
}
