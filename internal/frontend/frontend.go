// Package frontend installs the portal's page behaviour on a dom.Document.
//
// Init registers one DOMContentLoaded listener. When that event is
// dispatched the form submit handlers, blur checks, password toggles, mobile
// mask and upload zone are bound to whatever elements the page contains.
package frontend

import (
	"github.com/auroraair/formkit/internal/feedback"
	"github.com/auroraair/formkit/internal/forms"
	"github.com/auroraair/formkit/internal/ui"
	"github.com/auroraair/formkit/pkg/dom"
	"github.com/auroraair/formkit/pkg/validator"
)

// Options configures Init.
type Options struct {
	// Presenter receives error state. Defaults to a DOMPresenter on the document.
	Presenter feedback.Presenter
	// FormOptions are passed to forms.New.
	FormOptions []forms.Option
	// OnSubmit is called after each form check with the form id and verdict.
	OnSubmit func(form string, valid bool)
}

// Page holds what Init bound once the document has loaded.
type Page struct {
	Validator *forms.Validator
	Forms     []string
	Toggles   int
	Mobiles   int
	Upload    bool
	loaded    bool
}

// Loaded reports whether DOMContentLoaded has been handled.
func (p *Page) Loaded() bool {
	return p.loaded
}

// Init registers the DOMContentLoaded handler on doc and returns the Page it
// fills in. Dispatching DOMContentLoaded more than once binds only once.
func Init(doc *dom.Document, opts Options) *Page {
	presenter := opts.Presenter
	if presenter == nil {
		presenter = feedback.NewDOMPresenter(doc)
	}
	page := &Page{Validator: forms.New(presenter, opts.FormOptions...)}

	doc.AddEventListener(nil, dom.ContentLoaded, func(*dom.Event) {
		if page.loaded {
			return
		}
		page.loaded = true
		bindForms(doc, page, opts.OnSubmit)
		bindBlur(doc, page.Validator)
		page.Toggles = ui.PasswordToggle(doc)
		page.Mobiles = len(bindMobile(doc, page.Validator))
		page.Upload = ui.UploadZone(doc)
	})
	return page
}

func bindForms(doc *dom.Document, page *Page, onSubmit func(string, bool)) {
	v := page.Validator
	checks := []struct {
		id    string
		check func(forms.Values) bool
	}{
		{forms.RegisterForm, v.Registration},
		{forms.LoginForm, v.Login},
		{forms.PredictForm, v.Prediction},
	}

	vals := forms.FromDocument(doc)
	for _, c := range checks {
		form := doc.ByID(c.id)
		if form == nil {
			continue
		}
		page.Forms = append(page.Forms, c.id)
		doc.AddEventListener(form, dom.Submit, func(ev *dom.Event) {
			ok := forms.Submit(ev, vals, c.check)
			if onSubmit != nil {
				onSubmit(c.id, ok)
			}
		})
	}
}

// bindBlur attaches the e-mail and password checks to every matching input.
// Errors are shown by the input's own id.
func bindBlur(doc *dom.Document, v *forms.Validator) {
	onBlur(doc, doc.QueryAll(dom.All(dom.ByTag("input"), dom.ByAttr("type", "email"))), v, validator.Email)
	onBlur(doc, doc.QueryAll(dom.All(dom.ByTag("input"), dom.ByAttr("name", "password"))), v, validator.Password)
}

func bindMobile(doc *dom.Document, v *forms.Validator) []*dom.Element {
	inputs := ui.MobileMask(doc)
	onBlur(doc, inputs, v, validator.Mobile)
	return inputs
}

func onBlur(doc *dom.Document, inputs []*dom.Element, v *forms.Validator, fn forms.FieldFunc) {
	for _, in := range inputs {
		doc.AddEventListener(in, dom.Blur, func(*dom.Event) {
			v.Check(in.ID(), fn, inputValue{in})
		})
	}
}

// inputValue reads one element's value whatever field is asked for.
type inputValue struct {
	el *dom.Element
}

func (i inputValue) Value(string) string {
	return i.el.Value()
}
