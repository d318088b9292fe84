package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/auroraair/formkit/internal/ui"
	"github.com/auroraair/formkit/pkg/dom"
	"github.com/auroraair/formkit/pkg/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed locales/*.yaml
var localeFS embed.FS

// Page names, matching the template file names.
const (
	PageRegister = "register"
	PageLogin    = "login"
	PagePredict  = "predict"
	PageUpload   = "upload"
	PageError    = "error"
)

var ErrUnknownPage = errors.New("unknown page")

// Pages holds the parsed page templates. Open hands out independent copies.
type Pages struct {
	docs map[string]*dom.Document
}

// LoadPages parses every *.html file under dir in fsys. The banner keyframes
// are added to each page head.
func LoadPages(fsys fs.FS, dir string) (*Pages, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	p := &Pages{docs: make(map[string]*dom.Document)}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".html" {
			continue
		}
		f, err := fsys.Open(path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		doc, err := dom.Parse(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		ui.InjectKeyframes(doc)
		p.docs[strings.TrimSuffix(e.Name(), ".html")] = doc
	}
	return p, nil
}

// Open returns a fresh copy of the named page.
func (p *Pages) Open(name string) (*dom.Document, error) {
	base, ok := p.docs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}
	return base.Clone()
}

// Component renders doc as a templ component.
func Component(doc *dom.Document) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return doc.Render(w)
	})
}

// setLang marks the page language on the html element.
func setLang(doc *dom.Document, lang string) {
	if root := doc.Query(dom.ByTag("html")); root != nil && lang != "" {
		root.SetAttr("lang", lang)
	}
}

// showBanner appends a notification banner to the page body.
func showBanner(doc *dom.Document, message string, t ui.Type) {
	if body := doc.Body(); body != nil {
		body.AppendChild(ui.NewNotification(doc, ui.NewNotificationID(), message, t))
	}
}

func setText(doc *dom.Document, id, text string) {
	if el := doc.ByID(id); el != nil {
		el.SetText(text)
	}
}

// NewTranslator returns a translator over the embedded message catalogs.
func NewTranslator(defaultLang string) (*i18n.Translator, error) {
	cat, err := i18n.LoadFS(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}
	tr, err := i18n.NewTranslator(cat, defaultLang)
	if err != nil {
		return nil, fmt.Errorf("translator: %w", err)
	}
	return tr, nil
}
