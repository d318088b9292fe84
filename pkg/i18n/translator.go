package i18n

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Translator looks up messages in a Catalog.
type Translator struct {
	catalog  Catalog
	fallback string
	langs    []string
	matcher  language.Matcher
}

// NewTranslator builds a Translator whose default language is fallback.
func NewTranslator(cat Catalog, fallback string) (*Translator, error) {
	if len(cat) == 0 {
		return nil, ErrNoMessages
	}
	if _, ok := cat[fallback]; !ok {
		return nil, ErrUnknownLang
	}

	// The default language goes first so the matcher falls back to it.
	langs := []string{fallback}
	for lang := range cat {
		if lang != fallback {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs[1:])

	tags := make([]language.Tag, len(langs))
	for i, l := range langs {
		tags[i] = language.Make(l)
	}
	return &Translator{
		catalog:  cat,
		fallback: fallback,
		langs:    langs,
		matcher:  language.NewMatcher(tags),
	}, nil
}

// Languages returns the supported languages, default first.
func (t *Translator) Languages() []string {
	return slices.Clone(t.langs)
}

// Default returns the default language.
func (t *Translator) Default() string {
	return t.fallback
}

// Supports reports whether lang has a catalog.
func (t *Translator) Supports(lang string) bool {
	_, ok := t.catalog[lang]
	return ok
}

// Match picks the supported language closest to the preferences, which may
// be plain tags or Accept-Language values. Without a usable preference it
// returns the default language.
func (t *Translator) Match(prefs ...string) string {
	var tags []language.Tag
	for _, p := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.fallback
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.fallback
	}
	return t.langs[idx]
}

// T returns the message for key in lang, then in the default language, then
// fallback. args are name/value pairs substituted for %{name} placeholders.
func (t *Translator) T(lang, key, fallback string, args ...string) string {
	msg, ok := t.catalog[lang][key]
	if !ok {
		msg, ok = t.catalog[t.fallback][key]
	}
	if !ok {
		msg = fallback
	}
	return interpolate(msg, args)
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

func interpolate(msg string, args []string) string {
	if len(args) < 2 || !strings.Contains(msg, "%{") {
		return msg
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(msg, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}
