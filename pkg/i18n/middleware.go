package i18n

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const (
	// QueryParam switches the language for one request and remembers it.
	QueryParam = "lang"
	// CookieName stores the chosen language.
	CookieName = "lang"
)

type langKey struct{}

// WithLang stores lang in ctx.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// LangFromContext returns the request language, or "" when none was negotiated.
func LangFromContext(ctx context.Context) string {
	lang, _ := ctx.Value(langKey{}).(string)
	return lang
}

// Middleware negotiates the request language: a supported ?lang= value,
// which is also stored in a cookie, then the lang cookie, then
// Accept-Language, then the default.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), t.negotiate(w, r))))
		})
	}
}

func (t *Translator) negotiate(w http.ResponseWriter, r *http.Request) string {
	if q := r.URL.Query().Get(QueryParam); t.Supports(q) {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    q,
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return q
	}
	if c, err := r.Cookie(CookieName); err == nil && t.Supports(c.Value) {
		return c.Value
	}
	return t.Match(r.Header.Get("Accept-Language"))
}

// LoggerExtractor adds a lang attribute to records logged with a request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if lang := LangFromContext(ctx); lang != "" {
			return slog.String("lang", lang), true
		}
		return slog.Attr{}, false
	}
}
