// Package i18n resolves message keys to localized text.
//
// Catalogs are YAML documents keyed by language, with nested maps flattened
// to dotted keys:
//
//	en:
//	  validation:
//	    email:
//	      required: Email is required
//
// A Translator negotiates the best supported language for a request with
// golang.org/x/text/language and falls back to the default language, then to
// the caller's fallback text. Placeholders are written %{name} and filled
// from key/value pairs:
//
//	tr.T("hi", "validation.min_length", "too short", "min", "2")
//
// Middleware picks the language from ?lang=, the lang cookie or the
// Accept-Language header, in that order, and stores it in the request
// context for LangFromContext.
package i18n
