package dom

import "strings"

// Matcher selects elements in queries.
type Matcher func(*Element) bool

// ByTag matches elements with the given tag name.
func ByTag(tag string) Matcher {
	tag = strings.ToLower(tag)
	return func(e *Element) bool { return e.Tag() == tag }
}

// ByClass matches elements whose class list contains name.
func ByClass(name string) Matcher {
	return func(e *Element) bool { return e.HasClass(name) }
}

// ByAttr matches elements whose attribute key equals val.
func ByAttr(key, val string) Matcher {
	return func(e *Element) bool {
		v, ok := e.Attr(key)
		return ok && v == val
	}
}

// All matches elements satisfying every matcher.
func All(ms ...Matcher) Matcher {
	return func(e *Element) bool {
		for _, m := range ms {
			if !m(e) {
				return false
			}
		}
		return true
	}
}
