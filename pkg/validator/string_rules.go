package validator

import (
	"fmt"
	"unicode/utf16"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotEmpty validates that a string has at least one character. Unlike
// RequiredString, whitespace counts as content.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLenString counts length in UTF-16 code units, the unit browsers use for
// input values, so server and page agree on where the limit falls.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return TextLength(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func LenString(field, value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return TextLength(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d characters long", exact),
			TranslationKey: "validation.exact_length",
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}

// EqualString validates byte equality of two values. No normalisation is applied.
func EqualString(field, value, other string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "values do not match",
			TranslationKey: "validation.equal",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// TextLength returns the length of s in UTF-16 code units.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// WithMessage returns a copy of the rule reporting the given translation key
// and message instead of the generic ones.
func (r Rule) WithMessage(key, message string) Rule {
	r.Error.TranslationKey = key
	r.Error.Message = message
	return r
}
