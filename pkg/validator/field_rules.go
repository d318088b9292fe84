package validator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MobileLength is the number of digits a mobile number must have.
const MobileLength = 10

// NameMinLength is the minimum length of a display name.
const NameMinLength = 2

// IsSpace reports whether r is trimmed from field values: Unicode white
// space and the byte order mark, but not U+0085.
func IsSpace(r rune) bool {
	return r == '\ufeff' || (r != '\u0085' && unicode.IsSpace(r))
}

// TrimSpace removes leading and trailing IsSpace runes.
func TrimSpace(value string) string {
	return strings.TrimFunc(value, IsSpace)
}

// NormalizeEmail trims and lowercases an e-mail address with full Unicode
// case mapping, so "İ" lowers to "i" plus a combining dot.
func NormalizeEmail(value string) string {
	return cases.Lower(language.Und).String(TrimSpace(value))
}

// DigitsOnly strips every character that is not an ASCII digit.
func DigitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}

// EmailRules returns the e-mail rules for an already normalised value.
func EmailRules(field, value string) []Rule {
	return []Rule{
		NotEmpty(field, value).
			WithMessage("validation.email.required", "Email is required"),
		GmailAddress(field, value),
	}
}

// MobileRules returns the mobile rules for a value already reduced to digits.
func MobileRules(field, digits string) []Rule {
	return []Rule{
		NotEmpty(field, digits).
			WithMessage("validation.mobile.required", "Mobile number is required"),
		LenString(field, digits, MobileLength).
			WithMessage("validation.mobile.length", "Mobile number must be exactly 10 digits"),
	}
}

// NameRules returns the name rules for an already trimmed value.
func NameRules(field, value string) []Rule {
	return []Rule{
		NotEmpty(field, value).
			WithMessage("validation.name.required", "Name is required"),
		MinLenString(field, value, NameMinLength).
			WithMessage("validation.name.min_length", "Name must be at least 2 characters"),
	}
}

// NumberRules returns the rules of a numeric measurement field.
func NumberRules(field, value string) []Rule {
	return []Rule{
		RequiredString(field, value).
			WithMessage("validation.number.required", "This field is required"),
		Number(field, value).
			WithMessage("validation.number.invalid", "Must be a valid number"),
	}
}

// Email validates a raw e-mail field value.
func Email(value string) Result {
	return Evaluate(EmailRules("email", NormalizeEmail(value))...)
}

// Password validates a raw password field value. No normalisation is applied.
func Password(value string) Result {
	return Evaluate(PasswordRules("password", value)...)
}

// Mobile validates a raw mobile field value after stripping non-digits.
func Mobile(value string) Result {
	return Evaluate(MobileRules("mobile", DigitsOnly(value))...)
}

// Name validates a raw name field value after trimming.
func Name(value string) Result {
	return Evaluate(NameRules("name", TrimSpace(value))...)
}

// Numeric validates a raw measurement field value.
func Numeric(value string) Result {
	return Evaluate(NumberRules("value", value)...)
}

// PasswordsMatch is the cross-field confirmation check of the registration form.
func PasswordsMatch(password, confirmation string) Result {
	return Evaluate(
		EqualString("confirm_password", confirmation, password).
			WithMessage("validation.password.mismatch", "Passwords do not match"),
	)
}
