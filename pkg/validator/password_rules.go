package validator

import (
	"regexp"
)

// SpecialCharacters is the fixed set a password must draw at least one character from.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// PasswordMinLength is the minimum password length in UTF-16 code units.
const PasswordMinLength = 8

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// PasswordUppercase requires at least one ASCII uppercase letter.
func PasswordUppercase(field, value string) Rule {
	return ContainsPattern(field, value, uppercaseRegex, "an uppercase letter").
		WithMessage("validation.password.uppercase", "Password must contain at least one uppercase letter")
}

func PasswordLowercase(field, value string) Rule {
	return ContainsPattern(field, value, lowercaseRegex, "a lowercase letter").
		WithMessage("validation.password.lowercase", "Password must contain at least one lowercase letter")
}

func PasswordDigit(field, value string) Rule {
	return ContainsPattern(field, value, digitRegex, "a digit").
		WithMessage("validation.password.digit", "Password must contain at least one digit")
}

// PasswordSpecialChar requires one character of SpecialCharacters.
func PasswordSpecialChar(field, value string) Rule {
	r := ContainsPattern(field, value, specialCharRegex, "a special character").
		WithMessage("validation.password.special", "Password must contain at least one special character")
	r.Error.TranslationValues["allowed"] = SpecialCharacters
	return r
}

// PasswordRules returns the password policy in evaluation order:
// presence, length, uppercase, lowercase, digit, special character.
func PasswordRules(field, value string) []Rule {
	return []Rule{
		NotEmpty(field, value).
			WithMessage("validation.password.required", "Password is required"),
		MinLenString(field, value, PasswordMinLength).
			WithMessage("validation.password.min_length", "Password must be at least 8 characters"),
		PasswordUppercase(field, value),
		PasswordLowercase(field, value),
		PasswordDigit(field, value),
		PasswordSpecialChar(field, value),
	}
}
