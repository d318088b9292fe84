package validator

import (
	"fmt"
	"regexp"
)

// gmailRegex accepts only Gmail addresses with a conventional local part.
var gmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

// MatchesPattern validates value against a precompiled pattern.
// Empty values fail; pair it with a required rule for a dedicated message.
func MatchesPattern(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if TrimSpace(value) == "" {
				return false
			}
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     pattern.String(),
				"description": description,
			},
		},
	}
}

// ContainsPattern validates that a string contains at least one match of pattern.
func ContainsPattern(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain %s", description),
			TranslationKey: "validation.contains_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     pattern.String(),
				"description": description,
			},
		},
	}
}

// GmailAddress validates the username@gmail.com format. The value is expected
// to be normalised already (see NormalizeEmail).
func GmailAddress(field, value string) Rule {
	return MatchesPattern(field, value, gmailRegex, "gmail address").
		WithMessage("validation.email.format", "Email must be in format: username@gmail.com")
}
