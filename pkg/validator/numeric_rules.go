package validator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefixRegex matches the longest leading decimal literal, the way a
// browser's parseFloat reads a field value.
var numberPrefixRegex = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

// ParseNumber reads the leading decimal literal of s, ignoring leading
// whitespace and any trailing characters. It reports false when s does not
// start with a number ("abc", "", ".", "-").
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, IsSpace)
	lit := numberPrefixRegex.FindString(s)
	if lit == "" {
		return math.NaN(), false
	}

	switch strings.TrimLeft(lit, "+-") {
	case "Infinity":
		if strings.HasPrefix(lit, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// Out-of-range exponents still parse to ±Inf or 0, which is a number.
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return math.NaN(), false
	}
	return f, true
}

// Number validates that the value starts with a decimal literal.
func Number(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseNumber(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid number",
			TranslationKey: "validation.number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
