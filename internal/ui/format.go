package ui

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/auroraair/formkit/pkg/validator"
)

// DefaultDecimals is the precision FormatNumber uses when decimals is negative.
const DefaultDecimals = 2

// FormatNumber parses the leading number of value and prints it with the
// given number of decimals. Values without a numeric prefix print as "NaN".
// Ties round away from zero on the exact binary value, zero is unsigned and
// magnitudes from 1e21 up print in shortest exponent form.
func FormatNumber(value string, decimals int) string {
	if decimals < 0 {
		decimals = DefaultDecimals
	}
	f, ok := validator.ParseNumber(value)
	if !ok {
		return "NaN"
	}
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return toFixed(f, decimals)
}

// fixedLimit is the magnitude from which fixed notation gives way to exponent form.
const fixedLimit = 1e21

func toFixed(x float64, decimals int) string {
	if math.Abs(x) >= fixedLimit {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	sign := ""
	if x < 0 {
		sign, x = "-", -x
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	r := new(big.Rat).SetFloat64(x)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	digits := new(big.Int).Quo(r.Num(), r.Denom()).String()

	if decimals == 0 {
		return sign + digits
	}
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	cut := len(digits) - decimals
	return sign + digits[:cut] + "." + digits[cut:]
}

// Confirmer asks the user to confirm an action.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(message string) bool

func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// ConfirmAction asks c to confirm message. A nil Confirmer declines.
func ConfirmAction(c Confirmer, message string) bool {
	if c == nil {
		return false
	}
	return c.Confirm(message)
}
