// Package validator provides the field-level validation rules used by the
// portal forms: e-mail, password strength, mobile number, name and numeric
// measurements.
//
// The package is built around small Rule values that pair a boolean Check
// function with translation-friendly error metadata. Rules are evaluated in two
// ways:
//
//   - Apply runs every rule and aggregates all failures into ValidationErrors,
//     which satisfies the error interface. Use it for server-side checks that
//     report every problem at once.
//   - Evaluate runs rules in order and stops at the first failure, returning a
//     Result. This is what the form fields use: one message per field, the
//     first violated rule wins.
//
// # Field validators
//
// Email, Password, Mobile, Name and Number take a raw field value, apply the
// field's normalisation (trim, lowercase, digit stripping) and return a Result:
//
//	res := validator.Password("abc")
//	if !res.Valid {
//	    fmt.Println(res.Message) // Password must be at least 8 characters
//	}
//
// Each failing Result carries the TranslationKey of the rule that failed so the
// message can be rendered through a message catalog.
//
// # Concurrency
//
// The package holds no mutable state. All helpers are safe for concurrent use.
package validator
