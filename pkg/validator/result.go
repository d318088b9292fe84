package validator

// Result is the outcome of validating one field value.
// A valid Result has an empty Message.
type Result struct {
	Valid             bool
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Passed returns a valid Result.
func Passed() Result {
	return Result{Valid: true}
}

// Failed converts a ValidationError into an invalid Result.
func Failed(err ValidationError) Result {
	return Result{
		Message:           err.Message,
		TranslationKey:    err.TranslationKey,
		TranslationValues: err.TranslationValues,
	}
}

// Evaluate runs rules in order; the first failing rule decides the Result.
func Evaluate(rules ...Rule) Result {
	if verr := First(rules...); verr != nil {
		return Failed(*verr)
	}
	return Passed()
}

// Err returns the Result as a ValidationError attributed to field,
// or nil when the Result is valid.
func (r Result) Err(field string) *ValidationError {
	if r.Valid {
		return nil
	}
	return &ValidationError{
		Field:             field,
		Message:           r.Message,
		TranslationKey:    r.TranslationKey,
		TranslationValues: r.TranslationValues,
	}
}
