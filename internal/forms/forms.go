// Package forms runs the field validators of each portal form and reports the
// outcome through a feedback.Presenter.
//
// Every check of a form runs, even after a failure, so the error state of each
// field always reflects its latest value. The form is valid only when all
// checks pass; on failure the submit event's default action is cancelled.
package forms

import (
	"github.com/auroraair/formkit/internal/feedback"
	"github.com/auroraair/formkit/pkg/validator"
)

// Form element ids.
const (
	RegisterForm = "registerForm"
	LoginForm    = "loginForm"
	PredictForm  = "predictForm"
)

// Field element ids.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldMobile          = "mobile"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// PredictionFields are the measurement inputs of the prediction form, in form order.
var PredictionFields = []string{"temperature", "humidity", "pm2_5", "pm10", "co", "no2", "so2", "o3"}

// FieldFunc validates one raw field value.
type FieldFunc func(value string) validator.Result

// Localizer renders the message of a failed Result.
type Localizer func(res validator.Result) string

// Observer is notified of every field check.
type Observer func(field string, res validator.Result)

// Option configures a Validator.
type Option func(*Validator)

// WithLocalizer renders failure messages through l instead of the built-in English text.
func WithLocalizer(l Localizer) Option {
	return func(v *Validator) {
		if l != nil {
			v.localize = l
		}
	}
}

// WithObserver registers a callback for every field check.
func WithObserver(o Observer) Option {
	return func(v *Validator) {
		if o != nil {
			v.observers = append(v.observers, o)
		}
	}
}

// Validator validates portal forms and presents the outcome.
type Validator struct {
	presenter feedback.Presenter
	localize  Localizer
	observers []Observer
}

// New returns a Validator writing error state to p.
func New(p feedback.Presenter, opts ...Option) *Validator {
	v := &Validator{
		presenter: p,
		localize:  func(res validator.Result) string { return res.Message },
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Check validates one field and shows or hides its error. It returns the
// field's validity.
func (v *Validator) Check(field string, fn FieldFunc, vals Values) bool {
	return v.apply(field, fn(vals.Value(field)))
}

func (v *Validator) apply(field string, res validator.Result) bool {
	for _, o := range v.observers {
		o(field, res)
	}
	if res.Valid {
		v.presenter.HideError(field)
		return true
	}
	v.presenter.ShowError(field, v.localize(res))
	return false
}

// showIfInvalid presents failures and leaves passing fields untouched.
func (v *Validator) showIfInvalid(field string, res validator.Result) bool {
	for _, o := range v.observers {
		o(field, res)
	}
	if res.Valid {
		return true
	}
	v.presenter.ShowError(field, v.localize(res))
	return false
}

// Email is the blur check of e-mail inputs.
func (v *Validator) Email(field string, vals Values) bool {
	return v.Check(field, validator.Email, vals)
}

// Password is the blur check of password inputs.
func (v *Validator) Password(field string, vals Values) bool {
	return v.Check(field, validator.Password, vals)
}

// Mobile is the blur check of mobile inputs.
func (v *Validator) Mobile(field string, vals Values) bool {
	return v.Check(field, validator.Mobile, vals)
}

// Name is the check of the name input.
func (v *Validator) Name(field string, vals Values) bool {
	return v.Check(field, validator.Name, vals)
}

// Registration validates name, e-mail, mobile and password, then the password
// confirmation. The confirmation is compared byte for byte and reported on the
// confirmation field regardless of the password's own verdict.
func (v *Validator) Registration(vals Values) bool {
	valid := true
	valid = v.Name(FieldName, vals) && valid
	valid = v.Email(FieldEmail, vals) && valid
	valid = v.Mobile(FieldMobile, vals) && valid
	valid = v.Password(FieldPassword, vals) && valid

	match := validator.PasswordsMatch(vals.Value(FieldPassword), vals.Value(FieldConfirmPassword))
	valid = v.apply(FieldConfirmPassword, match) && valid

	return valid
}

// Login only checks presence: a non-blank e-mail and a non-empty password.
// Passing fields keep whatever error state they had.
func (v *Validator) Login(vals Values) bool {
	valid := true

	email := validator.Evaluate(
		validator.RequiredString(FieldEmail, vals.Value(FieldEmail)).
			WithMessage("validation.email.required", "Email is required"),
	)
	valid = v.showIfInvalid(FieldEmail, email) && valid

	password := validator.Evaluate(
		validator.NotEmpty(FieldPassword, vals.Value(FieldPassword)).
			WithMessage("validation.password.required", "Password is required"),
	)
	valid = v.showIfInvalid(FieldPassword, password) && valid

	return valid
}

// Prediction checks that every measurement field holds a number.
func (v *Validator) Prediction(vals Values) bool {
	valid := true
	for _, field := range PredictionFields {
		valid = v.Check(field, validator.Numeric, vals) && valid
	}
	return valid
}

// Submit runs check and cancels ev when it fails. It returns the check's verdict.
func Submit(ev Canceler, vals Values, check func(Values) bool) bool {
	ok := check(vals)
	if !ok && ev != nil {
		ev.PreventDefault()
	}
	return ok
}
