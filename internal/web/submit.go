package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/auroraair/formkit/handler"
	"github.com/auroraair/formkit/internal/feedback"
	"github.com/auroraair/formkit/internal/forms"
	"github.com/auroraair/formkit/internal/frontend"
	"github.com/auroraair/formkit/internal/ui"
	"github.com/auroraair/formkit/pkg/binder"
	"github.com/auroraair/formkit/pkg/dom"
	"github.com/auroraair/formkit/pkg/i18n"
	"github.com/auroraair/formkit/pkg/logger"
	"github.com/auroraair/formkit/pkg/validator"
)

// formSpec ties a route to its page, form element and follow-up.
type formSpec struct {
	name   string
	page   string
	formID string
	fields []string
	// next and notice form the redirect after an accepted submission.
	next   string
	notice string
	accept func(Submitter, context.Context, forms.Values) error
}

var formSpecs = map[string]formSpec{
	"register": {
		name:   "register",
		page:   PageRegister,
		formID: forms.RegisterForm,
		fields: []string{forms.FieldName, forms.FieldEmail, forms.FieldMobile, forms.FieldPassword, forms.FieldConfirmPassword},
		next:   "/login",
		notice: "registered",
		accept: Submitter.Register,
	},
	"login": {
		name:   "login",
		page:   PageLogin,
		formID: forms.LoginForm,
		fields: []string{forms.FieldEmail, forms.FieldPassword},
		next:   "/predict",
		notice: "welcome",
		accept: Submitter.Login,
	},
	"predict": {
		name:   "predict",
		page:   PagePredict,
		formID: forms.PredictForm,
		fields: forms.PredictionFields,
		next:   "/predict",
		notice: "prediction_accepted",
		accept: Submitter.Predict,
	},
}

// notices maps flash keys accepted in ?notice= to their banner type.
var notices = map[string]ui.Type{
	"registered":          ui.Success,
	"welcome":             ui.Success,
	"prediction_accepted": ui.Success,
	"uploaded":            ui.Success,
}

// submission carries every portal field, from a form post or datastar signals.
type submission struct {
	Name            string `form:"name" json:"name"`
	Email           string `form:"email" json:"email"`
	Mobile          string `form:"mobile" json:"mobile"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
	Temperature     string `form:"temperature" json:"temperature"`
	Humidity        string `form:"humidity" json:"humidity"`
	PM25            string `form:"pm2_5" json:"pm2_5"`
	PM10            string `form:"pm10" json:"pm10"`
	CO              string `form:"co" json:"co"`
	NO2             string `form:"no2" json:"no2"`
	SO2             string `form:"so2" json:"so2"`
	O3              string `form:"o3" json:"o3"`
}

func (s submission) values() forms.Map {
	return forms.Map{
		forms.FieldName:            s.Name,
		forms.FieldEmail:           s.Email,
		forms.FieldMobile:          s.Mobile,
		forms.FieldPassword:        s.Password,
		forms.FieldConfirmPassword: s.ConfirmPassword,
		"temperature":              s.Temperature,
		"humidity":                 s.Humidity,
		"pm2_5":                    s.PM25,
		"pm10":                     s.PM10,
		"co":                       s.CO,
		"no2":                      s.NO2,
		"so2":                      s.SO2,
		"o3":                       s.O3,
	}
}

func submissionBinders() handler.WrapOption[submission] {
	return handler.WithBinders[submission](binder.Signals(), binder.Form(binder.DefaultMaxMemory))
}

// fill copies vals into the inputs of fields.
func fill(doc *dom.Document, fields []string, vals forms.Values) {
	for _, f := range fields {
		if in := doc.ByID(f); in != nil {
			in.SetValue(vals.Value(f))
		}
	}
}

// dropSecrets removes password values before a page goes back to the browser.
func dropSecrets(doc *dom.Document) {
	for _, in := range doc.QueryAll(dom.All(dom.ByTag("input"), dom.ByAttr("type", "password"))) {
		in.RemoveAttr("value")
	}
}

// Localizer resolves validator messages through tr in lang.
func Localizer(tr *i18n.Translator, lang string) forms.Localizer {
	return func(res validator.Result) string {
		args := make([]string, 0, 2*len(res.TranslationValues))
		for k, v := range res.TranslationValues {
			args = append(args, k, fmt.Sprint(v))
		}
		return tr.T(lang, res.TranslationKey, res.Message, args...)
	}
}

func (s *Server) localizer(lang string) forms.Localizer {
	return Localizer(s.tr, lang)
}

func (s *Server) formOptions(ctx context.Context, lang, form string) []forms.Option {
	return []forms.Option{
		forms.WithLocalizer(s.localizer(lang)),
		forms.WithObserver(func(field string, res validator.Result) {
			s.metrics.Validations.WithLabelValues(form, field, outcome(res.Valid)).Inc()
			if !res.Valid {
				s.log.DebugContext(ctx, "field rejected",
					logger.Form(form),
					logger.Field(field),
					slog.String("key", res.TranslationKey),
				)
			}
		}),
	}
}

// rejections records every failed check in errs, with its message localised
// for lang.
func (s *Server) rejections(lang string, errs *validator.ValidationErrors) forms.Option {
	localize := s.localizer(lang)
	return forms.WithObserver(func(field string, res validator.Result) {
		if verr := res.Err(field); verr != nil {
			verr.Message = localize(res)
			errs.Add(*verr)
		}
	})
}

// patchResponse streams the fields a Patcher touched.
type patchResponse struct {
	patcher *feedback.Patcher
}

func (p patchResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return p.patcher.Flush(datastar.NewSSE(w, r))
}

func noticeURL(path, notice string) string {
	return path + "?notice=" + url.QueryEscape(notice)
}

// page serves a portal page, with the flash banner named by ?notice=.
func (s *Server) page(name string) http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			doc, err := s.pages.Open(name)
			if err != nil {
				return handler.Fail(err)
			}
			lang := ctx.Lang()
			setLang(doc, lang)
			if key := ctx.Request().URL.Query().Get("notice"); key != "" {
				if t, ok := notices[key]; ok {
					showBanner(doc, s.tr.T(lang, "notice."+key, key), t)
				}
			}
			return handler.Templ(Component(doc))
		},
		handler.WithErrorHandler[struct{}](s.errors),
	)
}

// submit re-runs the page's submit handler on the posted values. Invalid
// forms come back with their errors; valid ones go to the Submitter and
// redirect with a notice.
func (s *Server) submit(spec formSpec) http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, req submission) handler.Response {
			doc, err := s.pages.Open(spec.page)
			if err != nil {
				return handler.Fail(err)
			}
			lang := ctx.Lang()
			setLang(doc, lang)
			vals := req.values()
			fill(doc, spec.fields, vals)

			patcher := feedback.NewPatcher(doc)
			valid := false
			var rejected validator.ValidationErrors
			opts := append(s.formOptions(ctx, lang, spec.name), s.rejections(lang, &rejected))
			frontend.Init(doc, frontend.Options{
				Presenter:   patcher,
				FormOptions: opts,
				OnSubmit:    func(_ string, ok bool) { valid = ok },
			})
			doc.Dispatch(nil, dom.NewEvent(dom.ContentLoaded))
			doc.Dispatch(doc.ByID(spec.formID), dom.NewEvent(dom.Submit))
			dropSecrets(doc)

			s.metrics.Submissions.WithLabelValues(spec.name, outcome(valid)).Inc()
			if !valid {
				s.log.DebugContext(ctx, "submission rejected",
					logger.Form(spec.formID),
					logger.Fields(rejected.Fields()),
					logger.Error(rejected),
				)
				if handler.IsDataStar(ctx.Request()) {
					return patchResponse{patcher: patcher}
				}
				return handler.TemplStatus(http.StatusUnprocessableEntity, Component(doc))
			}

			if err := spec.accept(s.submitter, ctx, vals); err != nil {
				return handler.Fail(err)
			}
			s.log.InfoContext(ctx, "submission accepted", logger.Form(spec.formID))
			return handler.Redirect(noticeURL(spec.next, spec.notice))
		},
		submissionBinders(),
		handler.WithErrorHandler[submission](s.errors),
		handler.WithDecorators(timed[submission](s.metrics, spec.name)),
	)
}

// fieldCheck is the check run when a field loses focus.
func fieldCheck(field string, vals forms.Values) forms.FieldFunc {
	switch field {
	case forms.FieldName:
		return validator.Name
	case forms.FieldEmail:
		return validator.Email
	case forms.FieldMobile:
		return validator.Mobile
	case forms.FieldPassword:
		return validator.Password
	case forms.FieldConfirmPassword:
		return func(confirmation string) validator.Result {
			return validator.PasswordsMatch(vals.Value(forms.FieldPassword), confirmation)
		}
	}
	if slices.Contains(forms.PredictionFields, field) {
		return validator.Numeric
	}
	return nil
}

// FieldResult is the JSON answer of the field endpoint for non-datastar clients.
type FieldResult struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// validateField checks one field of a form. Datastar clients get the input
// and its error label patched in place.
func (s *Server) validateField() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, req submission) handler.Response {
			spec, ok := formSpecs[chi.URLParam(ctx.Request(), "form")]
			field := chi.URLParam(ctx.Request(), "field")
			if !ok || !slices.Contains(spec.fields, field) {
				return handler.Fail(handler.ErrNotFound)
			}

			doc, err := s.pages.Open(spec.page)
			if err != nil {
				return handler.Fail(err)
			}
			vals := req.values()
			fill(doc, spec.fields, vals)

			lang := ctx.Lang()
			patcher := feedback.NewPatcher(doc)
			var rejected validator.ValidationErrors
			opts := append(s.formOptions(ctx, lang, spec.name), s.rejections(lang, &rejected))
			forms.New(patcher, opts...).Check(field, fieldCheck(field, vals), vals)
			dropSecrets(doc)

			if handler.IsDataStar(ctx.Request()) {
				return patchResponse{patcher: patcher}
			}
			out := FieldResult{Field: field, Valid: !rejected.Has(field)}
			if msgs := rejected.Get(field); len(msgs) > 0 {
				out.Message = msgs[0]
			}
			return handler.JSON(http.StatusOK, out)
		},
		submissionBinders(),
		handler.WithErrorHandler[submission](s.errors),
		handler.WithDecorators(timed[submission](s.metrics, "validate_field")),
	)
}
