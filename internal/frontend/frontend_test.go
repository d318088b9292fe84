package frontend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroraair/formkit/internal/forms"
	"github.com/auroraair/formkit/internal/frontend"
	"github.com/auroraair/formkit/pkg/dom"
)

const registerPage = `<!DOCTYPE html><html><head></head><body>
<form id="registerForm" method="post">
	<input id="name" name="name"><span id="name-error" class="error-message"></span>
	<input id="email" name="email" type="email"><span id="email-error" class="error-message"></span>
	<input id="mobile" name="mobile"><span id="mobile-error" class="error-message"></span>
	<div class="password-wrapper">
		<input id="password" name="password" type="password">
		<button type="button" class="toggle-btn">👁️</button>
	</div>
	<span id="password-error" class="error-message"></span>
	<input id="confirm_password" name="confirm_password" type="password">
	<span id="confirm_password-error" class="error-message"></span>
</form>
</body></html>`

func load(t *testing.T, markup string, opts frontend.Options) (*dom.Document, *frontend.Page) {
	t.Helper()
	doc, err := dom.ParseString(markup)
	require.NoError(t, err)
	page := frontend.Init(doc, opts)
	require.False(t, page.Loaded())
	doc.Dispatch(nil, dom.NewEvent(dom.ContentLoaded))
	require.True(t, page.Loaded())
	return doc, page
}

func fill(doc *dom.Document, vals map[string]string) {
	doc.Do(func() {
		for id, v := range vals {
			doc.ByID(id).SetValue(v)
		}
	})
}

func TestRegisterPage(t *testing.T) {
	t.Parallel()

	var verdicts []bool
	doc, page := load(t, registerPage, frontend.Options{
		OnSubmit: func(form string, valid bool) {
			assert.Equal(t, forms.RegisterForm, form)
			verdicts = append(verdicts, valid)
		},
	})
	assert.Equal(t, []string{forms.RegisterForm}, page.Forms)
	assert.Equal(t, 1, page.Toggles)
	assert.Equal(t, 1, page.Mobiles)
	assert.False(t, page.Upload)

	form := doc.ByID("registerForm")
	assert.False(t, doc.Dispatch(form, dom.NewEvent(dom.Submit)), "empty form is blocked")
	assert.True(t, doc.ByID("name").HasClass("error"))
	assert.Equal(t, "Mobile number is required", doc.ByID("mobile-error").Text())

	fill(doc, map[string]string{
		"name": "Asha", "email": "Asha@Gmail.com", "mobile": "9876543210",
		"password": "Abc123!@", "confirm_password": "Abc123!@",
	})
	assert.True(t, doc.Dispatch(form, dom.NewEvent(dom.Submit)))
	for _, id := range []string{"name", "email", "mobile", "password", "confirm_password"} {
		assert.False(t, doc.ByID(id).HasClass("error"), id)
		assert.False(t, doc.ByID(id+"-error").HasClass("show"), id)
	}
	assert.Equal(t, "Mobile number is required", doc.ByID("mobile-error").Text(), "hidden labels keep their text")

	fill(doc, map[string]string{"confirm_password": "Abc123!#"})
	assert.False(t, doc.Dispatch(form, dom.NewEvent(dom.Submit)))
	assert.Equal(t, "Passwords do not match", doc.ByID("confirm_password-error").Text())

	assert.Equal(t, []bool{false, true, false}, verdicts)
}

func TestBlurChecks(t *testing.T) {
	t.Parallel()

	doc, _ := load(t, registerPage, frontend.Options{})

	fill(doc, map[string]string{"email": "someone@yahoo.com", "password": "abc"})
	doc.Dispatch(doc.ByID("email"), dom.NewEvent(dom.Blur))
	doc.Dispatch(doc.ByID("password"), dom.NewEvent(dom.Blur))
	doc.Dispatch(doc.ByID("confirm_password"), dom.NewEvent(dom.Blur))

	assert.Equal(t, "Email must be in format: username@gmail.com", doc.ByID("email-error").Text())
	assert.Equal(t, "Password must be at least 8 characters", doc.ByID("password-error").Text())
	assert.False(t, doc.ByID("confirm_password").HasClass("error"), "confirmation has no blur check")

	fill(doc, map[string]string{"email": "someone@gmail.com"})
	doc.Dispatch(doc.ByID("email"), dom.NewEvent(dom.Blur))
	assert.False(t, doc.ByID("email").HasClass("error"))
}

func TestMobileInput(t *testing.T) {
	t.Parallel()

	doc, _ := load(t, registerPage, frontend.Options{})
	mobile := doc.ByID("mobile")

	fill(doc, map[string]string{"mobile": "98-76x5"})
	doc.Dispatch(mobile, dom.NewEvent(dom.Input))
	assert.Equal(t, "98765", mobile.Value())

	doc.Dispatch(mobile, dom.NewEvent(dom.Blur))
	assert.Equal(t, "Mobile number must be exactly 10 digits", doc.ByID("mobile-error").Text())

	fill(doc, map[string]string{"mobile": "98765432101234"})
	doc.Dispatch(mobile, dom.NewEvent(dom.Input))
	doc.Dispatch(mobile, dom.NewEvent(dom.Blur))
	assert.Equal(t, "9876543210", mobile.Value())
	assert.False(t, mobile.HasClass("error"))
}

func TestPasswordToggle(t *testing.T) {
	t.Parallel()

	doc, _ := load(t, registerPage, frontend.Options{})
	doc.Dispatch(doc.Query(dom.ByClass("toggle-btn")), dom.NewEvent(dom.Click))
	assert.Equal(t, "text", doc.ByID("password").Type())
	assert.Equal(t, "password", doc.ByID("confirm_password").Type())
}

func TestLoginPage(t *testing.T) {
	t.Parallel()

	doc, page := load(t, `<form id="loginForm">
		<input id="email" name="email" type="email"><span id="email-error"></span>
		<input id="password" name="password" type="password"><span id="password-error"></span>
	</form>`, frontend.Options{})
	assert.Equal(t, []string{forms.LoginForm}, page.Forms)

	form := doc.ByID("loginForm")
	assert.False(t, doc.Dispatch(form, dom.NewEvent(dom.Submit)))
	assert.True(t, doc.ByID("password-error").HasClass("show"))

	fill(doc, map[string]string{"email": "a", "password": "b"})
	assert.True(t, doc.Dispatch(form, dom.NewEvent(dom.Submit)))
	assert.True(t, doc.ByID("password-error").HasClass("show"), "login does not clear errors")
}

func TestPredictPage(t *testing.T) {
	t.Parallel()

	markup := `<form id="predictForm">`
	for _, f := range forms.PredictionFields {
		markup += `<input id="` + f + `" name="` + f + `" value="1.5"><span id="` + f + `-error"></span>`
	}
	markup += `</form>`

	doc, _ := load(t, markup, frontend.Options{})
	form := doc.ByID("predictForm")
	assert.True(t, doc.Dispatch(form, dom.NewEvent(dom.Submit)))

	fill(doc, map[string]string{"pm10": "abc"})
	assert.False(t, doc.Dispatch(form, dom.NewEvent(dom.Submit)))
	for _, f := range forms.PredictionFields {
		assert.Equal(t, f == "pm10", doc.ByID(f).HasClass("error"), f)
	}
}

func TestUploadPage(t *testing.T) {
	t.Parallel()

	doc, page := load(t, `<div id="uploadZone"><span class="upload-text">Choose</span></div>
		<input type="file" id="csvFile">`, frontend.Options{})
	require.True(t, page.Upload)
	assert.Empty(t, page.Forms)

	doc.Dispatch(doc.ByID("uploadZone"), dom.NewDropEvent(dom.File{Name: "data.csv"}))
	assert.Equal(t, "Selected: data.csv", doc.Query(dom.ByClass("upload-text")).Text())
}

func TestInitBindsOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	doc, _ := load(t, registerPage, frontend.Options{OnSubmit: func(string, bool) { calls++ }})
	doc.Dispatch(nil, dom.NewEvent(dom.ContentLoaded))

	doc.Dispatch(doc.ByID("registerForm"), dom.NewEvent(dom.Submit))
	assert.Equal(t, 1, calls)
}
