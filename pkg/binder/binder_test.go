package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroraair/formkit/pkg/binder"
)

type loginForm struct {
	Email    string   `form:"email"`
	Password string   `form:"password"`
	Tags     []string `form:"tag"`
	Skipped  string   `form:"-"`
	internal string
}

type uploadForm struct {
	Note string                `form:"note"`
	File *multipart.FileHeader `file:"csvFile"`
}

func TestForm_URLEncoded(t *testing.T) {
	t.Parallel()

	body := url.Values{"email": {"a@gmail.com"}, "password": {" secret "}, "tag": {"x", "y"}, "-": {"no"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var got loginForm
	require.NoError(t, binder.Form(0)(req, &got))
	assert.Equal(t, "a@gmail.com", got.Email)
	assert.Equal(t, " secret ", got.Password, "values are not trimmed")
	assert.Equal(t, []string{"x", "y"}, got.Tags)
	assert.Empty(t, got.Skipped)
}

func TestForm_Multipart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "weekly"))
	fw, err := mw.CreateFormFile("csvFile", "../../etc/data.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("pm2_5,pm10\n12,20\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var got uploadForm
	require.NoError(t, binder.Form(1<<20)(req, &got))
	assert.Equal(t, "weekly", got.Note)
	require.NotNil(t, got.File)
	assert.Equal(t, "data.csv", got.File.Filename)
}

func TestForm_Errors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	assert.ErrorIs(t, binder.Form(0)(req, &loginForm{}), binder.ErrNotApplicable)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=a"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	var notPtr loginForm
	assert.ErrorIs(t, binder.Form(0)(req, notPtr), binder.ErrInvalidTarget)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
	req.Header.Set("Content-Type", "multipart/form-data")
	assert.ErrorIs(t, binder.Form(0)(req, &uploadForm{}), binder.ErrInvalidForm)

	type bad struct {
		Count int `form:"count"`
	}
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("count=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	assert.ErrorIs(t, binder.Form(0)(req, &bad{}), binder.ErrInvalidForm)
}

func TestSignals(t *testing.T) {
	t.Parallel()

	type signals struct {
		Email string `json:"email"`
	}

	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(`{"email":"x@gmail.com"}`))
	req.Header.Set("Content-Type", "application/json")
	var got signals
	require.NoError(t, binder.Signals()(req, &got))
	assert.Equal(t, "x@gmail.com", got.Email)

	req = httptest.NewRequest(http.MethodGet, "/validate?datastar="+url.QueryEscape(`{"email":"q@gmail.com"}`), nil)
	require.NoError(t, binder.Signals()(req, &got))
	assert.Equal(t, "q@gmail.com", got.Email)

	req = httptest.NewRequest(http.MethodGet, "/validate", nil)
	assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrNotApplicable)

	req = httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrInvalidSignals)
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"data.csv":             "data.csv",
		"../../etc/passwd":     "passwd",
		`C:\Users\me\data.csv`: "data.csv",
		"..":                   "unnamed",
		"":                     "unnamed",
		"a\x00b.csv":           "ab.csv",
	}
	for in, want := range tests {
		assert.Equal(t, want, binder.SanitizeFilename(in), in)
	}
}
