package web

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/auroraair/formkit/handler"
	"github.com/auroraair/formkit/internal/ui"
	"github.com/auroraair/formkit/pkg/binder"
	"github.com/auroraair/formkit/pkg/validator"
)

type uploadRequest struct {
	File *multipart.FileHeader `file:"file"`
}

// upload accepts one CSV file no larger than UploadMaxBytes.
func (s *Server) upload() http.HandlerFunc {
	return handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			r := ctx.Request()
			limit := s.cfg.UploadMaxBytes
			if limit > 0 {
				if r.ContentLength > limit {
					return s.rejectUpload(ctx, "too_large", http.StatusRequestEntityTooLarge)
				}
				r.Body = http.MaxBytesReader(ctx.ResponseWriter(), r.Body, limit)
			}

			var req uploadRequest
			if err := binder.Form(binder.DefaultMaxMemory)(r, &req); err != nil {
				var tooLarge *http.MaxBytesError
				switch {
				case errors.As(err, &tooLarge):
					return s.rejectUpload(ctx, "too_large", http.StatusRequestEntityTooLarge)
				case errors.Is(err, binder.ErrNotApplicable):
					return handler.Fail(handler.ErrUnsupportedMediaType)
				default:
					return handler.Fail(errors.Join(handler.ErrBadRequest, err))
				}
			}
			name := ""
			if req.File != nil {
				name = binder.SanitizeFilename(req.File.Filename)
			}
			if err := validator.Apply(uploadRules(req.File, name)...); err != nil {
				first := validator.ExtractValidationErrors(err)[0]
				return s.rejectUpload(ctx, strings.TrimPrefix(first.TranslationKey, "upload."), http.StatusUnprocessableEntity)
			}

			f, err := req.File.Open()
			if err != nil {
				return handler.Fail(err)
			}
			defer f.Close()

			if err := s.submitter.Upload(ctx, name, req.File.Size, f); err != nil {
				s.metrics.Uploads.WithLabelValues("error").Inc()
				return handler.Fail(err)
			}
			s.metrics.Uploads.WithLabelValues("accepted").Inc()
			s.log.InfoContext(ctx, "upload accepted", slog.String("file", name))
			return handler.Redirect(noticeURL("/upload", "uploaded"))
		},
		handler.WithErrorHandler[struct{}](s.errors),
		handler.WithDecorators(timed[struct{}](s.metrics, "upload")),
	)
}

// uploadRules checks the posted file: present, then named *.csv.
func uploadRules(fh *multipart.FileHeader, name string) []validator.Rule {
	return []validator.Rule{
		{
			Check: func() bool { return fh != nil },
			Error: validator.ValidationError{
				Field:          "file",
				Message:        "Please select a file",
				TranslationKey: "upload.missing",
			},
		},
		{
			Check: func() bool { return fh == nil || ui.IsCSV(name) },
			Error: validator.ValidationError{
				Field:          "file",
				Message:        "Please upload a CSV file",
				TranslationKey: "upload.not_csv",
			},
		},
	}
}

// rejectUpload re-renders the upload page with an error banner.
func (s *Server) rejectUpload(ctx handler.Context, reason string, status int) handler.Response {
	s.metrics.Uploads.WithLabelValues(reason).Inc()
	doc, err := s.pages.Open(PageUpload)
	if err != nil {
		return handler.Fail(err)
	}
	lang := ctx.Lang()
	setLang(doc, lang)
	showBanner(doc, s.tr.T(lang, "upload."+reason, reason), ui.Error)
	return handler.TemplStatus(status, Component(doc))
}
