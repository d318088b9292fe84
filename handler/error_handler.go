package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/auroraair/formkit/internal/ui"
	"github.com/auroraair/formkit/pkg/logger"
	"github.com/auroraair/formkit/pkg/requestid"
)

// ErrorPageParams is the data of a full error page.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is the data of an error banner.
type ErrorToastParams struct {
	Message   string
	Type      ui.Type
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the page for regular requests. Without it a plain
	// text error is written.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders the banner for datastar requests. Defaults to a
	// notification banner.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget is where banners are patched (default: "body").
	ToastTarget string

	// ToastMode is how banners are patched (default: PatchAppend).
	ToastMode datastar.ElementPatchMode

	// Translate turns an error key into a message in lang. Keys are shown as is without it.
	Translate func(lang, key string) string
}

type errorInfo struct {
	status   int
	message  string
	kind     ui.Type
	logLevel slog.Level
}

func classifyError(err error) errorInfo {
	info := errorInfo{
		status:  http.StatusInternalServerError,
		message: ErrInternalServerError.Key,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.status = httpErr.Code
		info.message = httpErr.Key
	}

	switch {
	case info.status >= http.StatusInternalServerError:
		info.kind, info.logLevel = ui.Error, slog.LevelError
	case info.status >= http.StatusBadRequest:
		info.kind, info.logLevel = ui.Warning, slog.LevelWarn
	default:
		info.kind, info.logLevel = ui.Info, slog.LevelInfo
	}
	return info
}

// DefaultErrorToast renders a notification banner.
func DefaultErrorToast(p ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, ui.NotificationHTML(ui.NewNotificationID(), p.Message, p.Type))
		return err
	})
}

// NewErrorHandler returns an ErrorHandler that renders an error page for
// regular requests and patches a banner into the page for datastar requests.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ErrorToast == nil {
		cfg.ErrorToast = DefaultErrorToast
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "body"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchAppend
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.logLevel, "request error",
			logger.RequestID(reqID),
			logger.Error(err),
			logger.Status(info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		message := info.message
		if cfg.Translate != nil {
			message = cfg.Translate(ctx.Lang(), info.message)
		}

		if IsDataStar(r) {
			toast := cfg.ErrorToast(ErrorToastParams{Message: message, Type: info.kind, RequestID: reqID})
			resp := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
			if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
				log.Error("failed to render error toast", logger.RequestID(reqID), logger.Error(rerr))
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(ctx.ResponseWriter(), message, info.status)
			return
		}
		page := cfg.ErrorPage(ErrorPageParams{
			Error:      message,
			StatusCode: info.status,
			RequestID:  reqID,
			RetryURL:   r.URL.Path,
		})
		if rerr := TemplStatus(info.status, page).Render(ctx.ResponseWriter(), r); rerr != nil {
			log.Error("failed to render error page", logger.RequestID(reqID), logger.Error(rerr))
		}
	}
}
