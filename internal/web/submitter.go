package web

import (
	"context"
	"io"
	"log/slog"

	"github.com/auroraair/formkit/internal/forms"
	"github.com/auroraair/formkit/pkg/logger"
)

// Submitter receives submissions that passed validation. Persistence,
// authentication and prediction live behind it.
type Submitter interface {
	Register(ctx context.Context, vals forms.Values) error
	Login(ctx context.Context, vals forms.Values) error
	Predict(ctx context.Context, vals forms.Values) error
	Upload(ctx context.Context, name string, size int64, content io.Reader) error
}

// LogSubmitter accepts every submission and logs it. Passwords are never logged.
type LogSubmitter struct {
	Log *slog.Logger
}

func (s LogSubmitter) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}

func (s LogSubmitter) Register(ctx context.Context, vals forms.Values) error {
	s.logger().InfoContext(ctx, "registration accepted",
		logger.Form(forms.RegisterForm),
		slog.String("email", vals.Value(forms.FieldEmail)),
	)
	return nil
}

func (s LogSubmitter) Login(ctx context.Context, vals forms.Values) error {
	s.logger().InfoContext(ctx, "login accepted",
		logger.Form(forms.LoginForm),
		slog.String("email", vals.Value(forms.FieldEmail)),
	)
	return nil
}

func (s LogSubmitter) Predict(ctx context.Context, vals forms.Values) error {
	attrs := make([]any, 0, len(forms.PredictionFields)+1)
	attrs = append(attrs, logger.Form(forms.PredictForm))
	for _, f := range forms.PredictionFields {
		attrs = append(attrs, slog.String(f, vals.Value(f)))
	}
	s.logger().InfoContext(ctx, "prediction request accepted", attrs...)
	return nil
}

func (s LogSubmitter) Upload(ctx context.Context, name string, size int64, content io.Reader) error {
	n, err := io.Copy(io.Discard, content)
	if err != nil {
		return err
	}
	s.logger().InfoContext(ctx, "upload accepted",
		slog.String("file", name),
		slog.Int64("size", size),
		slog.Int64("read", n),
	)
	return nil
}
