package logger

import (
	"log/slog"
	"time"
)

// Error logs err under "error". A nil error yields an empty attribute, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Form is the id of the form being processed.
func Form(id string) slog.Attr {
	return slog.String("form", id)
}

// Field is the id of the field being validated.
func Field(id string) slog.Attr {
	return slog.String("field", id)
}

// Fields lists the fields that failed validation.
func Fields(ids []string) slog.Attr {
	return slog.Any("fields", ids)
}

func Lang(tag string) slog.Attr {
	return slog.String("lang", tag)
}

func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
