package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroraair/formkit/pkg/environment"
	"github.com/auroraair/formkit/pkg/logger"
	"github.com/auroraair/formkit/pkg/requestid"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Info("hello", logger.Form("loginForm"))

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "loginForm", entry["form"])
	})

	t.Run("level filter", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Zero(t, buf.Len())
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText)).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithEnvironment(environment.Production, "formkit"), logger.WithOutput(buf))
	log.Debug("hidden")
	log.Info("shown")

	entry := decode(t, buf)
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "formkit", entry["service"])
	assert.Equal(t, "production", entry["env"])

	buf.Reset()
	dev := logger.New(logger.WithEnvironment(environment.Development, "formkit"), logger.WithOutput(buf))
	dev.Debug("visible")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

type langKey struct{}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(requestid.LoggerExtractor(), nil),
		logger.WithContextValue("lang", langKey{}),
	).With(logger.Component("test"))

	ctx := requestid.WithContext(context.Background(), "req-1")
	ctx = context.WithValue(ctx, langKey{}, "hi")
	log.InfoContext(ctx, "checked", logger.Error(errors.New("boom")), logger.Error(nil))

	entry := decode(t, buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "hi", entry["lang"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "boom", entry["error"])
}
