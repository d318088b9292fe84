package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroraair/formkit/internal/web"
	"github.com/auroraair/formkit/pkg/validator"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		invalid bool
	}{
		{"valid email", []string{"check", "email", " Asha@Gmail.com "}, "valid\n", false},
		{"wrong domain", []string{"check", "email", "asha@yahoo.com"}, "Email must be in format: username@gmail.com\n", true},
		{"weak password", []string{"check", "password", "abcdefgh"}, "Password must contain at least one uppercase letter\n", true},
		{"mobile with separators", []string{"check", "mobile", "98765-43210"}, "valid\n", false},
		{"short name", []string{"check", "name", "A"}, "Name must be at least 2 characters\n", true},
		{"number prefix", []string{"check", "number", "12abc"}, "valid\n", false},
		{"localised", []string{"check", "--lang", "hi", "mobile", ""}, "मोबाइल नंबर आवश्यक है\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, tt.args...)
			assert.Equal(t, tt.want, out)
			if tt.invalid {
				assert.ErrorIs(t, err, errInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckUsage(t *testing.T) {
	t.Parallel()

	_, err := run(t, "check", "zipcode", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")

	_, err = run(t, "check", "email")
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	_, err := run(t, "check", "name", "A")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "name", verrs[0].Field)
	assert.Equal(t, "validation.name.min_length", verrs[0].TranslationKey)

	_, err = run(t, "check", "zipcode", "1")
	assert.Equal(t, 1, exitCode(err))

	_, err = run(t, "check", "name", "Asha")
	assert.Equal(t, 0, exitCode(err))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level, format string
		ok            bool
	}{
		{"", "", true},
		{"debug", "json", true},
		{"WARN", "text", true},
		{"loud", "", false},
		{"", "xml", false},
	}
	for _, tt := range tests {
		_, err := newLogger(web.Config{Env: "production", AppName: "formkit", LogLevel: tt.level, LogFormat: tt.format})
		if tt.ok {
			assert.NoError(t, err, "%q/%q", tt.level, tt.format)
		} else {
			assert.Error(t, err, "%q/%q", tt.level, tt.format)
		}
	}
}
