package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroraair/formkit/pkg/config"
)

type defaultsConfig struct {
	Name    string        `env:"FORMKIT_TEST_NAME" envDefault:"formkit"`
	Delay   time.Duration `env:"FORMKIT_TEST_DELAY" envDefault:"300ms"`
	Enabled bool          `env:"FORMKIT_TEST_ENABLED" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"FORMKIT_TEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"FORMKIT_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value string `env:"FORMKIT_TEST_FROM_FILE"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, defaultsConfig{Name: "formkit", Delay: 300 * time.Millisecond, Enabled: true}, cfg)
}

func TestLoad_Cached(t *testing.T) {
	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("FORMKIT_TEST_CACHED", "second")
	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Value)

	config.ResetCache()
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "second", again.Value)
}

func TestLoad_Errors(t *testing.T) {
	assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)

	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse[defaultsConfig](map[string]string{
		"FORMKIT_TEST_NAME":  "portal",
		"FORMKIT_TEST_DELAY": "5s",
	})
	require.NoError(t, err)
	assert.Equal(t, "portal", cfg.Name)
	assert.Equal(t, 5*time.Second, cfg.Delay)

	_, err = config.Parse[defaultsConfig](map[string]string{"FORMKIT_TEST_DELAY": "soon"})
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("FORMKIT_TEST_FROM_FILE=\"from file\"\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FORMKIT_TEST_FROM_FILE") })

	require.NoError(t, config.LoadEnv(path))
	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from file", cfg.Value)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing")), config.ErrLoadingEnv)
}
