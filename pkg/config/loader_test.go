package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit/pkg/config"
)

type testConfig struct {
	Dir     string   `env:"TEST_MSGKIT_DIR" envDefault:"locales"`
	Locales []string `env:"TEST_MSGKIT_LOCALES" envDefault:"en"`
	Debug   bool     `env:"TEST_MSGKIT_DEBUG" envDefault:"false"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_MSGKIT_DIR", "/srv/locales")
	t.Setenv("TEST_MSGKIT_LOCALES", "uk,en")
	t.Setenv("TEST_MSGKIT_DEBUG", "true")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "/srv/locales", cfg.Dir)
	assert.Equal(t, []string{"uk", "en"}, cfg.Locales)
	assert.True(t, cfg.Debug)
}

func TestLoadDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "locales", cfg.Dir)
	assert.Equal(t, []string{"en"}, cfg.Locales)
	assert.False(t, cfg.Debug)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("TEST_MSGKIT_DEBUG", "not-a-bool")

	var cfg testConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadWithFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TEST_MSGKIT_DIR=/from/file\n"), 0o644))

	var cfg testConfig
	require.NoError(t, config.LoadWithFiles(&cfg, envFile))
	assert.Equal(t, "/from/file", cfg.Dir)

	var missing testConfig
	err := config.LoadWithFiles(&missing, filepath.Join(dir, "absent.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFiles)
}

func TestMustLoadPanics(t *testing.T) {
	t.Setenv("TEST_MSGKIT_DEBUG", "not-a-bool")

	var cfg testConfig
	assert.Panics(t, func() {
		config.MustLoad(&cfg)
	})
}
