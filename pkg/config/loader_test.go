package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/firetree/pkg/config"
)

type databaseConfig struct {
	URL     string        `env:"TEST_FIRETREE_URL"`
	Secret  string        `env:"TEST_FIRETREE_SECRET"`
	Timeout time.Duration `env:"TEST_FIRETREE_TIMEOUT" envDefault:"30s"`
}

type requiredConfig struct {
	URL string `env:"TEST_FIRETREE_REQUIRED_URL,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_FIRETREE_URL", "https://db.example.com")
	t.Setenv("TEST_FIRETREE_SECRET", "s3cret")
	config.ResetCache()

	var cfg databaseConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "https://db.example.com", cfg.URL)
	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, 30*time.Second, cfg.Timeout, "envDefault applies when unset")
}

func TestLoadCaching(t *testing.T) {
	t.Setenv("TEST_FIRETREE_URL", "https://first.example.com")
	config.ResetCache()

	var first databaseConfig
	require.NoError(t, config.Load(&first))

	// A later change to the environment must not leak into cached loads.
	t.Setenv("TEST_FIRETREE_URL", "https://second.example.com")

	var second databaseConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "https://first.example.com", second.URL)

	config.ResetCache()

	var third databaseConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "https://second.example.com", third.URL)
}

func TestLoadRequired(t *testing.T) {
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadNilPointer(t *testing.T) {
	t.Parallel()

	err := config.Load[databaseConfig](nil)
	require.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnvMissingFile(t *testing.T) {
	t.Parallel()

	err := config.LoadEnv("testdata/does-not-exist.env")
	require.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoadPanics(t *testing.T) {
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
