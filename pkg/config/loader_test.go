package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penguinmails/sessionkit/pkg/config"
)

type testConfig struct {
	Endpoint string        `env:"TEST_ENDPOINT" envDefault:"https://api.penguinmails.test"`
	Timeout  time.Duration `env:"TEST_TIMEOUT" envDefault:"5s"`
	Routes   []string      `env:"TEST_ROUTES" envDefault:"/a,/b" envSeparator:","`
	Required string        `env:"TEST_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_REQUIRED", "set")
	t.Setenv("TEST_TIMEOUT", "750ms")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "https://api.penguinmails.test", cfg.Endpoint)
	assert.Equal(t, 750*time.Millisecond, cfg.Timeout)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Routes)
	assert.Equal(t, "set", cfg.Required)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg testConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Parallel()

	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg)
	})
}
