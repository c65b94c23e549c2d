package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BACKEND", "STRIPE_SECRET_KEY", "STRIPE_API_VERSION", "PORT",
		"STRIPE_TIMEOUT_SECONDS", "STRIPE_MAX_RETRIES",
	} {
		t.Setenv(k, "")
	}
}

func Test_LoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendSimulated, cfg.Backend)
	assert.Equal(t, DefaultAPIVersion, cfg.APIVersion)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.EqualValues(t, DefaultMaxNetworkRetries, cfg.MaxNetworkRetries)
	assert.False(t, cfg.Livemode())
}

func Test_LoadConfig_LiveRequiresKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("BACKEND", BackendLive)

	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("STRIPE_SECRET_KEY", "sk_live_abc")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Livemode())
}

func Test_LoadConfig_RejectsUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("BACKEND", "hybrid")

	_, err := LoadConfig()
	require.Error(t, err)
}

func Test_LoadConfig_DoesNotPanic(t *testing.T) {
	clearEnv(t)
	assert.NotPanics(t, func() {
		_, err := LoadConfig()
		assert.NoError(t, err)
	})

	t.Setenv("STRIPE_TIMEOUT_SECONDS", "15")
	t.Setenv("STRIPE_MAX_RETRIES", "2")
	assert.NotPanics(t, func() {
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 15, cfg.TimeoutSeconds)
	})
}

func Test_LoadConfig_NumericOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STRIPE_TIMEOUT_SECONDS", "15")
	t.Setenv("STRIPE_MAX_RETRIES", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.TimeoutSeconds)
	assert.EqualValues(t, 0, cfg.MaxNetworkRetries)

	t.Setenv("STRIPE_TIMEOUT_SECONDS", "soon")
	_, err = LoadConfig()
	require.Error(t, err)
}

func Test_Redacted_HidesSecret(t *testing.T) {
	cfg := &Config{Backend: BackendLive, StripeSecretKey: "sk_test_xyz", APIVersion: DefaultAPIVersion}
	view := cfg.Redacted()
	assert.Equal(t, "***REDACTED***", view["stripe_secret_key"])
	assert.NotContains(t, view["stripe_secret_key"], "xyz")
}
