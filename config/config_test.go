package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullConfig = []byte(`
settings:
  cookie_name: edgee_cookie
metrics:
  prometheus:
    enabled: true
    namespace: edgee
    subsystem: consent
  go_metrics:
    enabled: true
    prefix: "edge."
`)

func TestFullConfig(t *testing.T) {
	v := viper.New()
	require.NoError(t, SetupViper(v, ""))
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(fullConfig)))

	cfg, err := New(v)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"cookie_name": "edgee_cookie"}, cfg.Settings)
	assert.Equal(t, "edgee", cfg.Metrics.Prometheus.Namespace)
	assert.Equal(t, "consent", cfg.Metrics.Prometheus.Subsystem)
	assert.True(t, cfg.Metrics.Prometheus.Enabled)
	assert.True(t, cfg.Metrics.GoMetrics.Enabled)
	assert.Equal(t, "edge.", cfg.Metrics.GoMetrics.Prefix)
}

func TestDefaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, SetupViper(v, ""))

	cfg, err := New(v)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"cookie_name": DefaultCookieName}, cfg.Settings)
	assert.Empty(t, cfg.Metrics.Prometheus.Namespace)
	assert.Empty(t, cfg.Metrics.Prometheus.Subsystem)
	assert.False(t, cfg.Metrics.Prometheus.Enabled)
	assert.False(t, cfg.Metrics.GoMetrics.Enabled)
	assert.Equal(t, "didomi.", cfg.Metrics.GoMetrics.Prefix)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DIDOMI_SETTINGS_COOKIE_NAME", "env_cookie")
	t.Setenv("DIDOMI_METRICS_PROMETHEUS_NAMESPACE", "env_ns")

	v := viper.New()
	require.NoError(t, SetupViper(v, ""))

	cfg, err := New(v)
	require.NoError(t, err)

	assert.Equal(t, "env_cookie", cfg.Settings["cookie_name"])
	assert.Equal(t, "env_ns", cfg.Metrics.Prometheus.Namespace)
}

func TestMissingConfigFileIsNotAnError(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	v := viper.New()
	assert.NoError(t, SetupViper(v, "didomi-consent-does-not-exist"))
}
