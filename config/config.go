package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Configuration holds the process level options of the didomi-consent command.
type Configuration struct {
	// Settings are the defaults merged under any per-call settings given on the command line.
	Settings map[string]string `mapstructure:"settings"`
	Metrics  Metrics           `mapstructure:"metrics"`
}

type Metrics struct {
	Prometheus PrometheusMetrics `mapstructure:"prometheus"`
	GoMetrics  GoMetrics         `mapstructure:"go_metrics"`
}

type PrometheusMetrics struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

// GoMetrics configures the rcrowley/go-metrics registry.
type GoMetrics struct {
	Enabled bool `mapstructure:"enabled"`
	// Prefix is prepended to every counter name.
	Prefix string `mapstructure:"prefix"`
}

// New uses viper to get our command configuration
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if c.Settings == nil {
		c.Settings = make(map[string]string)
	}
	return &c, nil
}

// SetupViper sets up viper defaults, the optional config file and the DIDOMI_ environment
// prefix. An empty filename skips the config file lookup.
func SetupViper(v *viper.Viper, filename string) error {
	if filename != "" {
		v.SetConfigName(filename)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/config")
	}

	v.SetDefault("settings.cookie_name", DefaultCookieName)
	v.SetDefault("metrics.prometheus.enabled", false)
	v.SetDefault("metrics.prometheus.namespace", "")
	v.SetDefault("metrics.prometheus.subsystem", "")
	v.SetDefault("metrics.go_metrics.enabled", false)
	v.SetDefault("metrics.go_metrics.prefix", "didomi.")

	v.SetEnvPrefix("DIDOMI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filename == "" {
		return nil
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}
