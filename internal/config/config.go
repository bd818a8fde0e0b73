package config

import "github.com/spf13/viper"

// Config holds runtime configuration for a triage session. Values are
// populated from .triage.yaml, TRIAGE_* env vars, and CLI flags.
type Config struct {
	Strategy      string             `mapstructure:"strategy"`
	Weights       map[string]float64 `mapstructure:"weights"`
	Limit         int                `mapstructure:"limit"`
	ListenAddr    string             `mapstructure:"listen_addr"`
	TelemetryPath string             `mapstructure:"telemetry_path"`
	Color         bool               `mapstructure:"color"`
	Verbose       bool               `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("strategy", "smart_balance")
	viper.SetDefault("weights", map[string]float64{})
	viper.SetDefault("limit", 3)
	viper.SetDefault("listen_addr", "127.0.0.1:8460")
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("color", true)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
