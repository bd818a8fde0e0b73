package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()
	if cfg.Strategy != "smart_balance" {
		t.Errorf("Strategy = %q", cfg.Strategy)
	}
	if cfg.Limit != 3 {
		t.Errorf("Limit = %d", cfg.Limit)
	}
	if cfg.ListenAddr != "127.0.0.1:8460" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if !cfg.Color {
		t.Error("Color default should be true")
	}
	if cfg.Verbose {
		t.Error("Verbose default should be false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("strategy", "fastest_wins")
	viper.Set("weights", map[string]float64{"urgency": 0.8})
	viper.Set("limit", 10)

	cfg := Load()
	if cfg.Strategy != "fastest_wins" {
		t.Errorf("Strategy = %q", cfg.Strategy)
	}
	if cfg.Weights["urgency"] != 0.8 {
		t.Errorf("Weights = %v", cfg.Weights)
	}
	if cfg.Limit != 10 {
		t.Errorf("Limit = %d", cfg.Limit)
	}
}
