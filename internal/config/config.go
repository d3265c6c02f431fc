// Package config holds the window and panel geometry constants and the
// runtime configuration parsed from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Panel geometry
	PanelMargin    = 20
	PanelGap       = 10
	MetricCardY    = 40
	MetricCardH    = 64
	ChartY         = 120
	ChartH         = 380
	BottomPanelY   = 516
	BottomPanelH   = 184
	TunnelChartY   = 80
	TunnelChartH   = 560
	ChartGridLines = 5

	// Visualization parameters
	ColorShiftSpeed = 0.01
)

// Config is the runtime configuration. Values come from the environment,
// with defaults matching the original fixed constants.
type Config struct {
	MaxRange        int           `env:"QVIZ_MAX_RANGE" envDefault:"1000"`
	TunnelSteps     int           `env:"QVIZ_TUNNEL_STEPS" envDefault:"100"`
	RefreshInterval time.Duration `env:"QVIZ_REFRESH_INTERVAL" envDefault:"5s"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxRange < 1 {
		return Config{}, fmt.Errorf("max range must be positive, got %d", cfg.MaxRange)
	}
	if cfg.TunnelSteps < 1 {
		return Config{}, fmt.Errorf("tunnel steps must be positive, got %d", cfg.TunnelSteps)
	}
	if cfg.RefreshInterval <= 0 {
		return Config{}, fmt.Errorf("refresh interval must be positive, got %s", cfg.RefreshInterval)
	}
	return cfg, nil
}
