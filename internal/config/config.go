// Package config loads service configuration. Runtime settings come from
// environment variables; presentation defaults and input limits come from
// an embedded YAML file, optionally overridden by a file named in
// WGTCALC_CONFIG.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all service settings.
type Config struct {
	HTTPAddr        string        `yaml:"-"`
	LogLevel        string        `yaml:"-"`
	LogFormat       string        `yaml:"-"`
	ShutdownTimeout time.Duration `yaml:"-"`

	Form    FormDefaults    `yaml:"form"`
	Limits  InputLimits     `yaml:"limits"`
	Diagram DiagramGeometry `yaml:"diagram"`
}

// FormDefaults seeds the calculator form a UI client presents.
type FormDefaults struct {
	Distance  float64 `yaml:"distance" json:"distance"`
	Wind      float64 `yaml:"wind" json:"wind"`
	Angle     float64 `yaml:"angle" json:"angle"`
	Direction string  `yaml:"direction" json:"direction"`
}

// InputLimits are the UI-enforced input ranges. Distance and wind are
// bounded below by zero; angle runs [0, AngleMax].
type InputLimits struct {
	WindMax  float64 `yaml:"wind_max" json:"windMax"`
	AngleMax float64 `yaml:"angle_max" json:"angleMax"`
}

// DiagramGeometry sizes the SVG angle diagram.
type DiagramGeometry struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
}

// Load reads configuration, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w", err)
	}

	if path := os.Getenv("WGTCALC_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cfg.HTTPAddr = envOrDefault("HTTP_ADDR", ":8080")
	cfg.LogLevel = envOrDefault("LOG_LEVEL", "info")
	cfg.LogFormat = envOrDefault("LOG_FORMAT", "json")
	cfg.ShutdownTimeout = shutdownTimeout

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR is required")
	}
	if c.Limits.WindMax <= 0 {
		return errors.New("limits.wind_max must be positive")
	}
	if c.Limits.AngleMax <= 0 || c.Limits.AngleMax >= 360 {
		return errors.New("limits.angle_max must be in (0, 360)")
	}
	if c.Diagram.Width <= 0 || c.Diagram.Height <= 0 || c.Diagram.Radius <= 0 {
		return errors.New("diagram dimensions must be positive")
	}
	if c.Form.Wind < 0 || c.Form.Wind > c.Limits.WindMax {
		return errors.New("form.wind outside limits")
	}
	if c.Form.Distance < 0 {
		return errors.New("form.distance must be non-negative")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}
