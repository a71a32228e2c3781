package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStartDate   = "2025-01-01"
	DefaultDataset     = "jpl-approx"
	DefaultAssetsDir   = "assets"
	DefaultTickMs      = 50
	DefaultDetailMs    = 50
	DefaultSpeed       = 1.0
	DefaultFocus       = "ALL"
	DefaultTrailLength = 100
	DefaultTheme       = "space"
	DefaultLogFile     = "orrery.log"
	DefaultLogLevel    = "info"

	MinSpeed = 0.1
	MaxSpeed = 5.0
)

//go:embed schema.cue
var schemaSource string

type Config struct {
	StartDate   string  `yaml:"start_date"`
	Dataset     string  `yaml:"dataset"`
	Catalog     string  `yaml:"catalog,omitempty"`
	AssetsDir   string  `yaml:"assets_dir"`
	TickMs      int     `yaml:"tick_ms"`
	DetailMs    int     `yaml:"detail_ms"`
	Speed       float64 `yaml:"speed"`
	Focus       string  `yaml:"focus"`
	TrailLength int     `yaml:"trail_length"`
	Theme       string  `yaml:"theme,omitempty"`
	LogFile     string  `yaml:"log_file,omitempty"`
	LogLevel    string  `yaml:"log_level,omitempty"`
	MetricsAddr string  `yaml:"metrics_addr,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		StartDate:   DefaultStartDate,
		Dataset:     DefaultDataset,
		AssetsDir:   DefaultAssetsDir,
		TickMs:      DefaultTickMs,
		DetailMs:    DefaultDetailMs,
		Speed:       DefaultSpeed,
		Focus:       DefaultFocus,
		TrailLength: DefaultTrailLength,
		Theme:       DefaultTheme,
		LogFile:     DefaultLogFile,
		LogLevel:    DefaultLogLevel,
	}
}

// Load reads a YAML config, validates it against the embedded CUE schema and
// layers it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateCUE(path, data, schemaSource, "#Config"); err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks values that may have come from flags rather than a file.
func (c *Config) Validate() error {
	if _, err := c.Start(); err != nil {
		return err
	}
	if c.Dataset == "" {
		return fmt.Errorf("dataset must not be empty")
	}
	if c.TickMs <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", c.TickMs)
	}
	if c.DetailMs <= 0 {
		return fmt.Errorf("detail_ms must be positive, got %d", c.DetailMs)
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("speed must be within [%.1f, %.1f], got %v", MinSpeed, MaxSpeed, c.Speed)
	}
	if c.TrailLength <= 0 {
		return fmt.Errorf("trail_length must be positive, got %d", c.TrailLength)
	}
	if c.Focus == "" {
		return fmt.Errorf("focus must not be empty")
	}
	return nil
}

// Start returns the simulation epoch (midnight UTC of StartDate).
func (c *Config) Start() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start_date %q: %w", c.StartDate, err)
	}
	return t.UTC(), nil
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

func (c *Config) DetailInterval() time.Duration {
	return time.Duration(c.DetailMs) * time.Millisecond
}
