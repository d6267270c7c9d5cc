package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxCaptures bounds the demo capture loop so a typo in the config
// cannot spin for hours.
const MaxCaptures = 10000

// CameraConfig describes which capture implementation to use.
// Type selects a concrete implementation (e.g., "dummy").
type CameraConfig struct {
	Type   string `yaml:"type"`   // e.g., "dummy"
	Handle uint64 `yaml:"handle"` // opaque session token passed through to the SDK, never interpreted
}

// DefaultsConfig contains generic demo parameters.
type DefaultsConfig struct {
	DebugLevel   int  `yaml:"debug_level"`   // debug level 0-4 (0=off, 1=info, 2=live, 3=verbose, 4=trace)
	Captures     int  `yaml:"captures"`      // how many capture calls to run (default: 1)
	DumpFrame    bool `yaml:"dump_frame"`    // print the captured byte pattern row by row
	ProbeAddress bool `yaml:"probe_address"` // report the image buffer address after capture
	ListControls bool `yaml:"list_controls"` // list the known control IDs before capturing
}

// Config aggregates all application configuration.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// Load reads a YAML file and returns the configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// Basic validation
	if cfg.Camera.Type == "" {
		return nil, fmt.Errorf("camera.type is required")
	}
	if cfg.Defaults.DebugLevel < 0 || cfg.Defaults.DebugLevel > 4 {
		return nil, fmt.Errorf("debug_level must be between 0 and 4, got %d", cfg.Defaults.DebugLevel)
	}
	if cfg.Defaults.Captures < 0 {
		return nil, fmt.Errorf("captures must be >= 0, got %d", cfg.Defaults.Captures)
	}
	if cfg.Defaults.Captures > MaxCaptures {
		return nil, fmt.Errorf("captures must be <= %d, got %d", MaxCaptures, cfg.Defaults.Captures)
	}
	if cfg.Defaults.Captures == 0 {
		cfg.Defaults.Captures = 1 // reasonable default
	}

	return &cfg, nil
}

// ValidateConfigPath checks that a config path is safe to load: it must
// end in .yaml, live in a configs/ directory, and not traverse upward.
func ValidateConfigPath(path string) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}
	if strings.Contains(path, "..") {
		return fmt.Errorf("config path must not contain '..': %s", path)
	}
	if filepath.Ext(path) != ".yaml" {
		return fmt.Errorf("config file must have a .yaml extension: %s", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if filepath.Base(filepath.Dir(abs)) != "configs" {
		return fmt.Errorf("config file must live in a configs/ directory: %s", path)
	}
	return nil
}
