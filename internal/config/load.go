package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. CUBIK_GRAPHICS_WIDTH.
const EnvPrefix = "cubik"

// Load loads configuration with priority: defaults < file < env < flags.
func Load() (*Config, error) {
	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFile loads defaults, then path (if not empty), then environment
// overrides. Flags are not consulted.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Cubik")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Cubik")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "cubik")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cubik")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// Bindings listed in the file replace the defaults for those keys only,
// whatever spelling the file uses for the key.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	defaults := cfg.Controls.Bindings
	cfg.Controls.Bindings = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg.Controls.Bindings = defaults
		return err
	}

	cfg.Controls.Bindings = mergeBindings(defaults, cfg.Controls.Bindings)
	return nil
}

// loadFromEnv overrides fields whose CUBIK_* variable is set. Unset
// variables leave the current value alone.
func loadFromEnv(cfg *Config) error {
	return envconfig.Process(EnvPrefix, cfg)
}
