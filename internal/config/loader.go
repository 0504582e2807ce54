package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name the fallback sources in Config.Source.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// localConfigPath is tried relative to the working directory.
var localConfigPath = filepath.Join("configs", "noisefetch.yaml")

// Load loads the configuration and normalises it.
// Search order: customPath -> ~/.noisefetch/config.yaml -> ./configs/noisefetch.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error;
// unreadable files further down the chain are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(localConfigPath); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
		cfg.Source = SourceBuiltin
		return cfg, nil
	}
	cfg.Source = SourceEmbedded
	return cfg, nil
}

// Parse decodes data over the defaults, so a file only needs the keys it
// changes, then validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// HomeDir returns ~/.noisefetch, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".noisefetch")
}
