package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the encoding from a file extension. Anything that is
// not .toml is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse decodes a configuration document. Fields missing from the document
// keep their built-in default values.
func Parse(data []byte, format Format) (BoatRunnerConfig, error) {
	cfg := DefaultBoatRunnerConfig()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse yaml: %w", err)
		}
	}
	return cfg, nil
}

// LoadFile reads and parses a single config file.
func LoadFile(path string) (BoatRunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BoatRunnerConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data, FormatForPath(path))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load loads the Boat Runner configuration.
// Search order: customPath -> ~/.boatrunner/configs/boatrunner.{yaml,toml}
// -> ./configs/boatrunner.yaml -> embedded default.
// Only a custom path reports read/parse errors; the other locations are
// optional and skipped when unusable.
func Load(customPath string) (BoatRunnerConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, name := range []string{"boatrunner.yaml", "boatrunner.toml"} {
		if userCfgPath := userConfigPath(name); userCfgPath != "" {
			if cfg, err := LoadFile(userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", "boatrunner.yaml")); err == nil {
		return cfg, nil
	}

	cfg, err := Parse(defaultBoatRunnerYAML, FormatYAML)
	if err != nil {
		return DefaultBoatRunnerConfig(), nil
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML, used for replay snapshots.
func Marshal(cfg BoatRunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boatrunner", "configs", filename)
}
