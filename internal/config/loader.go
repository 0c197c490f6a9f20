package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return Parse(data, customPath)
	}

	// Try user config directory, then the local configs directory.
	// Unreadable candidates are skipped; invalid ones are reported.
	for _, path := range []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return Parse(data, path)
	}

	return Parse(defaultFlappyYAML, "embedded default")
}

// Parse decodes YAML on top of the defaults and validates the result.
// source is only used in error messages.
func Parse(data []byte, source string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FlappyConfig{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}

	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}
