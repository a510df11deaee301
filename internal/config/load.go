package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ErrParse marks a settings file that exists but is not valid JSON.
// It aborts the run before any external tool is invoked.
var ErrParse = errors.New("settings file is not valid JSON")

// ErrFieldType marks a settings file that is valid JSON but assigns a
// field a value of the wrong type (e.g. a string where a list belongs).
var ErrFieldType = errors.New("settings field has the wrong type")

// LoadFile reads and parses the settings from a JSON file. A missing or
// empty file yields the defaults; malformed JSON is fatal; unknown fields
// are ignored.
func LoadFile(path string) (*Config, error) {
	// #nosec G304 - path is the operator-supplied settings file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return Default(), nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	var cfg Config
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFieldType, path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return &cfg, nil
}

// FindConfigFile resolves the settings path: an explicit path wins,
// otherwise the default file name in the working directory is used
// whether or not it exists (an absent default file means defaults).
func FindConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return DefaultFileName
}
