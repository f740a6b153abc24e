package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"jmorin/cpa005/internal/models"
)

// FindOriginatorFile looks for an originator profile in standard
// locations: the path as given, ./config/, then ~/.config/cpa005/.
func FindOriginatorFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "cpa005", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadOriginator reads an originator configuration from a YAML file.
func LoadOriginator(path string) (models.Configuration, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return models.Configuration{}, fmt.Errorf("error reading originator file: %w", err)
	}

	var cfg models.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return models.Configuration{}, fmt.Errorf("error parsing originator file %s: %w", path, err)
	}
	return cfg, nil
}
