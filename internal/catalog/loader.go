package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game catalog.
// Search order: customPath -> ~/.cortex/configs/games.yaml -> ./configs/games.yaml -> embedded default
func Load(customPath string) (Catalog, error) {
	var c Catalog

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return c, fmt.Errorf("failed to read catalog %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("failed to parse catalog %s: %w", customPath, err)
		}
		return c, nil
	}

	// Try user config directory
	if userPath := userConfigPath("games.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &c); err == nil {
				return c, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/games.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &c); err == nil {
			return c, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCatalogYAML, &c); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return c, nil
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cortex", "configs", filename)
}
