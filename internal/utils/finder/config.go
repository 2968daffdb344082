package finder

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultLocations are searched when no configuration file is given
var DefaultLocations = []string{
	"conf/webdev.yaml",
	"webdev.yaml",
}

// FindConfigFile returns the absolute path of configPath. With an empty
// configPath the first existing default location is used, or "" when there is
// none, which means running on defaults. A missing explicit file is an error
// only when mustExist is set.
func FindConfigFile(configPath string, mustExist bool) (string, error) {
	if configPath == "" {
		for _, candidate := range DefaultLocations {
			if path, err := absIfExists(candidate); err == nil && path != "" {
				return path, nil
			}
		}
		return "", nil
	}

	path, err := absIfExists(configPath)
	if err != nil {
		return "", err
	}
	if path != "" {
		return path, nil
	}
	if mustExist {
		return "", fmt.Errorf("configuration file not found: %s", configPath)
	}
	return "", nil
}

func absIfExists(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}
