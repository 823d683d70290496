package config

import (
	"os"
	"path/filepath"
	"strings"
)

const fallbackVersion = "1.0.0"

// GetVersion returns APP_VERSION when set (CI/CD), else the VERSION file, else 1.0.0.
func GetVersion() string {
	if envVersion := strings.TrimSpace(os.Getenv("APP_VERSION")); envVersion != "" {
		return envVersion
	}
	return readVersionFile([]string{
		"VERSION",
		filepath.Join("..", "VERSION"),
		filepath.Join("..", "..", "VERSION"),
	})
}

// readVersionFile returns the first non-empty VERSION file among paths.
func readVersionFile(paths []string) string {
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if v := strings.TrimSpace(string(content)); v != "" {
			return v
		}
	}
	return fallbackVersion
}
