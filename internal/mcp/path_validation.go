package mcp

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// resolveInputPath resolves a tool argument naming a file inside the data
// directory. param is only used in error messages.
func resolveInputPath(dataDir, param, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%s is required", param)
	}
	path, err := resolvePathWithinBase(dataDir, value)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", param, err)
	}
	return path, nil
}

// resolvePathWithinBase returns the absolute form of pathValue, which may be
// relative to baseDir or absolute, provided it stays inside baseDir.
func resolvePathWithinBase(baseDir, pathValue string) (string, error) {
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory: %w", err)
	}

	rel := filepath.Clean(pathValue)
	if filepath.IsAbs(rel) {
		if rel, err = filepath.Rel(base, rel); err != nil {
			return "", fmt.Errorf("failed to resolve path: %w", err)
		}
	}
	if !filepath.IsLocal(rel) {
		return "", errors.New("path must be within data directory")
	}
	return filepath.Join(base, rel), nil
}
