package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ModsDir returns the Factorio mods directory for the host OS
func ModsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("no home directory found: %w", err)
	}
	return modsDirFor(runtime.GOOS, home, os.Getenv("APPDATA")), nil
}

func modsDirFor(goos, home, appData string) string {
	switch goos {
	case "windows":
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Factorio", "mods")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "factorio", "mods")
	default:
		return filepath.Join(home, ".factorio", "mods")
	}
}
