package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Layout file locations
const (
	AppConfigDirName      = "splitdesk"
	DefaultLayoutFileName = "desktop.json"
	AndroidConfigDir      = "/sdcard/Documents"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// GetConfigDir returns the per-user directory for splitdesk files
func GetConfigDir() (string, error) {
	// Fyne Android apps run as libdist.so and have no XDG config dir
	isAndroid := runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
	if isAndroid {
		return filepath.Join(AndroidConfigDir, AppConfigDirName), nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, AppConfigDirName), nil
}

// DefaultLayoutPath returns the layout file inside the user config directory
func DefaultLayoutPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultLayoutFileName), nil
}

// ResolveLayoutPath returns the first existing file among candidates, falling
// back to the user config directory. Empty candidates are ignored.
func ResolveLayoutPath(candidates ...string) (string, error) {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if FileExists(candidate) {
			return candidate, nil
		}
	}

	fallback, err := DefaultLayoutPath()
	if err != nil {
		return "", err
	}
	if FileExists(fallback) {
		return fallback, nil
	}
	return "", fmt.Errorf("no layout file found (tried %v and %s)", candidates, fallback)
}
