package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "desktop.json")
	if err := os.WriteFile(file, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"existing file", file, true},
		{"directory", tempDir, false},
		{"missing file", filepath.Join(tempDir, "missing.json"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := FileExists(tt.path); result != tt.expected {
				t.Errorf("FileExists(%s) = %v, expected %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Skipf("No user config directory available: %v", err)
	}

	if filepath.Base(dir) != AppConfigDirName {
		t.Errorf("Expected directory to end with '%s', got: %s", AppConfigDirName, dir)
	}
}

func TestResolveLayoutPath(t *testing.T) {
	tempDir := t.TempDir()
	existing := filepath.Join(tempDir, "layout.yaml")
	if err := os.WriteFile(existing, []byte("views: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	path, err := ResolveLayoutPath("", filepath.Join(tempDir, "missing.json"), existing)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if path != existing {
		t.Errorf("Expected %s, got %s", existing, path)
	}
}

func TestResolveLayoutPath_NoCandidates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := ResolveLayoutPath(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Error("Expected error when no layout file exists")
	}
}
