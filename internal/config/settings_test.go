package config

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLayoutFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if path := settings.GetLayoutFile(); path != DefaultLayoutFile {
		t.Errorf("Expected default layout file %s, got %s", DefaultLayoutFile, path)
	}

	// Test setting custom value
	settings.SetLayoutFile("/custom/desktop.yaml")
	if path := settings.GetLayoutFile(); path != "/custom/desktop.yaml" {
		t.Errorf("Expected layout file /custom/desktop.yaml, got %s", path)
	}

	// Test empty path defaults back
	settings.SetLayoutFile("")
	if path := settings.GetLayoutFile(); path != DefaultLayoutFile {
		t.Errorf("Empty path should default to %s, got %s", DefaultLayoutFile, path)
	}
}

func TestDesktopName(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if name := settings.GetDesktopName(); name != DefaultDesktopName {
		t.Errorf("Expected default desktop %s, got %s", DefaultDesktopName, name)
	}

	settings.SetDesktopName("Desktop1")
	if name := settings.GetDesktopName(); name != "Desktop1" {
		t.Errorf("Expected desktop Desktop1, got %s", name)
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	expected := fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)
	if size := settings.GetWindowSize(); size != expected {
		t.Errorf("Expected default size %v, got %v", expected, size)
	}

	settings.SetWindowSize(640, 480)
	if size := settings.GetWindowSize(); size != fyne.NewSize(640, 480) {
		t.Errorf("Expected size 640x480, got %v", size)
	}

	// Test boundary values
	settings.SetWindowSize(10, 50000)
	if size := settings.GetWindowSize(); size != fyne.NewSize(MinWindowSize, MaxWindowSize) {
		t.Errorf("Expected clamped size, got %v", size)
	}
}

func TestStrictReferences(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetStrictReferences() != DefaultStrictReferences {
		t.Error("Expected default strict references setting")
	}

	settings.SetStrictReferences(true)
	if !settings.GetStrictReferences() {
		t.Error("Expected strict references to be enabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}
}

func TestWithOverrides(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetDesktopName("Desktop1")
	settings.SetLayoutFile("/stored/desktop.json")
	settings.SetStrictReferences(false)

	strict := true
	overridden := settings.WithOverrides(Overrides{
		Desktop:  "Desktop2",
		Language: "pt",
		Strict:   &strict,
	})

	if name := overridden.GetDesktopName(); name != "Desktop2" {
		t.Errorf("Expected overridden desktop Desktop2, got %s", name)
	}
	if path := overridden.GetLayoutFile(); path != "/stored/desktop.json" {
		t.Errorf("Empty override should keep stored layout file, got %s", path)
	}
	if !overridden.GetStrictReferences() {
		t.Error("Expected overridden strict references")
	}
	if lang := overridden.GetLanguage(); lang != "pt" {
		t.Errorf("Expected overridden language pt, got %s", lang)
	}

	// Overrides are never persisted
	if name := settings.GetDesktopName(); name != "Desktop1" {
		t.Errorf("Stored desktop should stay Desktop1, got %s", name)
	}
}

func TestIsOverridden(t *testing.T) {
	app := test.NewApp()
	strict := false
	settings := NewSettings(app).WithOverrides(Overrides{
		Desktop: "Desktop2",
		Strict:  &strict,
	})

	tests := []struct {
		key      string
		expected bool
	}{
		{KeyLayoutFile, false},
		{KeyDesktopName, true},
		{KeyStrictReferences, true},
		{KeyLanguage, false},
		{KeyWindowWidth, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := settings.IsOverridden(tt.key); got != tt.expected {
				t.Errorf("IsOverridden(%s) = %v, expected %v", tt.key, got, tt.expected)
			}
		})
	}

	if NewSettings(app).IsOverridden(KeyDesktopName) {
		t.Error("Settings without overrides should report nothing overridden")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
