package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLayoutFile       = "layout_file"
	KeyDesktopName      = "desktop_name"
	KeyWindowWidth      = "window_width"
	KeyWindowHeight     = "window_height"
	KeyStrictReferences = "strict_references"
	KeyLanguage         = "app_language"
)

// Default values
const (
	DefaultLayoutFile       = "config/desktop.json"
	DefaultDesktopName      = "Desktop4"
	DefaultWindowWidth      = 1000
	DefaultWindowHeight     = 800
	DefaultStrictReferences = false
	DefaultLanguage         = "system"
)

// Window size bounds
const (
	MinWindowSize = 200
	MaxWindowSize = 10000
)

// Settings manages application configuration. Values from Overrides take
// precedence over stored preferences and are never written back.
type Settings struct {
	app       fyne.App
	overrides Overrides
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// WithOverrides returns settings that prefer the given overrides
func (s *Settings) WithOverrides(overrides Overrides) *Settings {
	return &Settings{app: s.app, overrides: overrides}
}

// IsOverridden reports whether the value stored under key is currently
// replaced by an override, so editing the preference has no visible effect
func (s *Settings) IsOverridden(key string) bool {
	switch key {
	case KeyLayoutFile:
		return s.overrides.LayoutFile != ""
	case KeyDesktopName:
		return s.overrides.Desktop != ""
	case KeyStrictReferences:
		return s.overrides.Strict != nil
	case KeyLanguage:
		return s.overrides.Language != ""
	default:
		return false
	}
}

// GetLayoutFile returns the path of the layout document
func (s *Settings) GetLayoutFile() string {
	if s.overrides.LayoutFile != "" {
		return s.overrides.LayoutFile
	}
	return s.app.Preferences().StringWithFallback(KeyLayoutFile, DefaultLayoutFile)
}

// SetLayoutFile sets the path of the layout document
func (s *Settings) SetLayoutFile(path string) {
	if path == "" {
		path = DefaultLayoutFile
	}
	s.app.Preferences().SetString(KeyLayoutFile, path)
}

// GetDesktopName returns the name of the desktop to build
func (s *Settings) GetDesktopName() string {
	if s.overrides.Desktop != "" {
		return s.overrides.Desktop
	}
	name := s.app.Preferences().String(KeyDesktopName)
	if name == "" {
		s.SetDesktopName(DefaultDesktopName)
		return DefaultDesktopName
	}
	return name
}

// SetDesktopName sets the name of the desktop to build
func (s *Settings) SetDesktopName(name string) {
	s.app.Preferences().SetString(KeyDesktopName, name)
}

// GetWindowSize returns the configured window size
func (s *Settings) GetWindowSize() fyne.Size {
	width := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return fyne.NewSize(float32(clampWindowSize(width)), float32(clampWindowSize(height)))
}

// SetWindowSize stores the window size
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, clampWindowSize(width))
	s.app.Preferences().SetInt(KeyWindowHeight, clampWindowSize(height))
}

// GetStrictReferences returns whether dangling layout references fail the build
func (s *Settings) GetStrictReferences() bool {
	if s.overrides.Strict != nil {
		return *s.overrides.Strict
	}
	return s.app.Preferences().BoolWithFallback(KeyStrictReferences, DefaultStrictReferences)
}

// SetStrictReferences sets whether dangling layout references fail the build
func (s *Settings) SetStrictReferences(strict bool) {
	s.app.Preferences().SetBool(KeyStrictReferences, strict)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	if s.overrides.Language != "" {
		return s.overrides.Language
	}
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampWindowSize(value int) int {
	if value < MinWindowSize {
		return MinWindowSize
	}
	if value > MaxWindowSize {
		return MaxWindowSize
	}
	return value
}
