package ui

import "testing"

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if text := l.GetText(KeyReload); text != "Reload Layout" {
		t.Errorf("Expected English text, got %s", text)
	}

	l.SetLanguage("pt")
	if text := l.GetText(KeyReload); text != "Recarregar Layout" {
		t.Errorf("Expected Portuguese text, got %s", text)
	}

	// Unknown key falls back to the key itself
	if text := l.GetText("unknown_key"); text != "unknown_key" {
		t.Errorf("Expected key fallback, got %s", text)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"system", "en"},
		{"ru", "ru"},
		{"xx", "en"},
	}

	for _, test := range tests {
		l := NewLocalization()
		l.SetLanguage(test.lang)
		if l.GetCurrentLanguage() != test.expected {
			t.Errorf("SetLanguage(%s): expected %s, got %s", test.lang, test.expected, l.GetCurrentLanguage())
		}
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, exists := l.texts[lang]
		if !exists {
			t.Errorf("Missing texts for language %s", lang)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
