package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyFile             = "file"
	KeyReload           = "reload"
	KeySettings         = "settings"
	KeyDesktops         = "desktops"
	KeyLanguage         = "language"
	KeyLayoutFile       = "layout_file"
	KeyDesktopName      = "desktop_name"
	KeyStrictReferences = "strict_references"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyNoDesktop        = "no_desktop"
	KeyBuildFailed      = "build_failed"
	KeyOverridden       = "overridden"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Splitdesk",
		KeyFile:             "File",
		KeyReload:           "Reload Layout",
		KeySettings:         "Settings",
		KeyDesktops:         "Desktops",
		KeyLanguage:         "Language",
		KeyLayoutFile:       "Layout File",
		KeyDesktopName:      "Desktop",
		KeyStrictReferences: "Fail on dangling references",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyNoDesktop:        "Nothing to display",
		KeyBuildFailed:      "Could not build desktop",
		KeyOverridden:       "Some settings are set by SPLITDESK_* environment variables or splitdesk.toml and cannot be changed here",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Splitdesk",
		KeyFile:             "Файл",
		KeyReload:           "Перезагрузить раскладку",
		KeySettings:         "Настройки",
		KeyDesktops:         "Рабочие столы",
		KeyLanguage:         "Язык",
		KeyLayoutFile:       "Файл раскладки",
		KeyDesktopName:      "Рабочий стол",
		KeyStrictReferences: "Ошибка при висячих ссылках",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyNoDesktop:        "Нечего отображать",
		KeyBuildFailed:      "Не удалось построить рабочий стол",
		KeyOverridden:       "Некоторые настройки заданы переменными окружения SPLITDESK_* или файлом splitdesk.toml и не могут быть изменены здесь",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Splitdesk",
		KeyFile:             "Arquivo",
		KeyReload:           "Recarregar Layout",
		KeySettings:         "Configurações",
		KeyDesktops:         "Áreas de Trabalho",
		KeyLanguage:         "Idioma",
		KeyLayoutFile:       "Arquivo de Layout",
		KeyDesktopName:      "Área de Trabalho",
		KeyStrictReferences: "Falhar em referências pendentes",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyNoDesktop:        "Nada para exibir",
		KeyBuildFailed:      "Não foi possível criar a área de trabalho",
		KeyOverridden:       "Algumas configurações são definidas por variáveis de ambiente SPLITDESK_* ou pelo splitdesk.toml e não podem ser alteradas aqui",
	}
}
