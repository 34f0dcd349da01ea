package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/splitdesk/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	layoutFileEntry *widget.Entry
	desktopSelect   *widget.SelectEntry
	strictCheck     *widget.Check
	languageSelect  *widget.Select
	overrideNote    *widget.Label
}

// NewSettingsDialog creates a new settings dialog. desktopNames seeds the
// desktop selector; any other name can still be typed.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, desktopNames []string) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI(desktopNames)
	return sd
}

// SetOnSaved sets the callback run after settings are saved
func (sd *SettingsDialog) SetOnSaved(callback func()) {
	sd.onSaved = callback
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI(desktopNames []string) {
	l := sd.localization

	sd.layoutFileEntry = widget.NewEntry()
	sd.layoutFileEntry.SetPlaceHolder(config.DefaultLayoutFile)
	browseBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseFile)
	layoutFileRow := container.NewBorder(nil, nil, nil, browseBtn, sd.layoutFileEntry)

	sd.desktopSelect = widget.NewSelectEntry(desktopNames)
	sd.desktopSelect.SetPlaceHolder(config.DefaultDesktopName)

	sd.strictCheck = widget.NewCheck(l.GetText(KeyStrictReferences), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.overrideNote = widget.NewLabel(l.GetText(KeyOverridden))
	sd.overrideNote.Wrapping = fyne.TextWrapWord
	sd.lockOverridden()

	form := container.NewVBox(
		sd.overrideNote,

		widget.NewLabel(l.GetText(KeyLayoutFile)+":"),
		layoutFileRow,

		widget.NewLabel(l.GetText(KeyDesktopName)+":"),
		sd.desktopSelect,

		sd.strictCheck,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// lockOverridden disables the fields whose values come from overrides,
// since saving them would not change what is displayed
func (sd *SettingsDialog) lockOverridden() {
	locked := false
	lock := func(key string, w fyne.Disableable) {
		if sd.settings.IsOverridden(key) {
			w.Disable()
			locked = true
		}
	}
	lock(config.KeyLayoutFile, sd.layoutFileEntry)
	lock(config.KeyDesktopName, sd.desktopSelect)
	lock(config.KeyStrictReferences, sd.strictCheck)
	lock(config.KeyLanguage, sd.languageSelect)

	if !locked {
		sd.overrideNote.Hide()
	}
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.layoutFileEntry.SetText(sd.settings.GetLayoutFile())
	sd.desktopSelect.SetText(sd.settings.GetDesktopName())
	sd.strictCheck.SetChecked(sd.settings.GetStrictReferences())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseFile lets the user pick a layout document
func (sd *SettingsDialog) onBrowseFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.layoutFileEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Overridden fields are disabled and left untouched
	if !sd.layoutFileEntry.Disabled() && sd.layoutFileEntry.Text != "" {
		sd.settings.SetLayoutFile(sd.layoutFileEntry.Text)
	}
	if !sd.desktopSelect.Disabled() && sd.desktopSelect.Text != "" {
		sd.settings.SetDesktopName(sd.desktopSelect.Text)
	}
	if !sd.strictCheck.Disabled() {
		sd.settings.SetStrictReferences(sd.strictCheck.Checked)
	}
	if !sd.languageSelect.Disabled() && sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
