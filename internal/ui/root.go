package ui

import (
	"log"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/splitdesk/internal/config"
	"github.com/ytget/splitdesk/internal/desktop"
	"github.com/ytget/splitdesk/internal/platform"
	"github.com/ytget/splitdesk/internal/registry"
)

// RootUI represents the main window hosting a built desktop
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	views        *registry.Registry
	localization *Localization

	desktopName  string
	desktopNames []string
	desktop      *desktop.Desktop

	// Shown instead of the desktop when there is nothing to display
	statusLabel *widget.Label
}

// NewRootUI creates the main UI and builds the configured desktop
func NewRootUI(window fyne.Window, settings *config.Settings, views *registry.Registry) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		views:        views,
		localization: localization,
		desktopName:  settings.GetDesktopName(),
		statusLabel:  widget.NewLabel(""),
	}
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	window.SetTitle(ui.windowTitle())
	window.SetCloseIntercept(func() {
		ui.saveWindowSize()
		window.Close()
	})

	if err := ui.Reload(); err != nil {
		log.Printf("Initial desktop build failed: %v", err)
	}

	log.Printf("RootUI initialized with %d registered views: %s", views.Len(), strings.Join(views.Names(), ", "))
	return ui
}

// Reload re-reads the layout file and rebuilds the current desktop. A missing
// layout file falls back to desktop.json in the user config directory. On
// failure the window shows a placeholder and the error is returned.
func (ui *RootUI) Reload() error {
	path := ui.settings.GetLayoutFile()
	if resolved, err := platform.ResolveLayoutPath(path); err == nil {
		path = resolved
	} else {
		log.Printf("Layout lookup failed: %v", err)
	}

	doc, err := desktop.ParseFile(path)
	if err != nil {
		ui.desktop = nil
		ui.desktopNames = nil
		ui.showFailure(err)
		ui.createMenu()
		return err
	}
	ui.desktopNames = doc.DesktopNames()

	var opts []desktop.Option
	if ui.settings.GetStrictReferences() {
		opts = append(opts, desktop.WithStrictReferences())
	}

	d, err := desktop.Build(ui.desktopName, doc, ui.views, opts...)
	if err != nil {
		ui.desktop = nil
		ui.showFailure(err)
		ui.createMenu()
		return err
	}
	ui.desktop = d
	ui.window.SetTitle(ui.windowTitle())

	region := d.Region()
	if region == nil {
		ui.showPlaceholder(ui.localization.GetText(KeyNoDesktop))
	} else {
		ui.window.SetContent(region)
	}

	ui.createMenu()
	log.Printf("Loaded desktop %s from %s", ui.desktopName, path)
	return nil
}

// SwitchDesktop builds another desktop from the same layout file and
// remembers the choice
func (ui *RootUI) SwitchDesktop(name string) error {
	ui.desktopName = name
	ui.settings.SetDesktopName(name)
	return ui.Reload()
}

// Desktop returns the currently displayed desktop, or nil after a failed build
func (ui *RootUI) Desktop() *desktop.Desktop {
	return ui.desktop
}

// DesktopNames returns the desktops declared in the current layout file
func (ui *RootUI) DesktopNames() []string {
	return append([]string(nil), ui.desktopNames...)
}

// StatusText returns the placeholder text shown when no desktop is displayed
func (ui *RootUI) StatusText() string {
	return ui.statusLabel.Text
}

func (ui *RootUI) windowTitle() string {
	title := ui.localization.GetText(KeyAppTitle)
	if ui.desktopName == "" {
		return title
	}
	return title + " - " + ui.desktopName
}

// showFailure logs a build failure and shows it in place of the desktop
func (ui *RootUI) showFailure(err error) {
	log.Printf("Failed to build desktop %s: %v", ui.desktopName, err)
	ui.showPlaceholder(IconError + " " + ui.localization.GetText(KeyBuildFailed) + ErrorDetailSeparator + err.Error())
}

func (ui *RootUI) showPlaceholder(text string) {
	ui.statusLabel.SetText(text)
	ui.window.SetContent(container.NewPadded(ui.statusLabel))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	reloadItem := fyne.NewMenuItem(IconReload+" "+ui.localization.GetText(KeyReload), func() {
		if err := ui.Reload(); err != nil {
			log.Printf("Reload failed: %v", err)
		}
	})
	settingsItem := fyne.NewMenuItem(IconSettings+" "+ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Desktops submenu
	desktopMenu := fyne.NewMenu(ui.localization.GetText(KeyDesktops))
	for _, name := range ui.desktopNames {
		desktopName := name // Capture for closure
		item := fyne.NewMenuItem(desktopName, func() {
			if err := ui.SwitchDesktop(desktopName); err != nil {
				log.Printf("Switching to desktop %s failed: %v", desktopName, err)
			}
		})
		item.Checked = desktopName == ui.desktopName
		desktopMenu.Items = append(desktopMenu.Items, item)
	}

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), reloadItem, settingsItem),
		desktopMenu,
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// saveWindowSize remembers the current window size for the next start
func (ui *RootUI) saveWindowSize() {
	size := ui.window.Canvas().Size()
	ui.settings.SetWindowSize(int(size.Width), int(size.Height))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.windowTitle())
	ui.createMenu()
}

// onShowSettings opens the settings dialog and reloads after saving
func (ui *RootUI) onShowSettings() {
	dlg := NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.DesktopNames())
	dlg.SetOnSaved(func() {
		ui.desktopName = ui.settings.GetDesktopName()
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		if err := ui.Reload(); err != nil {
			log.Printf("Reload after settings change failed: %v", err)
		}
	})
	dlg.Show()
}
