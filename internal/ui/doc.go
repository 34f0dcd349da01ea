package ui

// Package ui contains the Fyne-based host for built desktops. It registers the
// demo views, builds the configured desktop into the main window, and offers
// menus to reload the layout, switch desktops, and edit settings. All UI
// strings are localized via Localization.
