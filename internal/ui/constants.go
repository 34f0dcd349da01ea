package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReload   = "⟳"
	IconError    = "❌"
)

// Demo view names registered by RegisterDemoViews
const (
	ViewRedButton   = "redButton"
	ViewGreenButton = "greenButton"
	ViewBlueButton  = "blueButton"
)

// Text fragments
const (
	ErrorDetailSeparator = ": "
	DemoButtonFormat     = ".%s"
)

// Layout sizing
const (
	DemoPaneMinWidth  float32 = 120
	DemoPaneMinHeight float32 = 80

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
)
