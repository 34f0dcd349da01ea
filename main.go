package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/splitdesk/internal/config"
	"github.com/ytget/splitdesk/internal/platform"
	"github.com/ytget/splitdesk/internal/registry"
	"github.com/ytget/splitdesk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.splitdesk"
	AppName = "Splitdesk"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	// Layout and override files may be dropped into the config directory
	if dir, err := platform.GetConfigDir(); err == nil {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			log.Printf("failed to create config directory: %v", err)
		}
	}

	overrides, err := config.LoadOverrides("")
	if err != nil {
		log.Printf("failed to load overrides: %v", err)
	}
	settings := config.NewSettings(myApp).WithOverrides(overrides)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(settings.GetWindowSize())
	if icon, err := ui.LoadAppIcon(); err == nil {
		myWindow.SetIcon(icon)
	}

	// Views must be registered before the desktop region is resolved
	views := registry.New()
	ui.RegisterDemoViews(views, myApp.Settings().Theme(), myApp.Settings().ThemeVariant())

	ui.NewRootUI(myWindow, settings, views)

	myWindow.ShowAndRun()
}
