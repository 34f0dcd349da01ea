package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/splitdesk/internal/registry"
)

// demoViews maps demo view names to their background colors
var demoViews = []struct {
	name  string
	color fyne.ThemeColorName
}{
	{ViewRedButton, ColorNameRedPane},
	{ViewGreenButton, ColorNameGreenPane},
	{ViewBlueButton, ColorNameBluePane},
}

// RegisterDemoViews registers the colored button panes used by the sample
// layouts, taking their colors from th
func RegisterDemoViews(views *registry.Registry, th fyne.Theme, variant fyne.ThemeVariant) {
	for _, demo := range demoViews {
		views.Register(demo.name, NewButtonPane(demo.name, th.Color(demo.color, variant)))
	}
}

// NewButtonPane creates a button filling a colored background
func NewButtonPane(name string, background color.Color) fyne.CanvasObject {
	rect := canvas.NewRectangle(background)
	rect.SetMinSize(fyne.NewSize(DemoPaneMinWidth, DemoPaneMinHeight))

	button := widget.NewButton(fmt.Sprintf(DemoButtonFormat, name), nil)
	return container.NewStack(rect, container.NewPadded(button))
}
