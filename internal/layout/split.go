package layout

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/splitdesk/internal/model"
)

// SplitPane lays out any number of items in one direction with draggable
// dividers. Items start with equal shares of the available space.
type SplitPane struct {
	widget.BaseWidget

	orientation model.Orientation
	items       []fyne.CanvasObject
}

// NewSplitPane creates a split pane over items in the given orientation
func NewSplitPane(orientation model.Orientation, items ...fyne.CanvasObject) *SplitPane {
	s := &SplitPane{
		orientation: orientation,
		items:       append([]fyne.CanvasObject(nil), items...),
	}
	s.ExtendBaseWidget(s)
	return s
}

// Orientation returns the split direction
func (s *SplitPane) Orientation() model.Orientation {
	return s.orientation
}

// Items returns a copy of the pane items in display order
func (s *SplitPane) Items() []fyne.CanvasObject {
	return append([]fyne.CanvasObject(nil), s.items...)
}

// CreateRenderer implements fyne.Widget
func (s *SplitPane) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(nestSplits(s.orientation, s.items))
}

// nestSplits chains two-way fyne splits so that each item gets 1/len(items)
// of the space: the first item takes 1/k of a k-item chain.
func nestSplits(orientation model.Orientation, items []fyne.CanvasObject) fyne.CanvasObject {
	switch len(items) {
	case 0:
		return container.NewStack()
	case 1:
		return items[0]
	}

	rest := nestSplits(orientation, items[1:])
	var split *container.Split
	if orientation.IsHorizontal() {
		split = container.NewHSplit(items[0], rest)
	} else {
		split = container.NewVSplit(items[0], rest)
	}
	split.Offset = 1 / float64(len(items))
	return split
}
