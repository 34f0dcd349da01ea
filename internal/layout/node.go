package layout

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/splitdesk/internal/model"
)

// Node is a composite tree element that can produce a region.
// A nil region means there is nothing to display.
type Node interface {
	Region() fyne.CanvasObject
}

// Resolver looks up host-supplied views by name
type Resolver interface {
	Resolve(name string) (fyne.CanvasObject, bool)
}

// Leaf is a named view looked up in a Resolver when its region is requested
type Leaf struct {
	name  string
	views Resolver
}

// NewLeaf creates a leaf for the named view
func NewLeaf(name string, views Resolver) *Leaf {
	return &Leaf{name: name, views: views}
}

// Name returns the view name
func (l *Leaf) Name() string {
	return l.name
}

// Region returns the registered view, or nil when it is not registered
func (l *Leaf) Region() fyne.CanvasObject {
	if l.views == nil {
		return nil
	}
	view, exists := l.views.Resolve(l.name)
	if !exists {
		return nil
	}
	return view
}

// Group is a named, ordered list of child nodes with a layout orientation
type Group struct {
	name        string
	orientation model.Orientation
	children    []Node
}

// NewGroup creates an empty group
func NewGroup(name string, orientation model.Orientation) *Group {
	return &Group{
		name:        name,
		orientation: orientation,
		children:    make([]Node, 0),
	}
}

// Name returns the group name
func (g *Group) Name() string {
	return g.name
}

// Orientation returns the current orientation
func (g *Group) Orientation() model.Orientation {
	return g.orientation
}

// SetOrientation changes the orientation used by later Region calls
func (g *Group) SetOrientation(orientation model.Orientation) {
	g.orientation = orientation
}

// AddChild appends a child; insertion order is display order
func (g *Group) AddChild(node Node) {
	g.children = append(g.children, node)
}

// Children returns a copy of the child list
func (g *Group) Children() []Node {
	children := make([]Node, len(g.children))
	copy(children, g.children)
	return children
}

// Len returns the number of children
func (g *Group) Len() int {
	return len(g.children)
}

// Region resolves the group. No children yields nil, a single child is
// returned as is, and two or more become a SplitPane. Children resolving to
// nil are skipped.
func (g *Group) Region() fyne.CanvasObject {
	switch len(g.children) {
	case 0:
		return nil
	case 1:
		return g.children[0].Region()
	}

	items := make([]fyne.CanvasObject, 0, len(g.children))
	for _, child := range g.children {
		if region := child.Region(); region != nil {
			items = append(items, region)
		}
	}

	switch len(items) {
	case 0:
		return nil
	case 1:
		return items[0]
	}
	return NewSplitPane(g.orientation, items...)
}
