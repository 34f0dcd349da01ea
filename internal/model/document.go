package model

// ChildType identifies what a view group child refers to
type ChildType string

const (
	ChildView      ChildType = "view"
	ChildViewGroup ChildType = "viewGroup"
)

// String returns the string representation of ChildType
func (ct ChildType) String() string {
	return string(ct)
}

// IsKnown reports whether the type is one the builder can wire
func (ct ChildType) IsKnown() bool {
	return ct == ChildView || ct == ChildViewGroup
}

// Document is the decoded layout description. A nil slice means the key was
// absent or null, an empty non-nil slice means it was declared empty.
type Document struct {
	Desktops   []DesktopSpec   `json:"desktops" yaml:"desktops"`
	Views      []ViewSpec      `json:"views" yaml:"views"`
	ViewGroups []ViewGroupSpec `json:"viewGroups" yaml:"viewGroups"`
}

// DesktopSpec selects the view group used as the root of a named desktop
type DesktopSpec struct {
	Name          string `json:"name" yaml:"name"`
	RootViewGroup string `json:"viewGroup" yaml:"viewGroup"`
}

// ViewSpec declares a view that is looked up in the registry by name
type ViewSpec struct {
	Name string `json:"name" yaml:"name"`
}

// ViewGroupSpec declares a named composite of ordered child references
type ViewGroupSpec struct {
	Name        string     `json:"name" yaml:"name"`
	Orientation string     `json:"orientation" yaml:"orientation"`
	Children    []ChildRef `json:"viewGroups" yaml:"viewGroups"`
}

// ChildRef references a view or another view group by name
type ChildRef struct {
	Type ChildType `json:"type" yaml:"type"`
	Name string    `json:"name" yaml:"name"`
}

// DesktopNames returns the declared desktop names in declaration order,
// without duplicates
func (d *Document) DesktopNames() []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]bool, len(d.Desktops))
	names := make([]string, 0, len(d.Desktops))
	for _, desktop := range d.Desktops {
		if seen[desktop.Name] {
			continue
		}
		seen[desktop.Name] = true
		names = append(names, desktop.Name)
	}
	return names
}
