package desktop

import (
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/ytget/splitdesk/internal/layout"
	"github.com/ytget/splitdesk/internal/model"
	"github.com/ytget/splitdesk/internal/platform"
)

// Build ID prefix used in log lines
const BuildIDPrefix = "build-"

// Desktop is a built layout tree for one named desktop
type Desktop struct {
	id      string
	name    string
	root    *layout.Group
	dropped []DroppedReference
}

// Option configures Build
type Option func(*options)

type options struct {
	strict bool
}

// WithStrictReferences makes Build fail with ErrDanglingReference instead of
// dropping references it cannot wire
func WithStrictReferences() Option {
	return func(o *options) {
		o.strict = true
	}
}

// ParseFile reads the layout document at path, wrapping failures in ErrParse
func ParseFile(path string) (*model.Document, error) {
	doc, err := platform.ParseLayoutFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return doc, nil
}

// FromFile parses the layout file at path and builds the named desktop
func FromFile(desktopName, path string, views layout.Resolver, opts ...Option) (*Desktop, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Build(desktopName, doc, views, opts...)
}

// FromString parses a JSON layout document and builds the named desktop
func FromString(desktopName, text string, views layout.Resolver, opts ...Option) (*Desktop, error) {
	doc, err := platform.ParseLayoutString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Build(desktopName, doc, views, opts...)
}

// Build constructs the named desktop from doc. Views are looked up in views
// when a region is requested, so the registry may be filled after Build.
//
// View groups are wired in declaration order and a view group reference is
// only wired when the target was declared (and processed) earlier. Forward
// references, cycles, and unknown names are dropped and reported by Dropped,
// or fail the build with ErrDanglingReference under WithStrictReferences.
func Build(desktopName string, doc *model.Document, views layout.Resolver, opts ...Option) (*Desktop, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if doc == nil {
		return nil, fmt.Errorf("%w: document is empty", ErrMissingField)
	}

	desktops := make(map[string]model.DesktopSpec, len(doc.Desktops))
	for _, ds := range doc.Desktops {
		desktops[ds.Name] = ds
	}
	selected, exists := desktops[desktopName]
	if !exists {
		err := fmt.Errorf("%w: %q", ErrDesktopNotFound, desktopName)
		if suggestion := suggestName(desktopName, doc.DesktopNames()); suggestion != "" {
			err = fmt.Errorf("%w, did you mean %q?", err, suggestion)
		}
		return nil, err
	}

	if doc.Views == nil {
		return nil, fmt.Errorf("%w: views", ErrMissingField)
	}
	leaves := make(map[string]*layout.Leaf, len(doc.Views))
	viewNames := make([]string, 0, len(doc.Views))
	for _, view := range doc.Views {
		// Duplicate names overwrite the earlier leaf
		leaves[view.Name] = layout.NewLeaf(view.Name, views)
		viewNames = append(viewNames, view.Name)
	}

	if doc.ViewGroups == nil {
		return nil, fmt.Errorf("%w: viewGroups", ErrMissingField)
	}
	if len(doc.ViewGroups) == 0 {
		return nil, ErrNoViewGroups
	}

	b := &builder{
		leaves:    leaves,
		viewNames: viewNames,
		groups:    make(map[string]*layout.Group, len(doc.ViewGroups)),
		processed: make(map[string]*layout.Group, len(doc.ViewGroups)),
	}
	for _, vg := range doc.ViewGroups {
		b.groups[vg.Name] = layout.NewGroup(vg.Name, model.ParseOrientation(vg.Orientation))
		b.groupNames = append(b.groupNames, vg.Name)
	}

	root := b.groups[selected.RootViewGroup]
	if root == nil {
		b.drop("", model.ChildViewGroup, selected.RootViewGroup, ReasonUndeclared)
	}

	for _, vg := range doc.ViewGroups {
		b.wire(vg)
	}

	d := &Desktop{
		id:      generateBuildID(),
		name:    desktopName,
		root:    root,
		dropped: b.dropped,
	}

	for _, ref := range d.dropped {
		log.Printf("Desktop %s [%s]: %s", d.name, d.id, ref)
	}
	if cfg.strict && len(d.dropped) > 0 {
		msgs := make([]string, 0, len(d.dropped))
		for _, ref := range d.dropped {
			msgs = append(msgs, ref.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrDanglingReference, strings.Join(msgs, "; "))
	}

	log.Printf("Desktop %s [%s] built: %d views, %d view groups, %d dropped references",
		d.name, d.id, len(leaves), len(b.groups), len(d.dropped))
	return d, nil
}

// ID returns the identifier of the build that produced the desktop
func (d *Desktop) ID() string {
	return d.id
}

// Name returns the desktop name
func (d *Desktop) Name() string {
	return d.name
}

// Root returns the root view group, or nil when the desktop's view group is
// not declared
func (d *Desktop) Root() *layout.Group {
	return d.root
}

// Dropped returns the references that could not be wired
func (d *Desktop) Dropped() []DroppedReference {
	return append([]DroppedReference(nil), d.dropped...)
}

// Region resolves the desktop to a displayable object. Nil means there is
// nothing to display.
func (d *Desktop) Region() fyne.CanvasObject {
	if d == nil || d.root == nil {
		return nil
	}
	return d.root.Region()
}

// builder holds the scratch state of one Build call
type builder struct {
	leaves     map[string]*layout.Leaf
	viewNames  []string
	groups     map[string]*layout.Group
	groupNames []string
	processed  map[string]*layout.Group
	dropped    []DroppedReference
}

// wire appends the children of one view group declaration and marks it processed
func (b *builder) wire(vg model.ViewGroupSpec) {
	group := b.groups[vg.Name]
	// Only a redeclared group can already sit inside a processed subtree
	_, redeclared := b.processed[vg.Name]

	for _, child := range vg.Children {
		if !child.Type.IsKnown() {
			b.drop(vg.Name, child.Type, child.Name, ReasonUnknownType)
			continue
		}

		switch child.Type {
		case model.ChildView:
			leaf, exists := b.leaves[child.Name]
			if !exists {
				b.drop(vg.Name, child.Type, child.Name, ReasonUndeclared)
				continue
			}
			group.AddChild(leaf)

		case model.ChildViewGroup:
			target, exists := b.processed[child.Name]
			if !exists {
				if _, declared := b.groups[child.Name]; declared {
					b.drop(vg.Name, child.Type, child.Name, ReasonForward)
				} else {
					b.drop(vg.Name, child.Type, child.Name, ReasonUndeclared)
				}
				continue
			}
			if redeclared && contains(target, group, map[*layout.Group]bool{}) {
				b.drop(vg.Name, child.Type, child.Name, ReasonCycle)
				continue
			}
			group.AddChild(target)
		}
	}

	b.processed[vg.Name] = group
}

func (b *builder) drop(group string, childType model.ChildType, name string, reason DropReason) {
	ref := DroppedReference{
		Group:  group,
		Type:   childType,
		Name:   name,
		Reason: reason,
	}
	switch {
	case reason == ReasonUndeclared && childType == model.ChildView:
		ref.Suggestion = suggestName(name, b.viewNames)
	case reason == ReasonUndeclared && childType == model.ChildViewGroup:
		ref.Suggestion = suggestName(name, b.groupNames)
	}
	b.dropped = append(b.dropped, ref)
}

// contains reports whether target is node or one of its descendants.
// Shared subgroups are walked once.
func contains(node, target *layout.Group, visited map[*layout.Group]bool) bool {
	if node == target {
		return true
	}
	if visited[node] {
		return false
	}
	visited[node] = true
	for _, child := range node.Children() {
		if group, ok := child.(*layout.Group); ok && contains(group, target, visited) {
			return true
		}
	}
	return false
}

// generateBuildID generates a time-ordered build ID using UUID v7
func generateBuildID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(BuildIDPrefix+"%d", time.Now().UnixNano())
	}
	return BuildIDPrefix + id.String()
}
