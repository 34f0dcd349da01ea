package registry

import (
	"sort"
	"sync"

	"fyne.io/fyne/v2"
)

// Registry holds named views supplied by the host
type Registry struct {
	views      map[string]fyne.CanvasObject
	viewsMutex sync.RWMutex
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		views: make(map[string]fyne.CanvasObject),
	}
}

// Register inserts or overwrites the view for name. Registering a nil view
// removes the name.
func (r *Registry) Register(name string, view fyne.CanvasObject) {
	r.viewsMutex.Lock()
	defer r.viewsMutex.Unlock()

	if view == nil {
		delete(r.views, name)
		return
	}
	r.views[name] = view
}

// Resolve returns the view registered for name
func (r *Registry) Resolve(name string) (fyne.CanvasObject, bool) {
	r.viewsMutex.RLock()
	defer r.viewsMutex.RUnlock()
	view, exists := r.views[name]
	return view, exists
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	r.viewsMutex.RLock()
	defer r.viewsMutex.RUnlock()

	names := make([]string, 0, len(r.views))
	for name := range r.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered views
func (r *Registry) Len() int {
	r.viewsMutex.RLock()
	defer r.viewsMutex.RUnlock()
	return len(r.views)
}
