package component

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gomorph/gomorph/pkg/vdom"
)

var (
	// ErrInvalidName is returned for names that are not valid custom
	// element names (lowercase, containing a hyphen).
	ErrInvalidName = errors.New("component: invalid component name")

	// ErrAlreadyDefined is returned when a name is registered twice.
	ErrAlreadyDefined = errors.New("component: name already defined")
)

// Component renders the subtree of its host element.
type Component interface {
	Render() *vdom.VNode
}

// AttributeObserver is implemented by components that react to attribute
// changes on their host element. A removed attribute is reported with an
// empty new value.
type AttributeObserver interface {
	AttributeChanged(name, oldValue, newValue string)
}

// Factory creates a fresh component instance for one host element.
type Factory func() Component

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *vdom.VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *vdom.VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *vdom.VNode) Component {
	return &FuncComponent{render: render}
}

// Registry maps custom element names to component factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Define registers a factory under a custom element name. The name must be
// lowercase and contain a hyphen, mirroring the host registry's rule.
func (r *Registry) Define(name string, factory Factory) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if factory == nil {
		return fmt.Errorf("component: nil factory for %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyDefined, name)
	}
	r.factories[name] = factory
	return nil
}

// Lookup returns the factory for a tag name, matched case-insensitively.
func (r *Registry) Lookup(tag string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[strings.ToLower(tag)]
	return f, ok
}

// Names returns the registered names in unspecified order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

func validName(name string) bool {
	if name == "" || name != strings.ToLower(name) {
		return false
	}
	if !strings.Contains(name, "-") {
		return false
	}
	if strings.ContainsAny(name, " \t\n<>/&\"'") {
		return false
	}
	return true
}
