package measure

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/bind/layout"
)

// Factory creates a measurer. Factories are registered via Register and
// called by New.
type Factory func() (layout.Measurer, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

func init() {
	Register("fixed", func() (layout.Measurer, error) { return layout.FixedAdvance{}, nil })
	Register("cells", func() (layout.Measurer, error) { return Cells{}, nil })
	Register("gotext", func() (layout.Measurer, error) { return NewGoText() })
	Register("opentype", func() (layout.Measurer, error) { return NewOpenType(nil) })
}

// Register makes a measurer available by name, following the
// database/sql driver pattern:
//
//	func init() {
//	    measure.Register("mono", func() (layout.Measurer, error) {
//	        return NewMono(), nil
//	    })
//	}
//
// Register panics if factory is nil or the name is already taken.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("measure: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("measure: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a measurer. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates the measurer registered under name.
func New(name string) (layout.Measurer, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("measure: unknown measurer %q (forgotten import?)", name)
	}
	m, err := factory()
	if err != nil {
		return nil, fmt.Errorf("measure: %s: %w", name, err)
	}
	return m, nil
}

// Names returns the registered measurer names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
