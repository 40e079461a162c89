package bind

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/bind/layout"
)

// Binder holds named pages and reusable fragments and runs one pass per
// redraw over the active page.
//
// Registry methods may be called from any goroutine. A pass holds a read
// lock for its duration, so a hot swap waits for the running pass and the
// next pass sees the new commands. Command sequences must not be mutated
// after registration.
type Binder[E any] struct {
	mu        sync.RWMutex
	pages     map[string][]Command[E]
	fragments map[string][]Command[E]
}

// NewBinder returns an empty Binder.
func NewBinder[E any]() *Binder[E] {
	return &Binder[E]{
		pages:     make(map[string][]Command[E]),
		fragments: make(map[string][]Command[E]),
	}
}

// AddPage registers a page. The first registration of a name wins; later
// ones return ErrExists.
func (b *Binder[E]) AddPage(name string, cmds []Command[E]) error {
	return b.add(b.pages, "page", name, cmds)
}

// AddFragment registers a reusable fragment for Use. The first
// registration of a name wins; later ones return ErrExists.
func (b *Binder[E]) AddFragment(name string, cmds []Command[E]) error {
	return b.add(b.fragments, "fragment", name, cmds)
}

// ReplacePage swaps the commands of a registered page. It returns
// ErrNotFound if the page does not exist.
func (b *Binder[E]) ReplacePage(name string, cmds []Command[E]) error {
	return b.replace(b.pages, "page", name, cmds)
}

// ReplaceFragment swaps the commands of a registered fragment. It returns
// ErrNotFound if the fragment does not exist.
func (b *Binder[E]) ReplaceFragment(name string, cmds []Command[E]) error {
	return b.replace(b.fragments, "fragment", name, cmds)
}

// RemovePage unregisters a page. It returns ErrNotFound if the page does
// not exist.
func (b *Binder[E]) RemovePage(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.pages[name]; !ok {
		return fmt.Errorf("%w: page %q", ErrNotFound, name)
	}
	delete(b.pages, name)
	return nil
}

// Pages returns the registered page names in sorted order.
func (b *Binder[E]) Pages() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.pages))
	for name := range b.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Page returns the commands of a page.
func (b *Binder[E]) Page(name string) ([]Command[E], bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	cmds, ok := b.pages[name]
	return cmds, ok
}

// Fragment returns the commands of a fragment.
func (b *Binder[E]) Fragment(name string) ([]Command[E], bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	cmds, ok := b.fragments[name]
	return cmds, ok
}

// Run interprets the named page once against engine and data. Events are
// returned, not dispatched. It returns ErrNotFound for unknown pages.
func (b *Binder[E]) Run(page string, engine layout.Engine, data DataAccess[E], input Input) (Result[E], error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cmds, ok := b.pages[page]
	if !ok {
		return Result[E]{}, fmt.Errorf("%w: page %q", ErrNotFound, page)
	}
	return Interpret(cmds, b.fragments, engine, data, input), nil
}

// Frame runs the page and then dispatches its events to d, after the pass
// has completed and the registry lock is released.
func (b *Binder[E]) Frame(page string, engine layout.Engine, data DataAccess[E], input Input, d Dispatcher[E]) (Result[E], error) {
	res, err := b.Run(page, engine, data, input)
	if err != nil {
		return res, err
	}
	res.Dispatch(d)
	return res, nil
}

func (b *Binder[E]) add(m map[string][]Command[E], kind, name string, cmds []Command[E]) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := m[name]; dup {
		return fmt.Errorf("%w: %s %q", ErrExists, kind, name)
	}
	m[name] = cmds
	Logger().Info("bind: registered", "kind", kind, "name", name, "commands", len(cmds))
	return nil
}

func (b *Binder[E]) replace(m map[string][]Command[E], kind, name string, cmds []Command[E]) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := m[name]; !ok {
		return fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
	}
	m[name] = cmds
	Logger().Info("bind: replaced", "kind", kind, "name", name, "commands", len(cmds))
	return nil
}
