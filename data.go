package bind

import "github.com/gogpu/bind/layout"

// DataAccess is the read-only view of application state a pass resolves
// dynamic values against. Every lookup may be scoped by the list item
// being interpreted (list is nil outside list bodies) and reports false
// when the name is unknown; the interpreter then falls back to the type
// default.
type DataAccess[E any] interface {
	Bool(name string, list *ListContext) (bool, bool)
	Numeric(name string, list *ListContext) (float64, bool)
	Text(name string, list *ListContext) (string, bool)
	Image(name string, list *ListContext) (*layout.Image, bool)
	Color(name string, list *ListContext) (layout.Color, bool)
	Event(name string, list *ListContext) (E, bool)
	ListLength(name string, list *ListContext) (int, bool)
	TreeView(name string, list *ListContext) (*TreeViewItem[E], bool)
}

// NoData answers every lookup with "not found". Embed it to implement
// only the lookups an application exposes.
type NoData[E any] struct{}

func (NoData[E]) Bool(string, *ListContext) (bool, bool)                 { return false, false }
func (NoData[E]) Numeric(string, *ListContext) (float64, bool)           { return 0, false }
func (NoData[E]) Text(string, *ListContext) (string, bool)               { return "", false }
func (NoData[E]) Image(string, *ListContext) (*layout.Image, bool)       { return nil, false }
func (NoData[E]) Color(string, *ListContext) (layout.Color, bool)        { return layout.Color{}, false }
func (NoData[E]) ListLength(string, *ListContext) (int, bool)            { return 0, false }
func (NoData[E]) TreeView(string, *ListContext) (*TreeViewItem[E], bool) { return nil, false }

func (NoData[E]) Event(string, *ListContext) (E, bool) {
	var zero E
	return zero, false
}

// Compile-time check that NoData implements DataAccess.
var _ DataAccess[string] = NoData[string]{}
