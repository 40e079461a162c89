package bind

import (
	"fmt"

	"github.com/gogpu/bind/layout"
)

// DataSrc is a configurable value: either a literal (Static) or a name that
// is resolved against the locals and the data source during a pass
// (Dynamic). The zero value is Static(zero T).
type DataSrc[T any] struct {
	value   T
	name    string
	dynamic bool
}

// Static returns a literal DataSrc.
func Static[T any](v T) DataSrc[T] {
	return DataSrc[T]{value: v}
}

// Dynamic returns a DataSrc resolved by name at interpretation time.
func Dynamic[T any](name string) DataSrc[T] {
	return DataSrc[T]{name: name, dynamic: true}
}

// IsDynamic reports whether s is a named reference.
func (s DataSrc[T]) IsDynamic() bool { return s.dynamic }

// Name returns the referenced name of a Dynamic source, or "".
func (s DataSrc[T]) Name() string { return s.name }

// Value returns the literal of a Static source, or the zero value.
func (s DataSrc[T]) Value() T { return s.value }

// String formats dynamic sources as "$name" and static ones with %v.
func (s DataSrc[T]) String() string {
	if s.dynamic {
		return "$" + s.name
	}
	return fmt.Sprintf("%v", s.value)
}

// DeclKind identifies the variant held by a Declaration.
type DeclKind uint8

const (
	DeclBool DeclKind = iota
	DeclNumeric
	DeclText
	DeclColor
	DeclEvent
	DeclImage
)

var declKindNames = [...]string{
	DeclBool:    "bool",
	DeclNumeric: "numeric",
	DeclText:    "text",
	DeclColor:   "color",
	DeclEvent:   "event",
	DeclImage:   "image",
}

// String returns the string representation of a DeclKind.
func (k DeclKind) String() string {
	if int(k) < len(declKindNames) {
		return declKindNames[k]
	}
	return "unknown"
}

// DeclKindByName returns the DeclKind named name.
func DeclKindByName(name string) (DeclKind, bool) {
	for k, n := range declKindNames {
		if n == name {
			return DeclKind(k), true
		}
	}
	return 0, false
}

// Declaration is the value a local name is bound to. Only the field
// selected by Kind is meaningful; image declarations keep the image name
// in Text.
type Declaration[E any] struct {
	Kind    DeclKind
	Bool    bool
	Numeric float64
	Text    string
	Color   layout.Color
	Event   E
}

// BoolDecl declares a boolean.
func BoolDecl[E any](v bool) Declaration[E] {
	return Declaration[E]{Kind: DeclBool, Bool: v}
}

// NumericDecl declares a number.
func NumericDecl[E any](v float64) Declaration[E] {
	return Declaration[E]{Kind: DeclNumeric, Numeric: v}
}

// TextDecl declares a string.
func TextDecl[E any](v string) Declaration[E] {
	return Declaration[E]{Kind: DeclText, Text: v}
}

// ColorDecl declares a color.
func ColorDecl[E any](v layout.Color) Declaration[E] {
	return Declaration[E]{Kind: DeclColor, Color: v}
}

// EventDecl declares an event.
func EventDecl[E any](v E) Declaration[E] {
	return Declaration[E]{Kind: DeclEvent, Event: v}
}

// ImageDecl declares an image by name.
func ImageDecl[E any](name string) Declaration[E] {
	return Declaration[E]{Kind: DeclImage, Text: name}
}

func (d Declaration[E]) String() string {
	switch d.Kind {
	case DeclBool:
		return fmt.Sprintf("bool(%t)", d.Bool)
	case DeclNumeric:
		return fmt.Sprintf("numeric(%g)", d.Numeric)
	case DeclText:
		return fmt.Sprintf("text(%q)", d.Text)
	case DeclColor:
		return fmt.Sprintf("color(%s)", d.Color)
	case DeclEvent:
		return fmt.Sprintf("event(%v)", d.Event)
	case DeclImage:
		return fmt.Sprintf("image(%q)", d.Text)
	}
	return "unknown"
}

// Locals is a local scope: the Declarations introduced at the start of a
// List, Use, TreeView or TextBox body. A nil Locals is an empty scope.
// Scopes never merge with the enclosing one.
type Locals[E any] map[string]*DataSrc[Declaration[E]]

// ListContext identifies the list item being interpreted. It is nil
// outside list bodies.
type ListContext struct {
	Source string
	Index  int
}

func (l *ListContext) String() string {
	if l == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s[%d]", l.Source, l.Index)
}
