package bind

import (
	"math"

	"github.com/gogpu/bind/layout"
)

// DefaultText is what unresolved text references resolve to.
const DefaultText = ":("

// resolveName resolves a bare reference:
//
//  1. A local bound to a dynamic reference is looked up under the inner
//     name; a miss yields def.
//  2. A local bound to a static declaration of the right variant yields its
//     value; any other variant yields def.
//  3. Without a local, the data source is asked for name itself.
func resolveName[E, T any](
	name string,
	locals Locals[E],
	list *ListContext,
	get func(string, *ListContext) (T, bool),
	extract func(*Declaration[E]) (T, bool),
	def T,
) T {
	if local, ok := locals[name]; ok && local != nil {
		if local.IsDynamic() {
			if v, ok := get(local.Name(), list); ok {
				return v
			}
			return def
		}
		d := local.Value()
		if v, ok := extract(&d); ok {
			return v
		}
		return def
	}
	if v, ok := get(name, list); ok {
		return v
	}
	return def
}

// resolveSrc resolves a DataSrc: statics are returned as is, dynamics go
// through resolveName.
func resolveSrc[E, T any](
	src DataSrc[T],
	locals Locals[E],
	list *ListContext,
	get func(string, *ListContext) (T, bool),
	extract func(*Declaration[E]) (T, bool),
	def T,
) T {
	if !src.IsDynamic() {
		return src.Value()
	}
	return resolveName(src.Name(), locals, list, get, extract, def)
}

func declBool[E any](d *Declaration[E]) (bool, bool) {
	return d.Bool, d.Kind == DeclBool
}

func declNumeric[E any](d *Declaration[E]) (float64, bool) {
	return d.Numeric, d.Kind == DeclNumeric
}

func declText[E any](d *Declaration[E]) (string, bool) {
	return d.Text, d.Kind == DeclText
}

func declColor[E any](d *Declaration[E]) (layout.Color, bool) {
	return d.Color, d.Kind == DeclColor
}

func declEvent[E any](d *Declaration[E]) (E, bool) {
	return d.Event, d.Kind == DeclEvent
}

func declImage[E any](d *Declaration[E]) (*layout.Image, bool) {
	if d.Kind != DeclImage {
		return nil, false
	}
	return &layout.Image{Name: d.Text}, true
}

// resolver binds the scope of one walk: data source, locals and list
// context.
type resolver[E any] struct {
	data   DataAccess[E]
	locals Locals[E]
	list   *ListContext
}

func (r *resolver[E]) bool(src DataSrc[bool]) bool {
	return resolveSrc(src, r.locals, r.list, r.data.Bool, declBool[E], false)
}

func (r *resolver[E]) boolName(name string) bool {
	return resolveName(name, r.locals, r.list, r.data.Bool, declBool[E], false)
}

func (r *resolver[E]) number(src DataSrc[float64]) float64 {
	return resolveSrc(src, r.locals, r.list, r.data.Numeric, declNumeric[E], 0)
}

func (r *resolver[E]) u16(src DataSrc[float64]) uint16 {
	return toUint16(r.number(src))
}

func (r *resolver[E]) i16(src DataSrc[float64]) int16 {
	return toInt16(r.number(src))
}

func (r *resolver[E]) text(src DataSrc[string]) string {
	return r.textOr(src, DefaultText)
}

func (r *resolver[E]) textOr(src DataSrc[string], def string) string {
	return resolveSrc(src, r.locals, r.list, r.data.Text, declText[E], def)
}

func (r *resolver[E]) color(src DataSrc[layout.Color]) layout.Color {
	return resolveSrc(src, r.locals, r.list, r.data.Color, declColor[E], layout.Color{})
}

func (r *resolver[E]) event(src DataSrc[E]) E {
	var zero E
	return resolveSrc(src, r.locals, r.list, r.data.Event, declEvent[E], zero)
}

func (r *resolver[E]) image(name string) *layout.Image {
	return resolveName(name, r.locals, r.list, r.data.Image, declImage[E], nil)
}

// scoped returns a resolver over the same data and list with other locals.
func (r *resolver[E]) scoped(locals Locals[E]) *resolver[E] {
	return &resolver[E]{data: r.data, locals: locals, list: r.list}
}

// toUint16 truncates toward zero and saturates at the uint16 bounds.
// NaN maps to 0.
func toUint16(v float64) uint16 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(v)
}

// toInt16 truncates toward zero and saturates at the int16 bounds.
// NaN maps to 0.
func toInt16(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= math.MinInt16:
		return math.MinInt16
	case v >= math.MaxInt16:
		return math.MaxInt16
	}
	return int16(v)
}
