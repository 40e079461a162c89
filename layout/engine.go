package layout

import (
	"hash/fnv"
	"image"
	"unicode/utf8"
)

// Engine is the retained-mode layout engine driven by the interpreter.
//
// Elements form a tree built by balanced OpenElement/CloseElement calls.
// ConfigureElement attaches configuration to the currently open element and
// returns its identifier. Hovered and ScrollOffset answer for the currently
// open element.
type Engine interface {
	// OpenElement opens a new child of the currently open element.
	OpenElement()

	// CloseElement closes the currently open element.
	CloseElement()

	// ConfigureElement applies cfg to the currently open element and returns
	// the element's identifier. The engine copies cfg; the caller may reuse it.
	ConfigureElement(cfg *ElementConfig) uint32

	// AddTextElement adds a text leaf to the currently open element. A nil
	// cfg means the zero text configuration.
	AddTextElement(text string, cfg *TextConfig, wrap bool)

	// Hovered reports whether the pointer is over the currently open element.
	Hovered() bool

	// ElementID returns the identifier an element configured with the given
	// ID string receives.
	ElementID(name string) uint32

	// ScrollOffset returns the scroll offset of the currently open element.
	ScrollOffset() Vec2
}

// Measurer measures text for layout.
type Measurer interface {
	// Measure returns the size of text rendered with cfg on a single line.
	Measure(text string, cfg *TextConfig) Dimensions
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(text string, cfg *TextConfig) Dimensions

// Measure implements Measurer.
func (f MeasurerFunc) Measure(text string, cfg *TextConfig) Dimensions {
	return f(text, cfg)
}

// DefaultFontSize is used when a TextConfig leaves FontSize at zero.
const DefaultFontSize = 16

// FixedAdvance measures every rune as a fixed fraction of the font size.
// It is the fallback measurer of Tree and is deterministic, which makes it
// convenient in tests.
type FixedAdvance struct {
	// Advance is the per-rune advance as a fraction of the font size.
	// Zero means 0.5.
	Advance float64
}

// Measure implements Measurer.
func (f FixedAdvance) Measure(text string, cfg *TextConfig) Dimensions {
	adv := f.Advance
	if adv == 0 {
		adv = 0.5
	}
	size := cfg.EffectiveFontSize()
	return Dimensions{
		Width:  float64(utf8.RuneCountInString(text)) * size * adv,
		Height: cfg.EffectiveLineHeight(),
	}
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Dimensions is a width/height pair.
type Dimensions struct {
	Width, Height float64
}

// BoundingBox is an axis-aligned box in layout coordinates.
type BoundingBox struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside b.
func (b BoundingBox) Contains(p Vec2) bool {
	return p.X >= b.X && p.X < b.X+b.Width && p.Y >= b.Y && p.Y < b.Y+b.Height
}

// Image describes an image attached to an element.
// Source may be nil when only the name is known, e.g. for images declared
// statically in a page.
type Image struct {
	Name   string
	Source image.Image
}

// Size returns the pixel size of the image source, or zero.
func (img *Image) Size() Dimensions {
	if img == nil || img.Source == nil {
		return Dimensions{}
	}
	b := img.Source.Bounds()
	return Dimensions{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// HashID returns the identifier for an element ID string. Engines that
// support ElementID should use it so identifiers agree across engines.
func HashID(name string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return h.Sum32()
}

// childID derives the identifier of an unnamed element from its parent and
// its position among its siblings.
func childID(parent uint32, index int) uint32 {
	h := fnv.New32a()
	var buf [8]byte
	buf[0], buf[1], buf[2], buf[3] = byte(parent), byte(parent>>8), byte(parent>>16), byte(parent>>24)
	buf[4], buf[5], buf[6], buf[7] = byte(index), byte(index>>8), byte(index>>16), byte(index>>24)
	_, _ = h.Write(buf[:])
	return h.Sum32()
}
