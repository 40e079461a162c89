package layout

// SizingKind selects how an element is sized along one axis.
type SizingKind uint8

const (
	SizingFit     SizingKind = iota // Shrink-wrap content, clamped to Min/Max
	SizingGrow                      // Fill remaining space, clamped to Min/Max
	SizingFixed                     // Exactly Min
	SizingPercent                   // Percent of the parent's inner size
)

var sizingNames = [...]string{
	SizingFit:     "fit",
	SizingGrow:    "grow",
	SizingFixed:   "fixed",
	SizingPercent: "percent",
}

// String returns the string representation of a SizingKind.
func (k SizingKind) String() string {
	if int(k) < len(sizingNames) {
		return sizingNames[k]
	}
	return "unknown"
}

// Sizing describes the sizing of one axis. A Max of zero means unbounded.
// Percent is a fraction in [0, 1].
type Sizing struct {
	Kind     SizingKind
	Min, Max float64
	Percent  float64
}

// clamp restricts v to the sizing bounds.
func (s Sizing) clamp(v float64) float64 {
	if v < s.Min {
		v = s.Min
	}
	if s.Max > 0 && v > s.Max {
		v = s.Max
	}
	return v
}

// Padding is the inner spacing of an element in layout units.
type Padding struct {
	Left, Right, Top, Bottom uint16
}

// Direction is the axis children are laid out along.
type Direction uint8

const (
	LeftToRight Direction = iota
	TopToBottom
)

// AlignX aligns children horizontally.
type AlignX uint8

const (
	AlignXLeft AlignX = iota
	AlignXCenter
	AlignXRight
)

// AlignY aligns children vertically.
type AlignY uint8

const (
	AlignYTop AlignY = iota
	AlignYCenter
	AlignYBottom
)

// CornerRadius holds per-corner radii.
type CornerRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Border describes element borders. BetweenChildren draws separators
// between children along the layout direction.
type Border struct {
	Color                    Color
	Left, Right, Top, Bottom uint16
	BetweenChildren          uint16
}

// Visible reports whether any border edge has a width.
func (b Border) Visible() bool {
	return b.Left|b.Right|b.Top|b.Bottom|b.BetweenChildren != 0
}

// Clip makes an element clip its children, optionally per axis, and
// scroll them by Offset.
type Clip struct {
	Horizontal, Vertical bool
	Offset               Vec2
}

// Enabled reports whether clipping is active on any axis.
func (c Clip) Enabled() bool {
	return c.Horizontal || c.Vertical
}

// AttachPoint names one of nine anchor points of a box.
type AttachPoint uint8

const (
	AttachLeftTop AttachPoint = iota
	AttachLeftCenter
	AttachLeftBottom
	AttachCenterTop
	AttachCenterCenter
	AttachCenterBottom
	AttachRightTop
	AttachRightCenter
	AttachRightBottom
)

// fractions returns the anchor as fractions of width and height.
func (p AttachPoint) fractions() (fx, fy float64) {
	fx = float64(p/3) / 2
	fy = float64(p%3) / 2
	return fx, fy
}

// AttachTo selects what a floating element is positioned against.
type AttachTo uint8

const (
	AttachNone    AttachTo = iota // Not floating
	AttachParent                  // The parent element
	AttachElement                 // The element identified by Floating.ParentID
	AttachRoot                    // The layout root
)

// Floating describes an element removed from the normal flow.
type Floating struct {
	AttachTo           AttachTo
	ParentID           uint32
	Element, Parent    AttachPoint
	Offset             Vec2
	Expand             Dimensions
	ZIndex             int16
	PointerPassThrough bool
}

// Shape selects a custom element drawn instead of a plain rectangle.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeCircle
	ShapeLine
)

// ElementConfig accumulates the configuration of one element.
// The zero value is a valid default configuration.
type ElementConfig struct {
	ID string

	Width, Height Sizing
	Padding       Padding
	ChildGap      uint16
	Direction     Direction
	AlignX        AlignX
	AlignY        AlignY

	Color    Color
	Radius   CornerRadius
	Border   Border
	Clip     Clip
	Image    *Image
	Floating Floating

	Shape     Shape
	LineWidth float64
}

// NewElementConfig returns an empty configuration.
func NewElementConfig() *ElementConfig {
	return &ElementConfig{}
}

// Reset restores the zero configuration.
func (c *ElementConfig) Reset() *ElementConfig {
	*c = ElementConfig{}
	return c
}

// SetID names the element so it can be found with Engine.ElementID.
func (c *ElementConfig) SetID(id string) *ElementConfig {
	c.ID = id
	return c
}

// GrowAll makes the element grow on both axes.
func (c *ElementConfig) GrowAll() *ElementConfig {
	c.Width = Sizing{Kind: SizingGrow}
	c.Height = Sizing{Kind: SizingGrow}
	return c
}

// GrowX makes the width grow into the remaining space within [min, max].
func (c *ElementConfig) GrowX(min, max float64) *ElementConfig {
	c.Width = Sizing{Kind: SizingGrow, Min: min, Max: max}
	return c
}

// GrowY makes the height grow into the remaining space within [min, max].
func (c *ElementConfig) GrowY(min, max float64) *ElementConfig {
	c.Height = Sizing{Kind: SizingGrow, Min: min, Max: max}
	return c
}

// FitX shrink-wraps the width within [min, max].
func (c *ElementConfig) FitX(min, max float64) *ElementConfig {
	c.Width = Sizing{Kind: SizingFit, Min: min, Max: max}
	return c
}

// FitY shrink-wraps the height within [min, max].
func (c *ElementConfig) FitY(min, max float64) *ElementConfig {
	c.Height = Sizing{Kind: SizingFit, Min: min, Max: max}
	return c
}

// FixedX fixes the width.
func (c *ElementConfig) FixedX(size float64) *ElementConfig {
	c.Width = Sizing{Kind: SizingFixed, Min: size, Max: size}
	return c
}

// FixedY fixes the height.
func (c *ElementConfig) FixedY(size float64) *ElementConfig {
	c.Height = Sizing{Kind: SizingFixed, Min: size, Max: size}
	return c
}

// PercentX sizes the width as a fraction of the parent's inner width.
func (c *ElementConfig) PercentX(p float64) *ElementConfig {
	c.Width = Sizing{Kind: SizingPercent, Percent: p}
	return c
}

// PercentY sizes the height as a fraction of the parent's inner height.
func (c *ElementConfig) PercentY(p float64) *ElementConfig {
	c.Height = Sizing{Kind: SizingPercent, Percent: p}
	return c
}

// SetPaddingAll sets all four paddings.
func (c *ElementConfig) SetPaddingAll(p uint16) *ElementConfig {
	c.Padding = Padding{Left: p, Right: p, Top: p, Bottom: p}
	return c
}

// SetPaddingTop sets the top padding.
func (c *ElementConfig) SetPaddingTop(p uint16) *ElementConfig {
	c.Padding.Top = p
	return c
}

// SetPaddingBottom sets the bottom padding.
func (c *ElementConfig) SetPaddingBottom(p uint16) *ElementConfig {
	c.Padding.Bottom = p
	return c
}

// SetPaddingLeft sets the left padding.
func (c *ElementConfig) SetPaddingLeft(p uint16) *ElementConfig {
	c.Padding.Left = p
	return c
}

// SetPaddingRight sets the right padding.
func (c *ElementConfig) SetPaddingRight(p uint16) *ElementConfig {
	c.Padding.Right = p
	return c
}

// SetChildGap sets the gap between children along the layout direction.
func (c *ElementConfig) SetChildGap(gap uint16) *ElementConfig {
	c.ChildGap = gap
	return c
}

// SetDirection sets the layout direction.
func (c *ElementConfig) SetDirection(d Direction) *ElementConfig {
	c.Direction = d
	return c
}

// SetAlignX sets the horizontal child alignment.
func (c *ElementConfig) SetAlignX(a AlignX) *ElementConfig {
	c.AlignX = a
	return c
}

// SetAlignY sets the vertical child alignment.
func (c *ElementConfig) SetAlignY(a AlignY) *ElementConfig {
	c.AlignY = a
	return c
}

// SetColor sets the background color.
func (c *ElementConfig) SetColor(col Color) *ElementConfig {
	c.Color = col
	return c
}

// SetRadiusAll sets all corner radii.
func (c *ElementConfig) SetRadiusAll(r float64) *ElementConfig {
	c.Radius = CornerRadius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
	return c
}

// SetRadiusTopLeft sets the top-left corner radius.
func (c *ElementConfig) SetRadiusTopLeft(r float64) *ElementConfig {
	c.Radius.TopLeft = r
	return c
}

// SetRadiusTopRight sets the top-right corner radius.
func (c *ElementConfig) SetRadiusTopRight(r float64) *ElementConfig {
	c.Radius.TopRight = r
	return c
}

// SetRadiusBottomRight sets the bottom-right corner radius.
func (c *ElementConfig) SetRadiusBottomRight(r float64) *ElementConfig {
	c.Radius.BottomRight = r
	return c
}

// SetRadiusBottomLeft sets the bottom-left corner radius.
func (c *ElementConfig) SetRadiusBottomLeft(r float64) *ElementConfig {
	c.Radius.BottomLeft = r
	return c
}

// SetBorderColor sets the border color.
func (c *ElementConfig) SetBorderColor(col Color) *ElementConfig {
	c.Border.Color = col
	return c
}

// SetBorderAll sets the width of all four border edges.
func (c *ElementConfig) SetBorderAll(w uint16) *ElementConfig {
	c.Border.Left, c.Border.Right, c.Border.Top, c.Border.Bottom = w, w, w, w
	return c
}

// SetBorderTop sets the top border width.
func (c *ElementConfig) SetBorderTop(w uint16) *ElementConfig {
	c.Border.Top = w
	return c
}

// SetBorderBottom sets the bottom border width.
func (c *ElementConfig) SetBorderBottom(w uint16) *ElementConfig {
	c.Border.Bottom = w
	return c
}

// SetBorderLeft sets the left border width.
func (c *ElementConfig) SetBorderLeft(w uint16) *ElementConfig {
	c.Border.Left = w
	return c
}

// SetBorderRight sets the right border width.
func (c *ElementConfig) SetBorderRight(w uint16) *ElementConfig {
	c.Border.Right = w
	return c
}

// SetBorderBetweenChildren sets the separator width between children.
func (c *ElementConfig) SetBorderBetweenChildren(w uint16) *ElementConfig {
	c.Border.BetweenChildren = w
	return c
}

// SetClip enables clipping per axis and records the current scroll offset.
func (c *ElementConfig) SetClip(vertical, horizontal bool, offset Vec2) *ElementConfig {
	c.Clip = Clip{Vertical: vertical, Horizontal: horizontal, Offset: offset}
	return c
}

// SetImage attaches an image.
func (c *ElementConfig) SetImage(img *Image) *ElementConfig {
	c.Image = img
	return c
}

// SetFloating removes the element from the flow, attached to its parent
// unless an attach target was already chosen.
func (c *ElementConfig) SetFloating() *ElementConfig {
	if c.Floating.AttachTo == AttachNone {
		c.Floating.AttachTo = AttachParent
	}
	return c
}

// SetFloatingOffset offsets a floating element from its anchor.
func (c *ElementConfig) SetFloatingOffset(x, y float64) *ElementConfig {
	c.Floating.Offset = Vec2{X: x, Y: y}
	return c
}

// SetFloatingDimensions expands a floating element beyond its content size.
func (c *ElementConfig) SetFloatingDimensions(w, h float64) *ElementConfig {
	c.Floating.Expand = Dimensions{Width: w, Height: h}
	return c
}

// SetFloatingZIndex orders floating elements; higher draws later.
func (c *ElementConfig) SetFloatingZIndex(z int16) *ElementConfig {
	c.Floating.ZIndex = z
	return c
}

// AttachToParentAt anchors the floating element at point p of its target.
func (c *ElementConfig) AttachToParentAt(p AttachPoint) *ElementConfig {
	c.Floating.Parent = p
	return c.SetFloating()
}

// AttachElementAt selects which point of the floating element is anchored.
func (c *ElementConfig) AttachElementAt(p AttachPoint) *ElementConfig {
	c.Floating.Element = p
	return c.SetFloating()
}

// SetFloatingPointerPassThrough lets pointer queries ignore the element.
func (c *ElementConfig) SetFloatingPointerPassThrough() *ElementConfig {
	c.Floating.PointerPassThrough = true
	return c
}

// AttachToElement floats the element against the element with the given id.
func (c *ElementConfig) AttachToElement(id uint32) *ElementConfig {
	c.Floating.AttachTo = AttachElement
	c.Floating.ParentID = id
	return c
}

// AttachToRoot floats the element against the layout root.
func (c *ElementConfig) AttachToRoot() *ElementConfig {
	c.Floating.AttachTo = AttachRoot
	return c
}

// SetShape draws the element as a custom shape.
func (c *ElementConfig) SetShape(s Shape, lineWidth float64) *ElementConfig {
	c.Shape = s
	c.LineWidth = lineWidth
	return c
}
