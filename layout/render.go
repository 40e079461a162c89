package layout

// RenderKind identifies the type of a render command.
type RenderKind uint8

const (
	RenderRectangle    RenderKind = iota // Filled (optionally rounded) rectangle
	RenderBorder                         // Border edges
	RenderText                           // Single line of text
	RenderImage                          // Image scaled into the box
	RenderShape                          // Custom shape (circle, line)
	RenderScissorStart                   // Begin clipping to the box
	RenderScissorEnd                     // End the innermost clip
)

// renderKindNames maps RenderKind values to their string representation.
var renderKindNames = [...]string{
	RenderRectangle:    "Rectangle",
	RenderBorder:       "Border",
	RenderText:         "Text",
	RenderImage:        "Image",
	RenderShape:        "Shape",
	RenderScissorStart: "ScissorStart",
	RenderScissorEnd:   "ScissorEnd",
}

// String returns the string representation of a RenderKind.
func (k RenderKind) String() string {
	if int(k) < len(renderKindNames) {
		return renderKindNames[k]
	}
	return "Unknown"
}

// RenderCommand is one drawing instruction produced by Tree.EndLayout.
// Only the fields relevant to Kind are set.
type RenderCommand struct {
	Kind RenderKind
	ID   uint32
	Box  BoundingBox

	Color  Color
	Radius CornerRadius
	Border Border

	Text       string
	TextConfig TextConfig

	Image *Image

	Shape     Shape
	LineWidth float64

	ZIndex int16
}
