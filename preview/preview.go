package preview

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/bind"
	"github.com/gogpu/bind/layout"
	"github.com/gogpu/bind/measure"
)

// ErrBadSize is returned by Render for empty or negative image sizes.
var ErrBadSize = errors.New("preview: invalid image size")

// FaceSource supplies font faces by pixel size. measure.OpenType
// implements it.
type FaceSource interface {
	Face(size uint16) (font.Face, error)
}

// Renderer draws render commands. A Renderer is not safe for concurrent
// use when its FaceSource is not.
type Renderer struct {
	// Background fills the image before drawing. The zero color leaves
	// it transparent.
	Background layout.Color

	faces FaceSource
}

// NewRenderer returns a Renderer drawing text with faces. Nil faces
// selects Go Regular through measure.OpenType.
func NewRenderer(faces FaceSource) *Renderer {
	return &Renderer{faces: faces}
}

// Render draws cmds, in order, into a new width x height image.
func (r *Renderer) Render(cmds []layout.RenderCommand, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}
	if r.faces == nil {
		ot, err := measure.NewOpenType(nil)
		if err != nil {
			return nil, fmt.Errorf("preview: default font: %w", err)
		}
		r.faces = ot
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if r.Background.Visible() {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(r.Background.Std()), image.Point{}, draw.Src)
	}

	c := &canvas{dst: dst, faces: r.faces, clips: []image.Rectangle{dst.Bounds()}}
	for i := range cmds {
		if err := c.draw(&cmds[i]); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// WritePNG renders cmds and encodes the result as PNG to w.
func (r *Renderer) WritePNG(w io.Writer, cmds []layout.RenderCommand, width, height int) error {
	img, err := r.Render(cmds, width, height)
	if err != nil {
		return err
	}
	return EncodePNG(w, img)
}

// canvas is the state of one Render call.
type canvas struct {
	dst   *image.RGBA
	faces FaceSource
	clips []image.Rectangle
}

// target returns the destination clipped to the innermost scissor.
func (c *canvas) target() *image.RGBA {
	return c.dst.SubImage(c.clips[len(c.clips)-1]).(*image.RGBA)
}

func (c *canvas) draw(cmd *layout.RenderCommand) error {
	switch cmd.Kind {
	case layout.RenderRectangle:
		c.fill(cmd.Box, cmd.Radius, cmd.Color)
	case layout.RenderBorder:
		c.border(cmd.Box, cmd.Border, cmd.Radius)
	case layout.RenderImage:
		c.image(cmd.Box, cmd.Image)
	case layout.RenderShape:
		c.shape(cmd)
	case layout.RenderText:
		return c.text(cmd)
	case layout.RenderScissorStart:
		clip := pixelRect(cmd.Box).Intersect(c.clips[len(c.clips)-1])
		c.clips = append(c.clips, clip)
	case layout.RenderScissorEnd:
		if len(c.clips) > 1 {
			c.clips = c.clips[:len(c.clips)-1]
		}
	default:
		bind.Logger().Debug("preview: unknown render command", "kind", cmd.Kind)
	}
	return nil
}

func (c *canvas) fill(box layout.BoundingBox, radius layout.CornerRadius, col layout.Color) {
	if !col.Visible() {
		return
	}
	src := image.NewUniform(col.Std())
	if radius == (layout.CornerRadius{}) {
		dst := c.target()
		draw.Draw(dst, pixelRect(box), src, image.Point{}, draw.Over)
		return
	}
	c.cover(box, src, func(px, py float64) float64 {
		return rrectCoverage(px, py, box, radius)
	})
}

// cover blends src through a coverage mask computed for each pixel of box.
func (c *canvas) cover(box layout.BoundingBox, src image.Image, cov func(px, py float64) float64) {
	dst := c.target()
	r := pixelRect(box).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	mask := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := cov(float64(x)+0.5, float64(y)+0.5)
			mask.Pix[mask.PixOffset(x, y)] = uint8(math.Round(a * 255))
		}
	}
	draw.DrawMask(dst, r, src, image.Point{}, mask, r.Min, draw.Over)
}

// border draws the edges of box inside it. Separators between children
// are not drawn; their positions are not part of the command.
func (c *canvas) border(box layout.BoundingBox, b layout.Border, radius layout.CornerRadius) {
	if !b.Color.Visible() {
		return
	}
	left, right := float64(b.Left), float64(b.Right)
	top, bottom := float64(b.Top), float64(b.Bottom)
	src := image.NewUniform(b.Color.Std())

	if radius == (layout.CornerRadius{}) {
		dst := c.target()
		edges := []layout.BoundingBox{
			{X: box.X, Y: box.Y, Width: box.Width, Height: top},
			{X: box.X, Y: box.Y + box.Height - bottom, Width: box.Width, Height: bottom},
			{X: box.X, Y: box.Y + top, Width: left, Height: box.Height - top - bottom},
			{X: box.X + box.Width - right, Y: box.Y + top, Width: right, Height: box.Height - top - bottom},
		}
		for _, e := range edges {
			if e.Width > 0 && e.Height > 0 {
				draw.Draw(dst, pixelRect(e), src, image.Point{}, draw.Over)
			}
		}
		return
	}

	inner := layout.BoundingBox{
		X: box.X + left, Y: box.Y + top,
		Width: box.Width - left - right, Height: box.Height - top - bottom,
	}
	shrink := math.Max(math.Max(left, right), math.Max(top, bottom))
	innerRadius := layout.CornerRadius{
		TopLeft:     math.Max(0, radius.TopLeft-shrink),
		TopRight:    math.Max(0, radius.TopRight-shrink),
		BottomRight: math.Max(0, radius.BottomRight-shrink),
		BottomLeft:  math.Max(0, radius.BottomLeft-shrink),
	}
	c.cover(box, src, func(px, py float64) float64 {
		outer := rrectCoverage(px, py, box, radius)
		if inner.Width <= 0 || inner.Height <= 0 {
			return outer
		}
		return outer * (1 - rrectCoverage(px, py, inner, innerRadius))
	})
}

func (c *canvas) image(box layout.BoundingBox, img *layout.Image) {
	if img == nil || img.Source == nil {
		return
	}
	draw.ApproxBiLinear.Scale(c.target(), pixelRect(box), img.Source, img.Source.Bounds(), draw.Over, nil)
}

// shape draws a circle inscribed in the box, or a line through its center
// along its longer side.
func (c *canvas) shape(cmd *layout.RenderCommand) {
	if !cmd.Color.Visible() {
		return
	}
	box := cmd.Box
	src := image.NewUniform(cmd.Color.Std())

	switch cmd.Shape {
	case layout.ShapeCircle:
		cx, cy := box.X+box.Width/2, box.Y+box.Height/2
		radius := math.Min(box.Width, box.Height) / 2
		c.cover(box, src, func(px, py float64) float64 {
			return circleCoverage(px, py, cx, cy, radius)
		})
	case layout.ShapeLine:
		w := math.Max(1, cmd.LineWidth)
		line := layout.BoundingBox{X: box.X + (box.Width-w)/2, Y: box.Y, Width: w, Height: box.Height}
		if box.Width > box.Height {
			line = layout.BoundingBox{X: box.X, Y: box.Y + (box.Height-w)/2, Width: box.Width, Height: w}
		}
		draw.Draw(c.target(), pixelRect(line), src, image.Point{}, draw.Over)
	}
}

// text draws the lines of cmd.Text in its box. Text with the zero color
// is drawn black; wrapping text is broken at spaces to fit the box.
func (c *canvas) text(cmd *layout.RenderCommand) error {
	cfg := &cmd.TextConfig
	face, err := c.faces.Face(uint16(cfg.EffectiveFontSize()))
	if err != nil {
		return fmt.Errorf("preview: face: %w", err)
	}

	col := cmd.Color
	if col.IsZero() {
		col = layout.Black
	}
	d := &font.Drawer{Dst: c.target(), Src: image.NewUniform(col.Std()), Face: face}

	var lines []string
	for _, line := range strings.Split(cmd.Text, "\n") {
		if cfg.Wrap {
			lines = append(lines, wrap(face, line, cmd.Box.Width)...)
		} else {
			lines = append(lines, line)
		}
	}

	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	glyphHeight := float64(m.Ascent+m.Descent) / 64
	lineHeight := cfg.EffectiveLineHeight()

	for i, line := range lines {
		width := float64(font.MeasureString(face, line)) / 64
		x := cmd.Box.X
		switch cfg.Alignment {
		case layout.TextAlignCenter:
			x += (cmd.Box.Width - width) / 2
		case layout.TextAlignRight:
			x += cmd.Box.Width - width
		}
		y := cmd.Box.Y + float64(i)*lineHeight + (lineHeight-glyphHeight)/2 + ascent
		d.Dot = fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
		d.DrawString(line)
	}
	return nil
}

// wrap breaks line at spaces so that each piece fits width when possible.
func wrap(face font.Face, line string, width float64) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}
	var (
		out []string
		cur = words[0]
	)
	for _, w := range words[1:] {
		next := cur + " " + w
		if float64(font.MeasureString(face, next))/64 > width {
			out = append(out, cur)
			cur = w
			continue
		}
		cur = next
	}
	return append(out, cur)
}

// pixelRect returns the smallest pixel rectangle covering b.
func pixelRect(b layout.BoundingBox) image.Rectangle {
	return image.Rect(
		int(math.Floor(b.X)), int(math.Floor(b.Y)),
		int(math.Ceil(b.X+b.Width)), int(math.Ceil(b.Y+b.Height)),
	)
}
