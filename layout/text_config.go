package layout

// TextAlign aligns wrapped text lines.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextConfig accumulates the styling of text elements.
// Zero sizes mean "use the default".
type TextConfig struct {
	FontID     uint16
	FontSize   uint16
	LineHeight uint16
	Color      Color
	Alignment  TextAlign
	Wrap       bool
	Editable   bool
}

// NewTextConfig returns an empty text configuration.
func NewTextConfig() *TextConfig {
	return &TextConfig{}
}

// Reset restores the zero configuration.
func (c *TextConfig) Reset() *TextConfig {
	*c = TextConfig{}
	return c
}

// SetFontID selects a font.
func (c *TextConfig) SetFontID(id uint16) *TextConfig {
	c.FontID = id
	return c
}

// SetFontSize sets the font size.
func (c *TextConfig) SetFontSize(size uint16) *TextConfig {
	c.FontSize = size
	return c
}

// SetLineHeight sets the line height.
func (c *TextConfig) SetLineHeight(h uint16) *TextConfig {
	c.LineHeight = h
	return c
}

// SetColor sets the text color.
func (c *TextConfig) SetColor(col Color) *TextConfig {
	c.Color = col
	return c
}

// SetAlignment sets the line alignment.
func (c *TextConfig) SetAlignment(a TextAlign) *TextConfig {
	c.Alignment = a
	return c
}

// SetWrap toggles word wrapping.
func (c *TextConfig) SetWrap(wrap bool) *TextConfig {
	c.Wrap = wrap
	return c
}

// EffectiveFontSize returns FontSize or DefaultFontSize. A nil config has
// the default size.
func (c *TextConfig) EffectiveFontSize() float64 {
	if c == nil || c.FontSize == 0 {
		return DefaultFontSize
	}
	return float64(c.FontSize)
}

// EffectiveLineHeight returns LineHeight or 1.2 times the font size.
func (c *TextConfig) EffectiveLineHeight() float64 {
	if c != nil && c.LineHeight != 0 {
		return float64(c.LineHeight)
	}
	return c.EffectiveFontSize() * 1.2
}
