package measure

import (
	"github.com/gogpu/bind/layout"
	"github.com/mattn/go-runewidth"
)

// Cells measures text in terminal cells. Wide runes take two cells and
// combining marks none.
type Cells struct {
	// CellWidth and CellHeight scale the result; zero means 1.
	CellWidth, CellHeight float64

	// EastAsian treats ambiguous-width runes as wide.
	EastAsian bool
}

// Measure implements layout.Measurer. The font size is ignored.
func (c Cells) Measure(text string, _ *layout.TextConfig) layout.Dimensions {
	w, h := c.CellWidth, c.CellHeight
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = c.EastAsian
	return layout.Dimensions{
		Width:  float64(cond.StringWidth(text)) * w,
		Height: h,
	}
}
