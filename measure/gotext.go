package measure

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/bind"
	"github.com/gogpu/bind/layout"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// GoText measures text by shaping it with go-text/typesetting's HarfBuzz
// port, so kerning and ligatures are taken into account.
//
// Fonts are selected by TextConfig.FontID in the order they were added;
// font 0 is Go Regular unless other fonts were passed to NewGoText.
// Unknown ids fall back to font 0.
//
// GoText is safe for concurrent use. Parsed fonts are shared; faces and
// HarfbuzzShaper instances are per call, the latter pooled.
type GoText struct {
	shaperPool sync.Pool

	mu    sync.RWMutex
	fonts []*font.Font
}

var _ layout.Measurer = (*GoText)(nil)

// NewGoText creates a measurer using the given TrueType or OpenType fonts.
// Without fonts it uses Go Regular.
func NewGoText(fonts ...[]byte) (*GoText, error) {
	g := &GoText{
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	if len(fonts) == 0 {
		fonts = [][]byte{goregular.TTF}
	}
	for i, data := range fonts {
		if _, err := g.AddFont(data); err != nil {
			return nil, fmt.Errorf("font %d: %w", i, err)
		}
	}
	return g, nil
}

// AddFont parses data and returns the FontID that selects it.
func (g *GoText) AddFont(data []byte) (uint16, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fonts = append(g.fonts, face.Font)
	return uint16(len(g.fonts) - 1), nil //nolint:gosec // font count is small
}

// Measure implements layout.Measurer.
func (g *GoText) Measure(text string, cfg *layout.TextConfig) layout.Dimensions {
	dims := layout.Dimensions{Height: cfg.EffectiveLineHeight()}
	if text == "" {
		return dims
	}
	var id uint16
	if cfg != nil {
		id = cfg.FontID
	}
	f := g.font(id)
	if f == nil {
		return dims
	}

	runes := []rune(norm.NFC.String(text))
	face := font.NewFace(f)
	size := fixed.Int26_6(cfg.EffectiveFontSize() * 64)

	hb := g.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer g.shaperPool.Put(hb)

	var advance fixed.Int26_6
	for _, r := range bidiRuns(runes) {
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  r.start,
			RunEnd:    r.end,
			Direction: r.dir,
			Face:      face,
			Size:      size,
			Script:    scriptOf(runes[r.start:r.end]),
			Language:  language.NewLanguage("en"),
		})
		advance += out.Advance
	}
	if advance < 0 {
		advance = -advance
	}
	dims.Width = float64(advance) / 64
	return dims
}

func (g *GoText) font(id uint16) *font.Font {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.fonts) == 0 {
		return nil
	}
	if int(id) >= len(g.fonts) {
		bind.Logger().Debug("measure: unknown font id", "id", id, "fonts", len(g.fonts))
		id = 0
	}
	return g.fonts[id]
}

// run is a rune range [start, end) of one direction.
type run struct {
	start, end int
	dir        di.Direction
}

// bidiRuns splits runes into directional runs. Text the bidi algorithm
// cannot order is treated as one left-to-right run.
func bidiRuns(runes []rune) []run {
	whole := []run{{start: 0, end: len(runes), dir: di.DirectionLTR}}

	var p bidi.Paragraph
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	runs := make([]run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		// Pos returns inclusive rune indices.
		start, end := r.Pos()
		end++
		if start < 0 || end > len(runes) || start >= end {
			return whole
		}
		dir := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, run{start: start, end: end, dir: dir})
	}
	return runs
}

// scriptOf returns the script of the first letter in runes.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
