package measure

import (
	"sync"

	"github.com/gogpu/bind/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// OpenType measures text with golang.org/x/image/font faces, one per font
// size. It agrees with text drawn through Face, which package preview
// relies on.
type OpenType struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[uint16]font.Face
}

var _ layout.Measurer = (*OpenType)(nil)

// NewOpenType parses a TrueType or OpenType font. Nil data selects Go
// Regular.
func NewOpenType(data []byte) (*OpenType, error) {
	if data == nil {
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &OpenType{font: f, faces: make(map[uint16]font.Face)}, nil
}

// Measure implements layout.Measurer.
func (o *OpenType) Measure(text string, cfg *layout.TextConfig) layout.Dimensions {
	size := uint16(cfg.EffectiveFontSize())
	o.mu.Lock()
	defer o.mu.Unlock()
	face, err := o.face(size)
	if err != nil {
		return layout.FixedAdvance{}.Measure(text, cfg)
	}
	return layout.Dimensions{
		Width:  float64(font.MeasureString(face, text)) / 64,
		Height: cfg.EffectiveLineHeight(),
	}
}

// Face returns the face for a font size. Faces are cached and must not be
// used concurrently with Measure.
func (o *OpenType) Face(size uint16) (font.Face, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.face(size)
}

func (o *OpenType) face(size uint16) (font.Face, error) {
	if f, ok := o.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(o.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	o.faces[size] = f
	return f, nil
}
