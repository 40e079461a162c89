package datasource

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/bind/layout"
)

// Image errors.
var (
	// ErrEmptyImage is returned when image data is empty.
	ErrEmptyImage = errors.New("datasource: empty image data")
)

// LoadImage loads an image from path, detecting the format from its
// content. PNG, JPEG, GIF, BMP and WebP are supported. The returned image
// is named after path.
func LoadImage(path string) (*layout.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("datasource: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, err
	}
	img.Name = path
	return img, nil
}

// LoadImageFromBytes decodes an image held in memory.
func LoadImageFromBytes(data []byte) (*layout.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	return DecodeImage(bytes.NewReader(data))
}

// DecodeImage decodes an image from r, detecting the format.
func DecodeImage(r io.Reader) (*layout.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("datasource: decode image: %w", err)
	}
	return &layout.Image{Source: src}, nil
}
