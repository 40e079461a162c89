package datasource

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(40 * x), G: uint8(40 * y), B: 200, A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeImageFormats(t *testing.T) {
	tests := []struct {
		name   string
		encode func(io.Writer, image.Image) error
	}{
		{"png", png.Encode},
		{"jpeg", func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) }},
		{"gif", func(w io.Writer, m image.Image) error { return gif.Encode(w, m, nil) }},
		{"bmp", bmp.Encode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf, testImage(5, 3)); err != nil {
				t.Fatalf("encode: %v", err)
			}
			img, err := LoadImageFromBytes(buf.Bytes())
			if err != nil {
				t.Fatalf("LoadImageFromBytes: %v", err)
			}
			size := img.Size()
			if size.Width != 5 || size.Height != 3 {
				t.Errorf("size = %vx%v, want 5x3", size.Width, size.Height)
			}
		})
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, err := LoadImageFromBytes(nil); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty: err = %v, want ErrEmptyImage", err)
	}
	if _, err := LoadImageFromBytes([]byte("not an image")); err == nil {
		t.Error("garbage: expected error")
	}
	if _, err := LoadImage(filepath.Join(t.TempDir(), "none.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing: err = %v, want os.ErrNotExist", err)
	}
}

func TestLoadImageNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	writePNG(t, path, 4, 2)

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.Name != path {
		t.Errorf("Name = %q, want %q", img.Name, path)
	}
	if size := img.Size(); size.Width != 4 || size.Height != 2 {
		t.Errorf("size = %vx%v, want 4x2", size.Width, size.Height)
	}
}
