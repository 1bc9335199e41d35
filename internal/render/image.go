package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// GrayImage expands a row-major snapshot into an 8-bit grayscale image,
// white cells at full luminance and marked cells at zero.
func GrayImage(w, h int, cells []bool) (*image.Gray, error) {
	if len(cells) != w*h {
		return nil, fmt.Errorf("snapshot has %d cells, want %d", len(cells), w*h)
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i, white := range cells {
		if white {
			img.Pix[i] = 0xff
		}
	}
	return img, nil
}

// EncodePNG writes the snapshot as an 8-bit grayscale PNG.
func EncodePNG(wr io.Writer, w, h int, cells []bool) error {
	img, err := GrayImage(w, h, cells)
	if err != nil {
		return err
	}
	return png.Encode(wr, img)
}

// WritePNG encodes the snapshot into a file at path.
func WritePNG(path string, w, h int, cells []bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePNG(f, w, h, cells); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
