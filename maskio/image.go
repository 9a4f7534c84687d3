// File: maskio/image.go

package maskio

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// Image masks are grayscale: valid pixels are written white, masked
// pixels black. On load, any nonzero luminance counts as valid.

func saveImage(m *Mask, path string) error {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if m.Bits[row*m.Width+col] {
				img.SetGray(col, row, color.Gray{Y: 255})
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, nil)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func loadImage(path string) (*Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".tif" || ext == ".tiff" {
		img, err = tiff.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	m := &Mask{
		Bits:   make([]bool, bounds.Dx()*bounds.Dy()),
		Height: bounds.Dy(),
		Width:  bounds.Dx(),
	}
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			gray := color.GrayModel.Convert(img.At(bounds.Min.X+col, bounds.Min.Y+row)).(color.Gray)
			m.Bits[row*m.Width+col] = gray.Y > 0
		}
	}
	return m, nil
}
