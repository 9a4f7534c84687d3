// File: maskio/mask.go

package maskio

import "fmt"

// Mask is a detector validity mask: true marks a valid pixel, false a
// masked-out one. Bits is stored row-major.
type Mask struct {
	Bits   []bool
	Height int
	Width  int
}

// New returns an all-valid mask of the given size.
func New(height, width int) (*Mask, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid mask size %dx%d", height, width)
	}
	bits := make([]bool, height*width)
	for i := range bits {
		bits[i] = true
	}
	return &Mask{Bits: bits, Height: height, Width: width}, nil
}

// At reports whether the pixel at (row, col) is valid. Out-of-range
// coordinates are invalid.
func (m *Mask) At(row, col int) bool {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return false
	}
	return m.Bits[row*m.Width+col]
}

// Set marks the pixel at (row, col). Out-of-range coordinates are
// ignored.
func (m *Mask) Set(row, col int, valid bool) {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return
	}
	m.Bits[row*m.Width+col] = valid
}

// Count returns the number of valid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Circular returns a mask that is valid inside the circle of the given
// center and radius and masked outside it.
func Circular(height, width int, centerRow, centerCol, radius float64) (*Mask, error) {
	m, err := New(height, width)
	if err != nil {
		return nil, err
	}
	r2 := radius * radius
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			dr := float64(row) - centerRow
			dc := float64(col) - centerCol
			m.Bits[row*width+col] = dr*dr+dc*dc <= r2
		}
	}
	return m, nil
}

// Rect returns a mask that is valid inside the half-open rectangle
// [rowMin, rowMax) x [colMin, colMax) and masked outside it.
func Rect(height, width, rowMin, rowMax, colMin, colMax int) (*Mask, error) {
	m, err := New(height, width)
	if err != nil {
		return nil, err
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			inside := row >= rowMin && row < rowMax && col >= colMin && col < colMax
			m.Bits[row*width+col] = inside
		}
	}
	return m, nil
}
