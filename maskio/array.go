// File: maskio/array.go

package maskio

import (
	"fmt"

	"greg-hacke/go-beamline/container"
)

// FromArray converts a 2D extracted array to a mask. Any nonzero
// element is a valid pixel.
func FromArray(arr *container.Array) (*Mask, error) {
	if arr == nil {
		return nil, fmt.Errorf("nil mask array")
	}
	if arr.NDim() != 2 {
		return nil, fmt.Errorf("mask array is %d-dimensional, want 2", arr.NDim())
	}
	m := &Mask{
		Bits:   make([]bool, len(arr.Data)),
		Height: arr.Shape[0],
		Width:  arr.Shape[1],
	}
	for i, v := range arr.Data {
		m.Bits[i] = v != 0
	}
	return m, nil
}

// Array converts the mask back to a 2D array of 0s and 1s.
func (m *Mask) Array() *container.Array {
	data := make([]float64, len(m.Bits))
	for i, b := range m.Bits {
		if b {
			data[i] = 1
		}
	}
	return &container.Array{Data: data, Shape: []int{m.Height, m.Width}}
}
