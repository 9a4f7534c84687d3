// File: container/array.go

package container

// Array holds the values of one dataset in row-major order together
// with its dimensions. Scalar datasets carry an empty Shape.
type Array struct {
	Data  []float64
	Shape []int
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return len(a.Data)
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.Shape)
}

// IsScalar reports whether the array holds exactly one element.
func (a *Array) IsScalar() bool {
	return len(a.Data) == 1
}

// Scalar returns the single element of a one-element array.
// Callers must check IsScalar first.
func (a *Array) Scalar() float64 {
	return a.Data[0]
}

// At returns the element at the given row-major indices.
func (a *Array) At(indices ...int) float64 {
	offset := 0
	for i, idx := range indices {
		stride := 1
		for _, d := range a.Shape[i+1:] {
			stride *= d
		}
		offset += idx * stride
	}
	return a.Data[offset]
}
