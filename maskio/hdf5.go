// File: maskio/hdf5.go

package maskio

import (
	"fmt"

	"github.com/robert-malhotra/go-hdf5/hdf5"

	"greg-hacke/go-beamline/container"
)

// maskDatasetPaths are the dataset names probed on load, in order.
// Files written by other tools commonly use "data" or "array"; our own
// writer uses "mask".
var maskDatasetPaths = []string{"/mask", "/data", "/array"}

func saveHDF5(m *Mask, path string) error {
	f, err := hdf5.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	rows := make([][]uint8, m.Height)
	for row := 0; row < m.Height; row++ {
		line := make([]uint8, m.Width)
		for col := 0; col < m.Width; col++ {
			if m.Bits[row*m.Width+col] {
				line[col] = 1
			}
		}
		rows[row] = line
	}

	_, err = f.Root().CreateDataset("mask", rows,
		hdf5.WithAttribute("description", "detector validity mask"),
		hdf5.WithAttribute("valid_value", int64(1)))
	if err != nil {
		return fmt.Errorf("write mask dataset: %w", err)
	}
	return nil
}

func loadHDF5(path string) (*Mask, error) {
	h, err := container.Open(path)
	if err != nil {
		return nil, err
	}
	defer h.Close()

	arr, err := findMaskDataset(h)
	if err != nil {
		return nil, err
	}
	if arr == nil {
		return nil, fmt.Errorf("no mask dataset in %s", path)
	}
	if arr.NDim() != 2 {
		return nil, fmt.Errorf("mask dataset in %s is %d-dimensional, want 2", path, arr.NDim())
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

// findMaskDataset tries the well-known dataset names first, then falls
// back to the first numeric dataset in the file.
func findMaskDataset(h *container.Handle) (*container.Array, error) {
	for _, candidate := range maskDatasetPaths {
		arr, err := h.ReadDataset(candidate)
		if err != nil {
			return nil, fmt.Errorf("read mask dataset: %w", err)
		}
		if arr != nil {
			return arr, nil
		}
	}

	paths, err := h.ListDatasets()
	if err != nil {
		return nil, fmt.Errorf("read mask dataset: %w", err)
	}
	for _, p := range paths {
		arr, err := h.ReadDataset(p)
		if err != nil {
			return nil, fmt.Errorf("read mask dataset: %w", err)
		}
		if arr != nil {
			return arr, nil
		}
	}
	return nil, nil
}
