// File: container/container.go

// Package container provides read-only access to hierarchical HDF5
// containers: typed dataset reads, attribute reads with string
// normalization, and full-tree traversal. Missing paths are a normal
// outcome and are reported as absence, never as an error.
package container

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// Error kinds reported by Open and by reads on a closed handle.
var (
	ErrNotFound = errors.New("file not found")
	ErrOpen     = errors.New("cannot open container")
	ErrClosed   = errors.New("container is closed")
)

// Extensions recognized as container files.
var Extensions = []string{".h5", ".hdf5", ".nxs", ".nx"}

// HDF5 datatype classes of interest, as defined by the format.
const (
	classString = 3
	classVarLen = 9
)

// Handle is an open read-only container file. A Handle is owned by a
// single reader for its lifetime and must not be shared across files.
type Handle struct {
	path string
	file *hdf5.File
}

// HasContainerExtension checks the file extension against the supported set.
func HasContainerExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// IsContainerFile reports whether the file at path is an openable container.
func IsContainerFile(path string) bool {
	if !HasContainerExtension(path) {
		return false
	}
	h, err := Open(path)
	if err != nil {
		return false
	}
	h.Close()
	return true
}

// Open opens a container file for reading. A missing file yields
// ErrNotFound; an unparsable file yields ErrOpen.
func Open(path string) (*Handle, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		// Inaccessible counts as unopenable, the same as unparsable.
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}

	file, err := hdf5.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}

	return &Handle{path: path, file: file}, nil
}

// Path returns the file path the handle was opened with.
func (h *Handle) Path() string {
	return h.path
}

// Close releases the underlying file. Safe to call multiple times.
func (h *Handle) Close() error {
	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	return err
}

// ReadDataset reads the full numeric array at an internal path.
// It returns (nil, nil) when the path does not resolve to a numeric
// dataset: not present, a group, or string-typed. An error is returned
// only for reads on a closed handle or an I/O failure on a dataset
// that was successfully located.
func (h *Handle) ReadDataset(path string) (*Array, error) {
	ds, err := h.openDataset(path)
	if ds == nil || err != nil {
		return nil, err
	}

	class := int(ds.DtypeClass())
	if class == classString || class == classVarLen {
		return nil, nil
	}

	data, err := ds.ReadFloat64()
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s in %s: %w", path, h.path, err)
	}

	return &Array{Data: data, Shape: shapeToInt(ds.Shape())}, nil
}

// ReadText reads a string dataset. Absent or non-string paths yield (nil, nil).
func (h *Handle) ReadText(path string) ([]string, error) {
	ds, err := h.openDataset(path)
	if ds == nil || err != nil {
		return nil, err
	}

	class := int(ds.DtypeClass())
	if class != classString && class != classVarLen {
		return nil, nil
	}

	values, err := ds.ReadString()
	if err != nil {
		// Variable-length non-string data lands here; treat as absent.
		return nil, nil
	}
	return values, nil
}

// ReadScalar reads a dataset and reduces it to a metadata scalar:
// one-element numeric arrays become float64, string datasets become
// string (one element) or []string. Multi-element numeric arrays are
// returned as *Array. Absent paths yield (nil, nil).
func (h *Handle) ReadScalar(path string) (interface{}, error) {
	if text, err := h.ReadText(path); err != nil {
		return nil, err
	} else if text != nil {
		if len(text) == 1 {
			return text[0], nil
		}
		return text, nil
	}

	arr, err := h.ReadDataset(path)
	if arr == nil || err != nil {
		return nil, err
	}
	if arr.IsScalar() {
		return arr.Scalar(), nil
	}
	return arr, nil
}

// ReadAttribute reads an attribute on a group or dataset. Absence of
// the object or the attribute yields (nil, nil). Byte-string values
// are decoded and single-element string arrays are coerced to text.
func (h *Handle) ReadAttribute(objPath, name string) (interface{}, error) {
	if h.file == nil {
		return nil, fmt.Errorf("%w: %s", ErrClosed, h.path)
	}

	attr, err := h.file.GetAttr(hdf5.JoinAttrPath(objPath, name))
	if err != nil {
		return nil, nil
	}

	value, err := attr.Value()
	if err != nil {
		return nil, nil
	}
	return NormalizeScalar(value), nil
}

// Exists reports whether a path resolves to a dataset or a group.
func (h *Handle) Exists(path string) bool {
	if h.file == nil {
		return false
	}
	if _, err := h.file.OpenDataset(path); err == nil {
		return true
	}
	if _, err := h.file.OpenGroup(path); err == nil {
		return true
	}
	return false
}

// RootAttributes returns all attributes of the root group, with the
// same string normalization as ReadAttribute. Unreadable attributes
// are skipped.
func (h *Handle) RootAttributes() map[string]interface{} {
	attrs := make(map[string]interface{})
	if h.file == nil {
		return attrs
	}
	root := h.file.Root()
	for _, name := range root.Attrs() {
		attr := root.Attr(name)
		if attr == nil {
			continue
		}
		value, err := attr.Value()
		if err != nil {
			continue
		}
		attrs[name] = NormalizeScalar(value)
	}
	return attrs
}

// ListDatasets returns the paths of all datasets in the container.
// Diagnostic use only; extraction never enumerates the full tree this way.
func (h *Handle) ListDatasets() ([]string, error) {
	var paths []string
	err := h.visit(func(path string, obj interface{}) {
		if _, ok := obj.(*hdf5.Dataset); ok {
			paths = append(paths, path)
		}
	})
	return paths, err
}

// ListGroups returns the paths of all groups in the container.
func (h *Handle) ListGroups() ([]string, error) {
	var paths []string
	err := h.visit(func(path string, obj interface{}) {
		if _, ok := obj.(*hdf5.Group); ok {
			paths = append(paths, path)
		}
	})
	return paths, err
}

// VisitDatasets calls fn with every numeric dataset in the container.
// Datasets that fail to read are skipped.
func (h *Handle) VisitDatasets(fn func(path string, arr *Array)) error {
	return h.visit(func(path string, obj interface{}) {
		ds, ok := obj.(*hdf5.Dataset)
		if !ok {
			return
		}
		class := int(ds.DtypeClass())
		if class == classString || class == classVarLen {
			return
		}
		data, err := ds.ReadFloat64()
		if err != nil {
			return
		}
		fn(path, &Array{Data: data, Shape: shapeToInt(ds.Shape())})
	})
}

// VisitAttributes calls fn with every attribute on every group and
// dataset. Attributes that fail to read are skipped.
func (h *Handle) VisitAttributes(fn func(objPath, name string, value interface{})) error {
	if h.file == nil {
		return fmt.Errorf("%w: %s", ErrClosed, h.path)
	}
	return h.file.WalkAttrs(func(info hdf5.AttrInfo) error {
		if info.Err != nil {
			return nil
		}
		fn(info.ObjectPath, info.Name, NormalizeScalar(info.Value))
		return nil
	})
}

// openDataset resolves a path to a dataset, mapping every resolution
// failure (missing path, group at path, broken link) to absence.
func (h *Handle) openDataset(path string) (*hdf5.Dataset, error) {
	if h.file == nil {
		return nil, fmt.Errorf("%w: %s", ErrClosed, h.path)
	}
	ds, err := h.file.OpenDataset(path)
	if err != nil {
		return nil, nil
	}
	return ds, nil
}

func (h *Handle) visit(fn func(path string, obj interface{})) error {
	if h.file == nil {
		return fmt.Errorf("%w: %s", ErrClosed, h.path)
	}
	return hdf5.Walk(h.file.Root(), func(path string, obj interface{}, err error) error {
		if err != nil {
			return nil
		}
		fn(path, obj)
		return nil
	})
}

// NormalizeScalar collapses single-element slices to their element so
// that metadata values that originated as one-element arrays surface
// as bare scalars.
func NormalizeScalar(value interface{}) interface{} {
	switch v := value.(type) {
	case []string:
		if len(v) == 1 {
			return v[0]
		}
	case []float64:
		if len(v) == 1 {
			return v[0]
		}
	case []int64:
		if len(v) == 1 {
			return v[0]
		}
	case []uint64:
		if len(v) == 1 {
			return v[0]
		}
	}
	return value
}

func shapeToInt(dims []uint64) []int {
	shape := make([]int, len(dims))
	for i, d := range dims {
		shape[i] = int(d)
	}
	return shape
}
