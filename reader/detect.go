// File: reader/detect.go

package reader

import (
	"fmt"
	"os"

	"greg-hacke/go-beamline/schema"
)

// Format pairs a detection predicate with a reader constructor.
type Format struct {
	Name    string
	CanRead func(path string) bool
	New     func(path string, opts Options) (Reader, error)
}

// Formats returns the detection order: facility-specific layouts
// first, then the NeXus convention, then the generic container
// fallback. The generic entry accepts every well-formed file, so it
// must stay last.
func Formats() []Format {
	return []Format{
		{
			Name:    "DESY P10",
			CanRead: CanReadDESYP10,
			New: func(path string, opts Options) (Reader, error) {
				return NewDESYP10Reader(path, opts)
			},
		},
		{
			Name:    "ESRF ID02",
			CanRead: CanReadESRFID02,
			New: func(path string, opts Options) (Reader, error) {
				return NewESRFID02Reader(path, opts)
			},
		},
		{
			Name:    "ESRF ID10",
			CanRead: CanReadESRFID10,
			New: func(path string, opts Options) (Reader, error) {
				return NewESRFID10Reader(path, opts)
			},
		},
		{
			Name:    "NeXus",
			CanRead: CanReadNeXus,
			New: func(path string, opts Options) (Reader, error) {
				return NewNeXusReader(path, opts)
			},
		},
		{
			Name:    "HDF5",
			CanRead: CanReadHDF5,
			New: func(path string, opts Options) (Reader, error) {
				return NewHDF5Reader(path, opts)
			},
		},
	}
}

// FormatForTable builds a detection entry from a loaded probe table,
// so externally defined beamline layouts plug into the same registry.
func FormatForTable(table *schema.ProbeTable) Format {
	return Format{
		Name: table.Beamline,
		CanRead: func(path string) bool {
			return canReadTable(path, table)
		},
		New: func(path string, opts Options) (Reader, error) {
			return NewTableReader(path, table, opts)
		},
	}
}

// DetectFormat walks the registry in order and returns the first
// format whose predicate claims the file. A predicate that panics is
// treated as non-matching. Returns nil when the file does not exist or
// nothing claims it.
func DetectFormat(path string) *Format {
	return detectAmong(path, Formats())
}

func detectAmong(path string, formats []Format) *Format {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	for i := range formats {
		if safeCanRead(formats[i].CanRead, path) {
			return &formats[i]
		}
	}
	return nil
}

func safeCanRead(fn func(string) bool, path string) (matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	return fn(path)
}

// Open detects the format of path and returns an opened reader for it.
func Open(path string, opts Options) (Reader, error) {
	format := DetectFormat(path)
	if format == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMatchingSchema, path)
	}
	return format.New(path, opts)
}

// OpenWith behaves like Open using a caller-supplied registry, e.g.
// one extended with FormatForTable entries.
func OpenWith(path string, formats []Format, opts Options) (Reader, error) {
	format := detectAmong(path, formats)
	if format == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMatchingSchema, path)
	}
	return format.New(path, opts)
}
