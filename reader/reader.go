// File: reader/reader.go

// Package reader implements the beamline file readers: one per
// facility layout, a generic NeXus reader, and a plain container
// fallback, plus the ordered format detection that picks between them.
package reader

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"greg-hacke/go-beamline/container"
)

// Error kinds surfaced by detection and extraction.
var (
	ErrNoMatchingSchema = errors.New("no reader matches the file")
	ErrExtraction       = errors.New("extraction failed")
)

// Options configures a reader.
type Options struct {
	// Sweep enables the full-tree pass that materializes every dataset
	// and attribute in the container after structured extraction. It
	// guarantees nothing is lost to schema gaps but can be costly for
	// large frames.
	Sweep bool

	// Logger receives probe traces. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions enables the sweep and discards logs.
func DefaultOptions() Options {
	return Options{Sweep: true}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// FileInfo describes the file behind a reader.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Reader is the capability set every beamline variant implements:
// normalized record access plus the consumer accessors the
// visualization layer queries.
type Reader interface {
	// Path returns the file path the reader was created for.
	Path() string

	// Beamline names the matched layout, e.g. "DESY P10".
	Beamline() string

	// Extract populates the record. A hard I/O failure aborts the whole
	// extraction; partially absent fields are normal and not an error.
	Extract() error

	// Record returns the normalized data/metadata record.
	Record() *Record

	// FileInfo returns filesystem details for the file.
	FileInfo() (FileInfo, error)

	// SaxsData returns the detector frames: an explicit SAXS field if
	// present, else the generic detector field, else a raw "data"
	// field. Nil when none is present.
	SaxsData() *container.Array

	// XpcsData collects whichever correlation fields are present.
	// Absent fields are omitted, never nil-padded.
	XpcsData() map[string]*container.Array

	// QMap returns the per-pixel momentum-transfer map, or nil.
	QMap() *container.Array

	// Mask returns the detector validity mask, or nil.
	Mask() *container.Array

	// Close releases the container handle. Idempotent.
	Close() error
}

func fileInfo(path string) (FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		Path:    path,
		Name:    filepath.Base(path),
		Size:    stat.Size(),
		ModTime: stat.ModTime(),
	}, nil
}
