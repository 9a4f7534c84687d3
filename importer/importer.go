// File: importer/importer.go

package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"greg-hacke/go-beamline/reader"
)

// Options configures an Importer.
type Options struct {
	// Sweep enables the full-tree fallback pass on every import.
	Sweep bool

	// Formats overrides the detection registry. Nil uses the built-in
	// registry in its default order.
	Formats []reader.Format

	// Logger for import progress. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions matches the behavior of a bare Importer: sweep on,
// built-in formats, no logging.
func DefaultOptions() Options {
	return Options{Sweep: true}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) formats() []reader.Format {
	if o.Formats != nil {
		return o.Formats
	}
	return reader.Formats()
}

func (o Options) readerOptions() reader.Options {
	return reader.Options{Sweep: o.Sweep, Logger: o.Logger}
}

// Failure records one file that could not be imported.
type Failure struct {
	Path string
	Err  error
}

// Importer detects, extracts and retains readers for container files,
// keyed by path. All methods are safe for concurrent use; imports are
// serialized.
type Importer struct {
	opts Options

	mu      sync.Mutex
	readers map[string]reader.Reader
}

// New returns an empty Importer.
func New(opts Options) *Importer {
	return &Importer{
		opts:    opts,
		readers: make(map[string]reader.Reader),
	}
}

// ImportOne detects the format of path, opens a reader, runs the
// extraction and retains the result. On any failure nothing is
// retained and no handle is left open. Re-importing a path closes and
// replaces the previous reader.
func (imp *Importer) ImportOne(path string) (reader.Reader, error) {
	imp.mu.Lock()
	defer imp.mu.Unlock()
	return imp.importLocked(path)
}

func (imp *Importer) importLocked(path string) (reader.Reader, error) {
	log := imp.opts.logger()

	r, err := reader.OpenWith(path, imp.opts.formats(), imp.opts.readerOptions())
	if err != nil {
		return nil, err
	}

	if err := r.Extract(); err != nil {
		r.Close()
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	if old, ok := imp.readers[path]; ok {
		old.Close()
	}
	imp.readers[path] = r

	log.Info("imported file",
		"file", path,
		"beamline", r.Beamline(),
		"data_fields", len(r.Record().DataKeys()),
		"metadata_fields", len(r.Record().MetadataKeys()))
	return r, nil
}

// ImportMany imports each path in order. One file failing does not
// stop the rest; failures are collected and returned alongside the
// successful readers. The context is checked between files, and a
// cancellation abandons the remaining paths.
func (imp *Importer) ImportMany(ctx context.Context, paths []string) ([]reader.Reader, []Failure, error) {
	imp.mu.Lock()
	defer imp.mu.Unlock()

	var imported []reader.Reader
	var failures []Failure
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return imported, failures, err
		}
		r, err := imp.importLocked(path)
		if err != nil {
			imp.opts.logger().Warn("import failed", "file", path, "error", err)
			failures = append(failures, Failure{Path: path, Err: err})
			continue
		}
		imported = append(imported, r)
	}
	return imported, failures, nil
}

// Get returns the retained reader for path, if any.
func (imp *Importer) Get(path string) (reader.Reader, bool) {
	imp.mu.Lock()
	defer imp.mu.Unlock()
	r, ok := imp.readers[path]
	return r, ok
}

// Len reports how many files are currently retained.
func (imp *Importer) Len() int {
	imp.mu.Lock()
	defer imp.mu.Unlock()
	return len(imp.readers)
}

// Paths lists the retained file paths in sorted order.
func (imp *Importer) Paths() []string {
	imp.mu.Lock()
	defer imp.mu.Unlock()
	paths := make([]string, 0, len(imp.readers))
	for path := range imp.readers {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Evict closes and removes the reader for path. Reports whether a
// reader was present.
func (imp *Importer) Evict(path string) bool {
	imp.mu.Lock()
	defer imp.mu.Unlock()
	r, ok := imp.readers[path]
	if !ok {
		return false
	}
	r.Close()
	delete(imp.readers, path)
	return true
}

// Clear closes and removes every retained reader.
func (imp *Importer) Clear() {
	imp.mu.Lock()
	defer imp.mu.Unlock()
	for path, r := range imp.readers {
		r.Close()
		delete(imp.readers, path)
	}
}
