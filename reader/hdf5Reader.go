// File: reader/hdf5Reader.go

package reader

import (
	"fmt"
	"strings"

	"greg-hacke/go-beamline/container"
	"greg-hacke/go-beamline/schema"
)

// ContainerReader reads one container file. The probe table selects
// the beamline variant; with no table it is the generic fallback that
// relies on the full-tree sweep alone. The reader owns its container
// handle from construction until Close.
type ContainerReader struct {
	path   string
	table  *schema.ProbeTable
	opts   Options
	handle *container.Handle
	record *Record

	name           string // reported by Beamline()
	fileFormat     string // injected as file_format metadata when set
	injectFacility bool   // inject beamline/facility metadata after extraction
}

// NewHDF5Reader opens the generic container reader. It accepts any
// well-formed container file and must therefore be the last detection
// candidate.
func NewHDF5Reader(path string, opts Options) (*ContainerReader, error) {
	return newContainerReader(path, nil, "HDF5", opts)
}

// NewTableReader opens a reader driven by an arbitrary probe table,
// e.g. one loaded from an external definition file.
func NewTableReader(path string, table *schema.ProbeTable, opts Options) (*ContainerReader, error) {
	r, err := newContainerReader(path, table, table.Beamline, opts)
	if err != nil {
		return nil, err
	}
	r.injectFacility = true
	return r, nil
}

func newContainerReader(path string, table *schema.ProbeTable, name string, opts Options) (*ContainerReader, error) {
	handle, err := container.Open(path)
	if err != nil {
		return nil, err
	}
	return &ContainerReader{
		path:   path,
		table:  table,
		opts:   opts,
		handle: handle,
		record: NewRecord(),
		name:   name,
	}, nil
}

// Path returns the file path the reader was created for.
func (r *ContainerReader) Path() string {
	return r.path
}

// Beamline names the matched layout.
func (r *ContainerReader) Beamline() string {
	return r.name
}

// Record returns the normalized record. Empty until Extract has run.
func (r *ContainerReader) Record() *Record {
	return r.record
}

// FileInfo returns filesystem details for the file.
func (r *ContainerReader) FileInfo() (FileInfo, error) {
	return fileInfo(r.path)
}

// Close releases the container handle. Safe to call multiple times.
func (r *ContainerReader) Close() error {
	return r.handle.Close()
}

// Extract populates the record: structured probe-table extraction
// first, then the optional full-tree sweep, then the unconditional
// facility metadata. A hard I/O failure aborts the whole extraction;
// the record is not usable after an error.
func (r *ContainerReader) Extract() error {
	log := r.opts.logger().With("file", r.path, "reader", r.name)

	if r.table != nil {
		if err := extractTable(r.handle, r.table, r.record, log); err != nil {
			return err
		}
	}

	if r.opts.Sweep {
		if err := sweep(r.handle, r.record, log); err != nil {
			return err
		}
	}

	if r.fileFormat != "" {
		r.record.SetMetadata("file_format", r.fileFormat)
	}
	if r.injectFacility && r.table != nil {
		r.record.SetMetadata("beamline", r.table.Beamline)
		r.record.SetMetadata("facility", r.table.Facility)
	}

	log.Debug("extraction complete",
		"data_fields", len(r.record.DataKeys()),
		"metadata_fields", len(r.record.MetadataKeys()))
	return nil
}

// SaxsData returns detector frames by fixed priority: the explicit
// SAXS field, then the generic detector field, then a raw data field.
func (r *ContainerReader) SaxsData() *container.Array {
	for _, key := range []string{"saxs_data", "detector_data", "data"} {
		if arr := r.record.Data(key); arr != nil {
			return arr
		}
	}
	return nil
}

// XpcsData collects the correlation fields that are present. Absent
// fields are omitted from the result entirely.
func (r *ContainerReader) XpcsData() map[string]*container.Array {
	result := make(map[string]*container.Array)
	for field, key := range map[string]string{
		"g2":        "g2_data",
		"tau":       "tau_data",
		"twotime":   "twotime_data",
		"intensity": "intensity_data",
		"xpcs":      "xpcs_data",
	} {
		if arr := r.record.Data(key); arr != nil {
			result[field] = arr
		}
	}
	return result
}

// QMap returns the momentum-transfer calibration map, or nil.
func (r *ContainerReader) QMap() *container.Array {
	return r.record.Data("q_map")
}

// Mask returns the detector validity mask, or nil.
func (r *ContainerReader) Mask() *container.Array {
	return r.record.Data("mask")
}

// canReadTable is the detection predicate shared by the beamline
// variants: the file must look like a container, and must either carry
// one of the table's fingerprint paths or mention one of its tokens in
// a top-level attribute. Any failure means "not ours".
func canReadTable(path string, table *schema.ProbeTable) bool {
	if !container.HasContainerExtension(path) {
		return false
	}
	h, err := container.Open(path)
	if err != nil {
		return false
	}
	defer h.Close()

	for _, fp := range table.Fingerprints {
		if h.Exists(fp) {
			return true
		}
	}

	for _, value := range h.RootAttributes() {
		text, ok := value.(string)
		if !ok {
			continue
		}
		lower := strings.ToLower(text)
		for _, token := range table.Tokens {
			if strings.Contains(lower, token) {
				return true
			}
		}
	}

	return false
}

// CanReadHDF5 accepts any openable container file.
func CanReadHDF5(path string) bool {
	return container.IsContainerFile(path)
}

func (r *ContainerReader) String() string {
	return fmt.Sprintf("%s(%q)", r.name, r.path)
}
