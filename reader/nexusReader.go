// File: reader/nexusReader.go

package reader

import "greg-hacke/go-beamline/schema"

// NewNeXusReader opens a reader for NeXus-convention files that no
// facility-specific variant claimed. It probes the common NeXus entry
// layouts and marks the record with a file_format of "NeXus".
func NewNeXusReader(path string, opts Options) (*ContainerReader, error) {
	r, err := newContainerReader(path, schema.NeXus, "NeXus", opts)
	if err != nil {
		return nil, err
	}
	r.fileFormat = "NeXus"
	return r, nil
}

// CanReadNeXus reports whether the file carries a NeXus entry group.
func CanReadNeXus(path string) bool {
	return canReadTable(path, schema.NeXus)
}
