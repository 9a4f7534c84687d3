// File: reader/desyP10.go

package reader

import "greg-hacke/go-beamline/schema"

// NewDESYP10Reader opens a reader for files from the P10 coherence
// beamline at DESY (PETRA III).
func NewDESYP10Reader(path string, opts Options) (*ContainerReader, error) {
	return NewTableReader(path, schema.DESYP10, opts)
}

// CanReadDESYP10 reports whether the file matches the P10 layout.
func CanReadDESYP10(path string) bool {
	return canReadTable(path, schema.DESYP10)
}
