// File: reader/esrfID10.go

package reader

import "greg-hacke/go-beamline/schema"

// NewESRFID10Reader opens a reader for files from the ID10 coherent
// scattering beamline at the ESRF.
func NewESRFID10Reader(path string, opts Options) (*ContainerReader, error) {
	return NewTableReader(path, schema.ESRFID10, opts)
}

// CanReadESRFID10 reports whether the file matches the ID10 layout.
func CanReadESRFID10(path string) bool {
	return canReadTable(path, schema.ESRFID10)
}
