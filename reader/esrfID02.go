// File: reader/esrfID02.go

package reader

import "greg-hacke/go-beamline/schema"

// NewESRFID02Reader opens a reader for files from the ID02 TRUSAXS
// beamline at the ESRF.
func NewESRFID02Reader(path string, opts Options) (*ContainerReader, error) {
	return NewTableReader(path, schema.ESRFID02, opts)
}

// CanReadESRFID02 reports whether the file matches the ID02 layout.
func CanReadESRFID02(path string) bool {
	return canReadTable(path, schema.ESRFID02)
}
