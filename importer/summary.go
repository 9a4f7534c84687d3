// File: importer/summary.go

package importer

import (
	"encoding/json"
	"path/filepath"
)

// FileSummary describes one imported file.
type FileSummary struct {
	Path     string         `json:"path"`
	Name     string         `json:"name"`
	Beamline string         `json:"beamline"`
	Facility string         `json:"facility"`
	Fields   []string       `json:"fields"`
	Shapes   map[string][]int `json:"shapes"`
	Metadata int            `json:"metadata_count"`
}

// Summary describes everything the importer currently retains.
type Summary struct {
	Files int           `json:"files"`
	Items []FileSummary `json:"items"`
}

// Summary builds a snapshot of the retained readers, ordered by path.
func (imp *Importer) Summary() Summary {
	paths := imp.Paths()

	s := Summary{Files: len(paths), Items: make([]FileSummary, 0, len(paths))}
	for _, path := range paths {
		r, ok := imp.Get(path)
		if !ok {
			continue
		}
		rec := r.Record()
		s.Items = append(s.Items, FileSummary{
			Path:     path,
			Name:     filepath.Base(path),
			Beamline: r.Beamline(),
			Facility: rec.MetadataString("facility", "Unknown"),
			Fields:   rec.DataKeys(),
			Shapes:   rec.DataShapes(),
			Metadata: len(rec.MetadataKeys()),
		})
	}
	return s
}

// JSON renders the summary with indentation for human consumption.
func (s Summary) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
