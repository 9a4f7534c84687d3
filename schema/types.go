// File: schema/types.go

// Package schema holds the per-beamline probe tables: for each logical
// field, the ordered list of container paths where a facility's
// acquisition software may have written it. Tables are pure data:
// adding a beamline means adding a table, not touching extraction code.
package schema

// FieldPaths maps one logical field to its ordered candidate paths.
// The first path that resolves wins; later candidates are ignored even
// when present.
type FieldPaths struct {
	Field string   // logical field name, e.g. "detector_data"
	Paths []string // candidate container paths, most specific first
}

// ProbeTable describes one beamline's container layout.
type ProbeTable struct {
	Beamline string // e.g. "DESY P10"
	Facility string // e.g. "DESY"

	// Fingerprints are container paths whose presence identifies the
	// beamline during detection.
	Fingerprints []string

	// Tokens are case-insensitive substrings matched against top-level
	// attribute values during detection.
	Tokens []string

	// Data lists the array-valued fields, Metadata the scalar ones.
	// Order determines extraction (and record key) order.
	Data     []FieldPaths
	Metadata []FieldPaths
}

// DataPaths returns the candidate paths for an array field, or nil.
func (t *ProbeTable) DataPaths(field string) []string {
	for _, fp := range t.Data {
		if fp.Field == field {
			return fp.Paths
		}
	}
	return nil
}

// MetadataPaths returns the candidate paths for a metadata field, or nil.
func (t *ProbeTable) MetadataPaths(field string) []string {
	for _, fp := range t.Metadata {
		if fp.Field == field {
			return fp.Paths
		}
	}
	return nil
}
