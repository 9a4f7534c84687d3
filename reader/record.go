// File: reader/record.go

package reader

import (
	"greg-hacke/go-beamline/container"
)

// Record is the normalized result of one extraction: array-valued
// fields keyed by logical name, and scalar metadata. Keys keep the
// order they were first set in; setting an existing key overwrites the
// value in place.
type Record struct {
	dataKeys []string
	data     map[string]*container.Array

	metaKeys []string
	meta     map[string]interface{}
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{
		data: make(map[string]*container.Array),
		meta: make(map[string]interface{}),
	}
}

// SetData stores an array field.
func (r *Record) SetData(key string, arr *container.Array) {
	if _, exists := r.data[key]; !exists {
		r.dataKeys = append(r.dataKeys, key)
	}
	r.data[key] = arr
}

// SetMetadata stores a metadata scalar.
func (r *Record) SetMetadata(key string, value interface{}) {
	if _, exists := r.meta[key]; !exists {
		r.metaKeys = append(r.metaKeys, key)
	}
	r.meta[key] = value
}

// Data returns an array field, or nil when absent.
func (r *Record) Data(key string) *container.Array {
	return r.data[key]
}

// HasData reports whether an array field is present.
func (r *Record) HasData(key string) bool {
	_, ok := r.data[key]
	return ok
}

// Metadata returns a metadata value and whether it is present.
func (r *Record) Metadata(key string) (interface{}, bool) {
	v, ok := r.meta[key]
	return v, ok
}

// DataKeys returns the array field names in insertion order.
func (r *Record) DataKeys() []string {
	keys := make([]string, len(r.dataKeys))
	copy(keys, r.dataKeys)
	return keys
}

// MetadataKeys returns the metadata field names in insertion order.
func (r *Record) MetadataKeys() []string {
	keys := make([]string, len(r.metaKeys))
	copy(keys, r.metaKeys)
	return keys
}

// DataShapes returns the shape of every array field, keyed by name.
func (r *Record) DataShapes() map[string][]int {
	shapes := make(map[string][]int, len(r.data))
	for key, arr := range r.data {
		shapes[key] = arr.Shape
	}
	return shapes
}

// MetadataString returns a metadata value as a string, with a fallback
// when the key is absent or not string-valued.
func (r *Record) MetadataString(key, fallback string) string {
	if v, ok := r.meta[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}
