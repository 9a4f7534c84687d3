// File: reader/extract.go

package reader

import (
	"fmt"
	"log/slog"
	"strings"

	"greg-hacke/go-beamline/container"
	"greg-hacke/go-beamline/schema"
)

// extractTable walks a probe table against an open container: for each
// field, candidate paths are tried in order and the first one that
// resolves wins; the remaining candidates are skipped even if present.
// Fields with no resolving candidate are silently left out.
func extractTable(h *container.Handle, table *schema.ProbeTable, rec *Record, log *slog.Logger) error {
	for _, fp := range table.Data {
		for _, path := range fp.Paths {
			arr, err := h.ReadDataset(path)
			if err != nil {
				return fmt.Errorf("%w: field %s at %s: %v", ErrExtraction, fp.Field, path, err)
			}
			if arr == nil {
				continue
			}
			rec.SetData(fp.Field, arr)
			log.Debug("read data field", "field", fp.Field, "path", path, "shape", arr.Shape)
			break
		}
	}

	for _, fp := range table.Metadata {
		for _, path := range fp.Paths {
			value, err := h.ReadScalar(path)
			if err != nil {
				return fmt.Errorf("%w: metadata %s at %s: %v", ErrExtraction, fp.Field, path, err)
			}
			if value == nil {
				continue
			}
			rec.SetMetadata(fp.Field, value)
			log.Debug("read metadata field", "field", fp.Field, "path", path)
			break
		}
	}

	return nil
}

// sweep materializes every dataset in the container keyed by its
// flattened path, and every attribute on every node likewise. It
// catches fields the structured schema does not cover, at the cost of
// redundant reads for large containers.
func sweep(h *container.Handle, rec *Record, log *slog.Logger) error {
	err := h.VisitDatasets(func(path string, arr *container.Array) {
		key := flattenPath(path)
		if key == "" {
			key = "root_dataset"
		}
		rec.SetData(key, arr)
	})
	if err != nil {
		return fmt.Errorf("%w: dataset sweep: %v", ErrExtraction, err)
	}

	err = h.VisitAttributes(func(objPath, name string, value interface{}) {
		key := flattenPath(objPath)
		if key != "" {
			key = key + "_" + name
		} else {
			key = name
		}
		rec.SetMetadata(key, value)
	})
	if err != nil {
		return fmt.Errorf("%w: attribute sweep: %v", ErrExtraction, err)
	}

	log.Debug("full-tree sweep complete",
		"data_fields", len(rec.DataKeys()), "metadata_fields", len(rec.MetadataKeys()))
	return nil
}

// flattenPath converts a container path to a record key:
// "/entry/data/data" becomes "entry_data_data".
func flattenPath(path string) string {
	return strings.Trim(strings.ReplaceAll(path, "/", "_"), "_")
}
