// File: schema/load.go

package schema

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load parses a probe-table definition. The format is line-based:
//
//	# comment
//	beamline = APS 8-ID-I
//	facility = APS
//	fingerprint = /entry/instrument/eiger
//	token = aps
//	data detector_data = /entry/data/data, /data/data
//	meta wavelength = /entry/instrument/source/wavelength, /wavelength
//
// Keys may repeat; data/meta lines keep their file order, which becomes
// the extraction order. New beamlines are added by dropping in a
// definition file, not by changing extraction code.
func Load(r io.Reader) (*ProbeTable, error) {
	table := &ProbeTable{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: expected 'key = value', got %q", lineNo, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, fmt.Errorf("line %d: empty value for %q", lineNo, key)
		}

		switch {
		case key == "beamline":
			table.Beamline = value
		case key == "facility":
			table.Facility = value
		case key == "fingerprint":
			table.Fingerprints = append(table.Fingerprints, value)
		case key == "token":
			table.Tokens = append(table.Tokens, strings.ToLower(value))
		case strings.HasPrefix(key, "data "):
			field := strings.TrimSpace(strings.TrimPrefix(key, "data "))
			paths, err := splitPaths(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			table.Data = append(table.Data, FieldPaths{Field: field, Paths: paths})
		case strings.HasPrefix(key, "meta "):
			field := strings.TrimSpace(strings.TrimPrefix(key, "meta "))
			paths, err := splitPaths(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			table.Metadata = append(table.Metadata, FieldPaths{Field: field, Paths: paths})
		default:
			return nil, fmt.Errorf("line %d: unknown key %q", lineNo, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if table.Beamline == "" {
		return nil, fmt.Errorf("definition is missing a beamline name")
	}
	if len(table.Fingerprints) == 0 && len(table.Tokens) == 0 {
		return nil, fmt.Errorf("beamline %q has no fingerprints or tokens", table.Beamline)
	}

	return table, nil
}

// LoadFile reads a probe-table definition from a file.
func LoadFile(path string) (*ProbeTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open table definition: %w", err)
	}
	defer f.Close()

	table, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// splitPaths splits a comma-separated candidate path list.
func splitPaths(value string) ([]string, error) {
	parts := strings.Split(value, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "/") {
			return nil, fmt.Errorf("path %q must be absolute", p)
		}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("empty path list")
	}
	return paths, nil
}
