// File: cmd/gen-schema/main.go

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"greg-hacke/go-beamline/container"
)

func main() {
	// Define command line flags
	var beamline string
	var facility string
	var output string
	flag.StringVar(&beamline, "beamline", "", "Beamline name for the generated definition (required)")
	flag.StringVar(&facility, "facility", "Unknown", "Facility name for the generated definition")
	flag.StringVar(&output, "o", "", "Output file (default stdout)")
	flag.Parse()

	// Check arguments
	if flag.NArg() < 1 || beamline == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -beamline <name> [options] <sample_file>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nGenerate a probe-table definition skeleton from a sample container file\n\n")
		fmt.Fprintf(os.Stderr, "Example:\n")
		fmt.Fprintf(os.Stderr, "  %s -beamline \"APS 8-ID-I\" -facility APS sample_run.h5\n", os.Args[0])
		os.Exit(1)
	}

	path := flag.Arg(0)

	h, err := container.Open(path)
	if err != nil {
		log.Fatalf("Error opening sample file: %v", err)
	}
	defer h.Close()

	def, err := generate(h, beamline, facility)
	if err != nil {
		log.Fatalf("Error inspecting sample file: %v", err)
	}

	if output == "" {
		fmt.Print(def)
		return
	}
	if err := os.WriteFile(output, []byte(def), 0o644); err != nil {
		log.Fatalf("Error writing definition: %v", err)
	}
	fmt.Printf("Wrote %s\n", output)
}

// generate builds a definition skeleton: the sample's group layout
// becomes fingerprint candidates, large datasets become data fields and
// small ones metadata fields. The output is a starting point meant to
// be trimmed by hand.
func generate(h *container.Handle, beamline, facility string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Generated from %s\n", h.Path())
	fmt.Fprintf(&b, "beamline = %s\n", beamline)
	fmt.Fprintf(&b, "facility = %s\n", facility)

	groups, err := h.ListGroups()
	if err != nil {
		return "", err
	}
	sort.Strings(groups)
	for _, g := range groups {
		if g == "/" {
			continue
		}
		// Deep groups make fragile fingerprints.
		if strings.Count(g, "/") <= 2 {
			fmt.Fprintf(&b, "fingerprint = %s\n", g)
		}
	}
	fmt.Fprintf(&b, "token = %s\n", strings.ToLower(strings.Fields(beamline)[0]))

	type entry struct {
		path string
		size int
	}
	var data, meta []entry
	err = h.VisitDatasets(func(path string, arr *container.Array) {
		if arr.Size() > 1 {
			data = append(data, entry{path, arr.Size()})
		} else {
			meta = append(meta, entry{path, arr.Size()})
		}
	})
	if err != nil {
		return "", err
	}
	sort.Slice(data, func(i, j int) bool { return data[i].path < data[j].path })
	sort.Slice(meta, func(i, j int) bool { return meta[i].path < meta[j].path })

	b.WriteString("\n")
	for _, e := range data {
		fmt.Fprintf(&b, "data %s = %s\n", fieldName(e.path), e.path)
	}
	b.WriteString("\n")
	for _, e := range meta {
		fmt.Fprintf(&b, "meta %s = %s\n", fieldName(e.path), e.path)
	}
	return b.String(), nil
}

// fieldName derives a logical field name from the last path segment.
func fieldName(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	return segments[len(segments)-1]
}
