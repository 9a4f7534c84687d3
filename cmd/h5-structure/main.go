// File: cmd/h5-structure/main.go

package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"greg-hacke/go-beamline/container"
	"greg-hacke/go-beamline/reader"
)

func main() {
	// Parse command line flags
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Dump the structure of a container file\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	showAttrs := flag.Bool("attrs", false, "Show root attributes")
	flag.Parse()

	// Check arguments
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	path := flag.Arg(0)

	h, err := container.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer h.Close()

	fmt.Printf("File: %s\n", path)
	if format := reader.DetectFormat(path); format != nil {
		fmt.Printf("Format: %s\n", format.Name)
	}

	if *showAttrs {
		attrs := h.RootAttributes()
		keys := make([]string, 0, len(attrs))
		for key := range attrs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fmt.Println("\nRoot attributes:")
		for _, key := range keys {
			fmt.Printf("  %s = %v\n", key, attrs[key])
		}
	}

	groups, err := h.ListGroups()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing groups: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nGroups:")
	for _, g := range groups {
		fmt.Printf("  %s\n", g)
	}

	datasets, err := h.ListDatasets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing datasets: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nDatasets:")
	for _, ds := range datasets {
		line := fmt.Sprintf("  %s", ds)
		if arr, err := h.ReadDataset(ds); err == nil && arr != nil {
			dims := make([]string, len(arr.Shape))
			for i, d := range arr.Shape {
				dims[i] = fmt.Sprintf("%d", d)
			}
			line += fmt.Sprintf(" (%s)", strings.Join(dims, "x"))
		} else if text, terr := h.ReadText(ds); terr == nil && len(text) > 0 {
			line += fmt.Sprintf(" = %q", truncate(text[0], 60))
		}
		fmt.Println(line)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
