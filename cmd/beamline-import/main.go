// File: cmd/beamline-import/main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"greg-hacke/go-beamline/importer"
	"greg-hacke/go-beamline/reader"
	"greg-hacke/go-beamline/schema"
)

func main() {
	// Parse command line flags
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file> [<file>...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Detect beamline formats and extract data from container files\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	verbose := flag.Bool("v", false, "Verbose output")
	asJSON := flag.Bool("json", false, "Print the import summary as JSON")
	noSweep := flag.Bool("no-sweep", false, "Skip the full-tree fallback sweep")
	showFormats := flag.Bool("formats", false, "Show the format detection order")
	schemaFile := flag.String("schema", "", "Load an extra beamline definition file")
	flag.Parse()

	// If showing formats, list them and exit
	if *showFormats {
		fmt.Println("Format detection order:")
		for _, format := range reader.Formats() {
			fmt.Printf("  %s\n", format.Name)
		}
		return
	}

	// Check arguments
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	opts := importer.Options{Sweep: !*noSweep}
	if *verbose {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	// An external definition file is probed before the built-in order
	if *schemaFile != "" {
		table, err := schema.LoadFile(*schemaFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading schema: %v\n", err)
			os.Exit(1)
		}
		opts.Formats = append([]reader.Format{reader.FormatForTable(table)}, reader.Formats()...)
	}

	imp := importer.New(opts)
	defer imp.Clear()

	_, failures, err := imp.ImportMany(context.Background(), flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing files: %v\n", err)
		os.Exit(1)
	}
	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", failure.Path, failure.Err)
	}

	if *asJSON {
		out, err := imp.Summary().JSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding summary: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	} else {
		displaySummary(imp.Summary(), *verbose)
	}

	if len(failures) > 0 {
		os.Exit(1)
	}
}

// displaySummary prints the imported files grouped per file
func displaySummary(s importer.Summary, verbose bool) {
	fmt.Printf("Imported %d file(s)\n", s.Files)
	for _, item := range s.Items {
		fmt.Printf("\n%s\n", item.Path)
		fmt.Printf("  Beamline: %s (%s)\n", item.Beamline, item.Facility)
		fmt.Printf("  Metadata fields: %d\n", item.Metadata)
		if len(item.Fields) == 0 {
			fmt.Printf("  Data fields: none\n")
			continue
		}
		fmt.Printf("  Data fields:\n")
		for _, field := range item.Fields {
			if shape, ok := item.Shapes[field]; ok && verbose {
				dims := make([]string, len(shape))
				for i, d := range shape {
					dims[i] = fmt.Sprintf("%d", d)
				}
				fmt.Printf("    %s (%s)\n", field, strings.Join(dims, "x"))
			} else {
				fmt.Printf("    %s\n", field)
			}
		}
	}
}
