// Command mapgen renders a world's motion graph in Graphviz DOT format.
//
//	mapgen -world Small | dot -Tsvg > small.svg
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lawnchairsociety/adventure/internal/loader"
	"github.com/lawnchairsociety/adventure/internal/world"
)

func main() {
	dir := flag.String("dir", "data", "Directory holding world files")
	name := flag.String("world", "Small", "World to render")
	format := flag.String("format", "", "World format: flat or yaml (default: detect)")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	showObjects := flag.Bool("objects", true, "List starting objects in room labels")
	flag.Parse()

	def, err := loader.Load(*dir, *name, *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}
	w, err := world.Build(def)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building world: %v\n", err)
		os.Exit(1)
	}

	var output strings.Builder
	renderDOT(&output, w, *showObjects)

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}
}
