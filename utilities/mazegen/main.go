// Command mazegen generates a random maze world. The key lies in the dead
// end farthest from the entrance and the way out is farthest from the key.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lawnchairsociety/adventure/internal/loader"
	"github.com/lawnchairsociety/adventure/internal/world"
)

func main() {
	size := flag.Int("size", 8, "Maze size (width and height)")
	seed := flag.Int64("seed", 42, "Seed for random generation")
	name := flag.String("name", "Maze", "World name, used as the file prefix")
	outDir := flag.String("out", "data", "Output directory")
	treasures := flag.Int("treasures", 3, "Number of treasures to scatter")
	chutes := flag.Int("chutes", 2, "Number of one-way chutes (at most 2)")
	asYAML := flag.Bool("yaml", false, "Write a single YAML world instead of flat files")
	flag.Parse()

	if *size < 1 {
		fmt.Fprintln(os.Stderr, "Error: size must be at least 1")
		os.Exit(1)
	}

	gen := NewMazeGenerator(*size, *size, *seed)

	fmt.Printf("Generating %dx%d maze (seed: %d)\n", *size, *size, *seed)
	fmt.Printf("Output directory: %s\n\n", *outDir)

	fmt.Print("Carving passages... ")
	gen.Generate()
	fmt.Println("OK")

	fmt.Print("Placing key and exit... ")
	gen.PlaceGoal()
	fmt.Println("OK")

	fmt.Print("Placing treasures... ")
	gen.PlaceTreasures(treasureNames(*treasures))
	fmt.Printf("OK (%d treasures)\n", gen.TreasureCount)

	fmt.Print("Placing chutes... ")
	gen.PlaceChutes(*chutes)
	fmt.Printf("OK (%d chutes)\n", len(gen.Chutes))

	def := gen.Definition(*name)

	// Never write a world the game would refuse
	w, err := world.Build(def)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: generated world is invalid: %v\n", err)
		os.Exit(1)
	}

	if *asYAML {
		err = writeYAML(*outDir, def)
	} else {
		fmt.Printf("Writing %s, %s, %s... ", loader.RoomsFile(def.Name), loader.ObjectsFile(def.Name), loader.SynonymsFile(def.Name))
		err = loader.WriteFlat(*outDir, def)
	}
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")

	fmt.Printf("\nMaze generated successfully!\n")
	fmt.Printf("  - Total rooms: %d\n", gen.RoomCount())
	fmt.Printf("  - Objects: %d\n", len(w.Objects()))
	fmt.Printf("  - Unreachable rooms: %d\n", len(w.Unreachable()))
	fmt.Printf("Play it with: adventure -dir %s -world %s\n", *outDir, def.Name)
}

func writeYAML(dir string, def *world.Definition) error {
	data, err := loader.MarshalYAML(def)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(dir, def.Name+".yaml")
	fmt.Printf("Writing %s... ", path)
	return os.WriteFile(path, data, 0644)
}
