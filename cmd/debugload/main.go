// Command debugload loads a world and prints its rooms, exits, objects and
// synonyms, flagging rooms that cannot be reached from the start.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rodaine/table"

	"github.com/lawnchairsociety/adventure/internal/loader"
	"github.com/lawnchairsociety/adventure/internal/world"
)

func main() {
	dir := flag.String("dir", "data", "Directory holding world files")
	name := flag.String("world", "Small", "World to load")
	format := flag.String("format", "", "World format: flat or yaml (default: detect)")
	flag.Parse()

	def, err := loader.Load(*dir, *name, *format)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	w, err := world.Build(def)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %q: %d rooms, %d objects, %d synonyms\n\n",
		w.Name, w.GetRoomCount(), len(w.Objects()), w.Synonyms().Len())

	reachable := w.Reachable()
	rooms := table.New("Room", "Name", "Exits", "Objects", "Reachable")
	for _, room := range w.Rooms() {
		exits := make([]string, 0, len(room.MotionTable()))
		for _, e := range room.MotionTable() {
			exits = append(exits, e.String())
		}
		rooms.AddRow(room.Number, room.Name, strings.Join(exits, ", "), strings.Join(objectNames(room), ", "), reachable[room.Number])
	}
	rooms.Print()

	fmt.Println()
	objects := table.New("Object", "Description", "Starts In")
	for _, obj := range w.Objects() {
		objects.AddRow(obj.Name, obj.Description, obj.InitialRoom)
	}
	objects.Print()

	if entries := w.Synonyms().Entries(); len(entries) > 0 {
		fmt.Println()
		synonyms := table.New("Word", "Means")
		for _, e := range entries {
			synonyms.AddRow(e.Alias, e.Canonical)
		}
		synonyms.Print()
	}

	fmt.Println()
	if unreachable := w.Unreachable(); len(unreachable) > 0 {
		fmt.Printf("Unreachable rooms: %v\n", unreachable)
	}
	if !w.CanEnd() {
		fmt.Println("Warning: no reachable exit ends the game")
	}
}

func objectNames(room *world.Room) []string {
	names := make([]string, 0, room.ObjectCount())
	for _, obj := range room.Objects() {
		names = append(names, obj.Name)
	}
	return names
}
