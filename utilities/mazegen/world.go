package main

import (
	"fmt"

	"github.com/lawnchairsociety/adventure/internal/object"
	"github.com/lawnchairsociety/adventure/internal/world"
)

// KeyObject opens the way out of the maze
const KeyObject = "KEY"

// Treasures are scattered over dead ends for the player to collect
var Treasures = []struct {
	Name        string
	Description string
}{
	{"COINS", "a small pile of silver coins"},
	{"JEWEL", "a sparkling green jewel"},
	{"PEARL", "a large pearl"},
	{"CHALICE", "a tarnished gold chalice"},
	{"RING", "a ring engraved with strange runes"},
	{"IDOL", "a tiny jade idol"},
}

func treasureNames(n int) []string {
	if n > len(Treasures) {
		n = len(Treasures)
	}
	names := make([]string, n)
	for i := range names {
		names[i] = Treasures[i].Name
	}
	return names
}

// roomNumber maps a cell to its room; the entrance is room 1 so that it is
// the starting room.
func (mg *MazeGenerator) roomNumber(x, y int) int {
	return y*mg.Width + x + 1
}

// Definition converts the maze into a playable world
func (mg *MazeGenerator) Definition(name string) *world.Definition {
	def := &world.Definition{
		Name: name,
		Synonyms: []world.Synonym{
			{Alias: "N", Canonical: "NORTH"},
			{Alias: "S", Canonical: "SOUTH"},
			{Alias: "E", Canonical: "EAST"},
			{Alias: "W", Canonical: "WEST"},
			{Alias: "D", Canonical: "DOWN"},
			{Alias: "GET", Canonical: "TAKE"},
			{Alias: "I", Canonical: "INVENTORY"},
			{Alias: "L", Canonical: "LOOK"},
		},
	}

	hasKey := false
	descriptions := make(map[string]string)
	for _, t := range Treasures {
		descriptions[t.Name] = t.Description
	}
	descriptions[KeyObject] = "a heavy iron key"

	chuteFrom := make(map[int]int) // cell room -> chute room
	for i, c := range mg.Chutes {
		chuteFrom[mg.roomNumber(c.FromX, c.FromY)] = mg.Width*mg.Height + i + 1
	}

	for y := 0; y < mg.Height; y++ {
		for x := 0; x < mg.Width; x++ {
			cell := mg.Grid[y][x]
			number := mg.roomNumber(x, y)
			room := world.RoomDefinition{Number: number}

			switch cell.Role {
			case RoleEntrance:
				room.Name = "Maze entrance"
				room.Description = []string{"You are at the entrance to a maze of twisty little passages."}
			case RoleExit:
				room.Name = "Crack of daylight"
				room.Description = []string{
					"You are in a maze of twisty little passages, all alike.",
					"Daylight shows through a locked iron door leading out.",
				}
			default:
				room.Name = "Maze"
				room.Description = []string{"You are in a maze of twisty little passages, all alike."}
			}

			for _, dir := range AllDirections() {
				if cell.Walls[dir] {
					continue
				}
				nx, ny := mg.neighbor(x, y, dir)
				room.Motion = append(room.Motion, world.MotionEntry{
					Direction:   dir.String(),
					Destination: mg.roomNumber(nx, ny),
				})
			}
			if chute, ok := chuteFrom[number]; ok {
				room.Description = append(room.Description, "A dark hole in the floor leads down.")
				room.Motion = append(room.Motion, world.MotionEntry{Direction: "DOWN", Destination: chute})
			}
			if cell.Role == RoleExit {
				room.Motion = append(room.Motion, world.MotionEntry{Direction: "OUT", Destination: world.GameOverRoom})
			}

			if cell.Object != "" {
				if cell.Object == KeyObject {
					hasKey = true
				}
				def.Objects = append(def.Objects, object.New(cell.Object, descriptions[cell.Object], number))
			}

			def.Rooms = append(def.Rooms, room)
		}
	}

	// The exit only opens for the key, when there is one
	if hasKey {
		for i := range def.Rooms {
			motion := def.Rooms[i].Motion
			if n := len(motion); n > 0 && motion[n-1].Destination == world.GameOverRoom {
				motion[n-1].Key = KeyObject
			}
		}
	}

	for i, c := range mg.Chutes {
		def.Rooms = append(def.Rooms, world.RoomDefinition{
			Number:      mg.Width*mg.Height + i + 1,
			Name:        fmt.Sprintf("Chute %d", i+1),
			Description: []string{"You tumble down a steep, slippery chute!"},
			Motion:      []world.MotionEntry{{Direction: world.Forced, Destination: mg.roomNumber(c.ToX, c.ToY)}},
		})
	}

	return def
}
