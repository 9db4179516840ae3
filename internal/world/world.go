package world

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lawnchairsociety/adventure/internal/logger"
	"github.com/lawnchairsociety/adventure/internal/object"
)

// ErrRoomNotFound is returned when a room number is not part of the world.
var ErrRoomNotFound = errors.New("room not found")

// RoomDefinition is a room as read from world data.
type RoomDefinition struct {
	Number      int
	Name        string
	Description []string
	Motion      []MotionEntry
}

// Definition is the immutable output of loading world data. A Definition can
// be built into any number of independent worlds.
type Definition struct {
	Name     string
	Rooms    []RoomDefinition
	Objects  []*object.Object
	Synonyms []Synonym
}

// World is the playable set of rooms for one game.
type World struct {
	Name     string
	rooms    map[int]*Room
	order    []int // room numbers, ascending
	objects  []*object.Object
	synonyms *Synonyms
}

func NewWorld(name string) *World {
	return &World{
		Name:     name,
		rooms:    make(map[int]*Room),
		synonyms: NewSynonyms(nil),
	}
}

// Build creates a fresh world from a definition, placing every object in its
// initial room. It rejects data that cannot be played.
func Build(def *Definition) (*World, error) {
	w := NewWorld(def.Name)

	for _, rd := range def.Rooms {
		if err := w.AddRoom(NewRoom(rd.Number, rd.Name, rd.Description, rd.Motion)); err != nil {
			return nil, err
		}
	}
	if len(w.rooms) == 0 {
		return nil, fmt.Errorf("world %q has no rooms", def.Name)
	}

	// Every exit must lead somewhere
	for _, num := range w.order {
		for _, entry := range w.rooms[num].MotionTable() {
			if entry.Destination == GameOverRoom {
				continue
			}
			if _, ok := w.rooms[entry.Destination]; !ok {
				return nil, fmt.Errorf("room %d: exit %s leads to unknown room %d", num, entry.Direction, entry.Destination)
			}
		}
	}

	names := make(map[string]bool, len(def.Objects))
	for _, obj := range def.Objects {
		if names[obj.Name] {
			return nil, fmt.Errorf("duplicate object %q", obj.Name)
		}
		names[obj.Name] = true

		room, ok := w.rooms[obj.InitialRoom]
		if !ok {
			return nil, fmt.Errorf("object %s: initial room %d: %w", obj.Name, obj.InitialRoom, ErrRoomNotFound)
		}
		room.AddObject(obj)
		w.objects = append(w.objects, obj)
	}

	for _, num := range w.order {
		room := w.rooms[num]
		for _, entry := range room.MotionTable() {
			if !entry.Unconditional() && !names[entry.Key] {
				logger.Warning("Exit key names no object", "room", num, "direction", entry.Direction, "key", entry.Key)
			}
		}
		if room.IsForced() {
			if _, ok := room.FindExit(Forced, func(string) bool { return false }); !ok {
				logger.Warning("Forced room has only keyed passages", "room", num)
			}
		}
	}

	w.synonyms = NewSynonyms(def.Synonyms)

	logger.Debug("World built", "world", def.Name, "rooms", len(w.rooms), "objects", len(w.objects), "synonyms", w.synonyms.Len())
	return w, nil
}

// AddRoom adds a room. Room numbers must be positive and unique.
func (w *World) AddRoom(room *Room) error {
	if room.Number <= 0 {
		return fmt.Errorf("room number %d must be positive", room.Number)
	}
	if _, exists := w.rooms[room.Number]; exists {
		return fmt.Errorf("duplicate room number %d", room.Number)
	}
	w.rooms[room.Number] = room

	i := sort.SearchInts(w.order, room.Number)
	w.order = append(w.order, 0)
	copy(w.order[i+1:], w.order[i:])
	w.order[i] = room.Number
	return nil
}

// GetRoom returns the room with the given number
func (w *World) GetRoom(number int) (*Room, error) {
	room, ok := w.rooms[number]
	if !ok {
		return nil, fmt.Errorf("room %d: %w", number, ErrRoomNotFound)
	}
	return room, nil
}

// StartingRoom returns the lowest-numbered room, or nil for an empty world
func (w *World) StartingRoom() *Room {
	if len(w.order) == 0 {
		return nil
	}
	return w.rooms[w.order[0]]
}

// Rooms returns all rooms ordered by number
func (w *World) Rooms() []*Room {
	rooms := make([]*Room, len(w.order))
	for i, num := range w.order {
		rooms[i] = w.rooms[num]
	}
	return rooms
}

// GetRoomCount returns the total number of rooms in the world
func (w *World) GetRoomCount() int {
	return len(w.rooms)
}

// Objects returns every object in the world in load order
func (w *World) Objects() []*object.Object {
	return w.objects
}

func (w *World) Synonyms() *Synonyms {
	return w.synonyms
}
