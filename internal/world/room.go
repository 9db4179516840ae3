package world

import (
	"fmt"

	"github.com/lawnchairsociety/adventure/internal/object"
)

// Forced is the motion table direction that moves the player without input.
const Forced = "FORCED"

// GameOverRoom is the destination that ends the game.
const GameOverRoom = 0

// MotionEntry is one exit in a room's motion table.
type MotionEntry struct {
	Direction   string // canonical uppercase word or Forced
	Destination int    // room number, GameOverRoom ends the game
	Key         string // object name required in the inventory; empty means unconditional
}

// Unconditional reports whether the exit needs no key
func (e MotionEntry) Unconditional() bool {
	return e.Key == ""
}

// String renders the entry the way it appears in a rooms file
func (e MotionEntry) String() string {
	if e.Unconditional() {
		return fmt.Sprintf("%s %d", e.Direction, e.Destination)
	}
	return fmt.Sprintf("%s %d/%s", e.Direction, e.Destination, e.Key)
}

// Room is a numbered location. Rooms are built once per world; only their
// object set and visited flag change during play.
type Room struct {
	Number      int
	Name        string
	Description []string
	motion      []MotionEntry
	objects     []*object.Object
	visited     bool
}

func NewRoom(number int, name string, description []string, motion []MotionEntry) *Room {
	desc := make([]string, len(description))
	copy(desc, description)
	table := make([]MotionEntry, len(motion))
	copy(table, motion)

	return &Room{
		Number:      number,
		Name:        name,
		Description: desc,
		motion:      table,
		objects:     make([]*object.Object, 0),
	}
}

// MotionTable returns the exits in declared order
func (r *Room) MotionTable() []MotionEntry {
	return r.motion
}

// IsForced reports whether the first motion table entry is a forced passage
func (r *Room) IsForced() bool {
	return len(r.motion) > 0 && r.motion[0].Direction == Forced
}

// FindExit returns the first entry for direction whose key, if any,
// satisfies carrying
func (r *Room) FindExit(direction string, carrying func(key string) bool) (MotionEntry, bool) {
	for _, entry := range r.motion {
		if entry.Direction != direction {
			continue
		}
		if entry.Unconditional() || carrying(entry.Key) {
			return entry, true
		}
	}
	return MotionEntry{}, false
}

// AddObject adds an object to the room
func (r *Room) AddObject(obj *object.Object) {
	object.Add(&r.objects, obj)
}

// RemoveObject removes an object from the room.
// Returns false if the object was not here.
func (r *Room) RemoveObject(obj *object.Object) bool {
	return object.Remove(&r.objects, obj)
}

// ContainsObject checks whether the object is in the room
func (r *Room) ContainsObject(obj *object.Object) bool {
	return object.Contains(r.objects, obj)
}

// ObjectCount returns the number of objects in the room
func (r *Room) ObjectCount() int {
	return len(r.objects)
}

// Object returns the object at index in insertion order
func (r *Room) Object(index int) *object.Object {
	return r.objects[index]
}

// Objects returns a copy of the objects in the room
func (r *Room) Objects() []*object.Object {
	objs := make([]*object.Object, len(r.objects))
	copy(objs, r.objects)
	return objs
}

// FindObject finds an object in the room by canonical name
func (r *Room) FindObject(name string) (*object.Object, bool) {
	return object.Find(r.objects, name)
}

func (r *Room) SetVisited(flag bool) {
	r.visited = flag
}

func (r *Room) Visited() bool {
	return r.visited
}

// Describe returns the full description lines followed by one presence line
// per object in container order.
func (r *Room) Describe() []string {
	lines := make([]string, 0, len(r.Description)+len(r.objects))
	lines = append(lines, r.Description...)
	for _, obj := range r.objects {
		lines = append(lines, fmt.Sprintf("There is %s here", obj))
	}
	return lines
}

func (r *Room) String() string {
	return r.Name
}
