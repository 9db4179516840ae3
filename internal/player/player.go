// Package player holds the adventurer: where they stand and what they carry.
package player

import (
	"github.com/lawnchairsociety/adventure/internal/object"
	"github.com/lawnchairsociety/adventure/internal/world"
)

type Player struct {
	CurrentRoom *world.Room
	Inventory   []*object.Object
	Stats       *Statistics
}

func NewPlayer() *Player {
	return &Player{
		Inventory: make([]*object.Object, 0),
		Stats:     NewStatistics(),
	}
}

// MoveTo puts the player in a room and counts the move
func (p *Player) MoveTo(room *world.Room) {
	p.CurrentRoom = room
	p.Stats.RecordMove(room.Number)
}

// PlaceIn sets the player down in a room, as at the start of a game. It is
// a visit but not a move.
func (p *Player) PlaceIn(room *world.Room) {
	p.CurrentRoom = room
	p.Stats.RecordVisit(room.Number)
}

// AddObject appends an object to the inventory
func (p *Player) AddObject(obj *object.Object) {
	object.Add(&p.Inventory, obj)
}

// RemoveObject takes an object out of the inventory.
// Returns false if it wasn't being carried.
func (p *Player) RemoveObject(obj *object.Object) bool {
	return object.Remove(&p.Inventory, obj)
}

// IsCarrying reports whether the exact object is in the inventory
func (p *Player) IsCarrying(obj *object.Object) bool {
	return object.Contains(p.Inventory, obj)
}

// HasObject checks the inventory for an object by name, which is how
// motion table keys are matched
func (p *Player) HasObject(name string) bool {
	_, ok := object.Find(p.Inventory, name)
	return ok
}

func (p *Player) FindObject(name string) (*object.Object, bool) {
	return object.Find(p.Inventory, name)
}

// GetInventory returns a copy of the inventory in the order it was filled
func (p *Player) GetInventory() []*object.Object {
	inv := make([]*object.Object, len(p.Inventory))
	copy(inv, p.Inventory)
	return inv
}

func (p *Player) Count() int {
	return len(p.Inventory)
}
