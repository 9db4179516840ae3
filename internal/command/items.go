package command

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/adventure/internal/text"
)

// executeTake moves an object from the current room into the inventory
func executeTake(c *Command, s Session) string {
	if c.Arg() == "" {
		return text.Get().TakeWhat()
	}

	room := s.CurrentRoom()
	obj := c.Target
	if obj == nil || !room.ContainsObject(obj) {
		return text.Get().NotHere()
	}

	room.RemoveObject(obj)
	s.Player().AddObject(obj)
	s.Player().Stats.RecordTake()
	return text.Get().Taken(obj.Name)
}

// executeDrop moves a carried object into the current room
func executeDrop(c *Command, s Session) string {
	if c.Arg() == "" {
		return text.Get().DropWhat()
	}

	p := s.Player()
	obj := c.Target
	if obj == nil || !p.RemoveObject(obj) {
		return text.Get().NotCarrying()
	}

	s.CurrentRoom().AddObject(obj)
	p.Stats.RecordDrop()
	return text.Get().Dropped(obj.Name)
}

// executeInventory lists carried objects in the order they were picked up
func executeInventory(s Session) string {
	var sb strings.Builder
	for _, obj := range s.Player().GetInventory() {
		fmt.Fprintf(&sb, "%s: %s\n", obj.Name, obj.Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}
