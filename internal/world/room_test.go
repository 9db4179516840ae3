package world

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lawnchairsociety/adventure/internal/object"
)

func TestRoomObjects(t *testing.T) {
	room := NewRoom(1, "Road", []string{"A road."}, nil)
	lamp := object.New("LAMP", "a lamp", 1)
	keys := object.New("KEYS", "some keys", 1)

	room.AddObject(lamp)
	room.AddObject(keys)

	if room.ObjectCount() != 2 {
		t.Fatalf("expected 2 objects, got %d", room.ObjectCount())
	}
	if room.Object(0) != lamp || room.Object(1) != keys {
		t.Error("objects not kept in insertion order")
	}
	if !room.ContainsObject(keys) {
		t.Error("expected room to contain KEYS")
	}
	if found, ok := room.FindObject("LAMP"); !ok || found != lamp {
		t.Error("expected to find LAMP by name")
	}

	if !room.RemoveObject(lamp) {
		t.Error("expected LAMP to be removed")
	}
	if room.ContainsObject(lamp) {
		t.Error("LAMP still in room after removal")
	}
	if room.RemoveObject(lamp) {
		t.Error("removing an absent object should report false")
	}

	// Objects returns a copy
	objs := room.Objects()
	objs[0] = lamp
	if room.Object(0) != keys {
		t.Error("Objects() exposed internal storage")
	}
}

func TestRoomDescribe(t *testing.T) {
	room := NewRoom(2, "Hill", []string{"You are on a hill.", "Wind blows."}, nil)
	room.AddObject(object.New("LAMP", "a lamp", 2))
	room.AddObject(object.New("ROD", "a rod", 2))

	want := []string{
		"You are on a hill.",
		"Wind blows.",
		"There is LAMP here",
		"There is ROD here",
	}
	if diff := cmp.Diff(want, room.Describe()); diff != "" {
		t.Errorf("Describe() mismatch (-want +got):\n%s", diff)
	}
}

func TestRoomIsForced(t *testing.T) {
	tests := []struct {
		name   string
		motion []MotionEntry
		want   bool
	}{
		{"no exits", nil, false},
		{"forced first", []MotionEntry{{Direction: Forced, Destination: 3}}, true},
		{"forced later", []MotionEntry{{Direction: "NORTH", Destination: 2}, {Direction: Forced, Destination: 3}}, false},
		{"ordinary", []MotionEntry{{Direction: "NORTH", Destination: 2}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := NewRoom(1, "Room", nil, tt.motion)
			if got := room.IsForced(); got != tt.want {
				t.Errorf("IsForced() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoomFindExit(t *testing.T) {
	room := NewRoom(1, "Grate", nil, []MotionEntry{
		{Direction: "DOWN", Destination: 3, Key: "KEYS"},
		{Direction: "DOWN", Destination: 2},
		{Direction: "NORTH", Destination: 4},
	})
	carrying := func(held ...string) func(string) bool {
		return func(key string) bool {
			for _, h := range held {
				if h == key {
					return true
				}
			}
			return false
		}
	}

	if entry, ok := room.FindExit("DOWN", carrying()); !ok || entry.Destination != 2 {
		t.Errorf("without KEYS expected room 2, got %v %v", entry, ok)
	}
	if entry, ok := room.FindExit("DOWN", carrying("KEYS")); !ok || entry.Destination != 3 {
		t.Errorf("with KEYS expected room 3, got %v %v", entry, ok)
	}
	if _, ok := room.FindExit("WEST", carrying("KEYS")); ok {
		t.Error("expected no WEST exit")
	}
}

func TestRoomVisited(t *testing.T) {
	room := NewRoom(1, "Road", nil, nil)
	if room.Visited() {
		t.Error("new rooms start unvisited")
	}
	room.SetVisited(true)
	if !room.Visited() {
		t.Error("expected room to be visited")
	}
	room.SetVisited(false)
	if room.Visited() {
		t.Error("expected visited flag to reset")
	}
}

func TestMotionEntryString(t *testing.T) {
	if got := (MotionEntry{Direction: "EAST", Destination: 3, Key: "KEY"}).String(); got != "EAST 3/KEY" {
		t.Errorf("got %q", got)
	}
	if got := (MotionEntry{Direction: "WEST", Destination: 1}).String(); got != "WEST 1" {
		t.Errorf("got %q", got)
	}
}
