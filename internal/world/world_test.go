package world

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lawnchairsociety/adventure/internal/object"
)

func testDefinition() *Definition {
	return &Definition{
		Name: "Test",
		Rooms: []RoomDefinition{
			{Number: 2, Name: "Hill", Description: []string{"You are on a hill."}, Motion: []MotionEntry{{Direction: "SOUTH", Destination: 1}}},
			{Number: 1, Name: "Road", Description: []string{"You are on a road.", "It is muddy."}, Motion: []MotionEntry{{Direction: "NORTH", Destination: 2}}},
			{Number: 3, Name: "Pit", Description: []string{"You fall."}, Motion: []MotionEntry{{Direction: Forced, Destination: 0}}},
		},
		Objects: []*object.Object{
			object.New("LAMP", "a brass lamp", 2),
			object.New("KEYS", "a set of keys", 2),
		},
		Synonyms: []Synonym{{Alias: "N", Canonical: "NORTH"}},
	}
}

func TestBuild(t *testing.T) {
	w, err := Build(testDefinition())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if w.GetRoomCount() != 3 {
		t.Errorf("expected 3 rooms, got %d", w.GetRoomCount())
	}

	start := w.StartingRoom()
	if start == nil || start.Number != 1 {
		t.Fatalf("expected starting room 1, got %v", start)
	}

	var numbers []int
	for _, r := range w.Rooms() {
		numbers = append(numbers, r.Number)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, numbers); diff != "" {
		t.Errorf("rooms not ordered by number (-want +got):\n%s", diff)
	}

	hill, err := w.GetRoom(2)
	if err != nil {
		t.Fatalf("GetRoom(2): %v", err)
	}
	if diff := cmp.Diff([]string{"LAMP", "KEYS"}, object.Names(hill.Objects())); diff != "" {
		t.Errorf("objects not seeded in load order (-want +got):\n%s", diff)
	}

	if canonical, ok := w.Synonyms().Lookup("N"); !ok || canonical != "NORTH" {
		t.Errorf("expected synonym N=NORTH, got %q (%v)", canonical, ok)
	}
}

func TestBuildProducesIndependentWorlds(t *testing.T) {
	def := testDefinition()
	a, err := Build(def)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(def)
	if err != nil {
		t.Fatal(err)
	}

	roomA, _ := a.GetRoom(2)
	roomB, _ := b.GetRoom(2)
	lamp, _ := roomA.FindObject("LAMP")
	roomA.RemoveObject(lamp)
	roomA.SetVisited(true)

	if roomB.ObjectCount() != 2 {
		t.Errorf("mutating one world changed another: %d objects", roomB.ObjectCount())
	}
	if roomB.Visited() {
		t.Error("visited flag leaked between worlds")
	}
}

func TestGetRoomNotFound(t *testing.T) {
	w, err := Build(testDefinition())
	if err != nil {
		t.Fatal(err)
	}

	_, err = w.GetRoom(42)
	if !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
	_, err = w.GetRoom(GameOverRoom)
	if !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("room 0 is not a room, got %v", err)
	}
}

func TestBuildRejectsBadData(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Definition)
		wantErr string
	}{
		{
			name:    "no rooms",
			mutate:  func(d *Definition) { d.Rooms = nil; d.Objects = nil },
			wantErr: "no rooms",
		},
		{
			name: "duplicate room",
			mutate: func(d *Definition) {
				d.Rooms = append(d.Rooms, RoomDefinition{Number: 1, Name: "Again"})
			},
			wantErr: "duplicate room number 1",
		},
		{
			name: "non-positive room",
			mutate: func(d *Definition) {
				d.Rooms = append(d.Rooms, RoomDefinition{Number: -4, Name: "Negative"})
			},
			wantErr: "must be positive",
		},
		{
			name: "dangling exit",
			mutate: func(d *Definition) {
				d.Rooms[0].Motion = append(d.Rooms[0].Motion, MotionEntry{Direction: "WEST", Destination: 9})
			},
			wantErr: "unknown room 9",
		},
		{
			name: "duplicate object",
			mutate: func(d *Definition) {
				d.Objects = append(d.Objects, object.New("LAMP", "another lamp", 1))
			},
			wantErr: `duplicate object "LAMP"`,
		},
		{
			name: "object in missing room",
			mutate: func(d *Definition) {
				d.Objects = append(d.Objects, object.New("ROD", "a rod", 7))
			},
			wantErr: "initial room 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := testDefinition()
			tt.mutate(def)
			_, err := Build(def)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestAddRoomKeepsOrder(t *testing.T) {
	w := NewWorld("Order")
	for _, n := range []int{5, 2, 9, 1} {
		if err := w.AddRoom(NewRoom(n, "Room", nil, nil)); err != nil {
			t.Fatal(err)
		}
	}
	if w.StartingRoom().Number != 1 {
		t.Errorf("expected lowest room first, got %d", w.StartingRoom().Number)
	}
	var numbers []int
	for _, r := range w.Rooms() {
		numbers = append(numbers, r.Number)
	}
	if diff := cmp.Diff([]int{1, 2, 5, 9}, numbers); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEmptyWorld(t *testing.T) {
	w := NewWorld("Empty")
	if w.StartingRoom() != nil {
		t.Error("expected no starting room")
	}
	if w.Synonyms().Len() != 0 {
		t.Error("expected empty synonym table")
	}
}
