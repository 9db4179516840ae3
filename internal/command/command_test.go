package command

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lawnchairsociety/adventure/internal/object"
	"github.com/lawnchairsociety/adventure/internal/player"
	"github.com/lawnchairsociety/adventure/internal/world"
)

// testSession is a minimal Session for driving handlers directly
type testSession struct {
	world   *world.World
	player  *player.Player
	answers []string
	asked   []string
	ended   EndReason
}

func newTestSession(t *testing.T, def *world.Definition) *testSession {
	t.Helper()
	w, err := world.Build(def)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	p := player.NewPlayer()
	p.MoveTo(w.StartingRoom())
	return &testSession{world: w, player: p}
}

func (s *testSession) World() *world.World      { return s.world }
func (s *testSession) CurrentRoom() *world.Room { return s.player.CurrentRoom }
func (s *testSession) Player() *player.Player   { return s.player }
func (s *testSession) MoveTo(room *world.Room)  { s.player.MoveTo(room) }
func (s *testSession) End(reason EndReason)     { s.ended = reason }
func (s *testSession) running() bool            { return s.ended == "" }

func (s *testSession) Confirm(question string) (bool, error) {
	s.asked = append(s.asked, question)
	if len(s.answers) == 0 {
		return false, io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return strings.EqualFold(strings.TrimSpace(answer), "Y"), nil
}

// run parses and executes one line the way the game loop does
func (s *testSession) run(t *testing.T, line string) string {
	t.Helper()
	c := Parse(line, s.world.Synonyms(), s.CurrentRoom(), s.player)
	out, err := c.Execute(s)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", line, err)
	}
	return out
}

// lampWorld: room 1 NORTH to room 2, which holds the LAMP
func lampWorld() *world.Definition {
	return &world.Definition{
		Name: "Lamp",
		Rooms: []world.RoomDefinition{
			{Number: 1, Name: "Start", Description: []string{"You are at the start."},
				Motion: []world.MotionEntry{{Direction: "NORTH", Destination: 2}}},
			{Number: 2, Name: "North room", Description: []string{"You are in the north room."},
				Motion: []world.MotionEntry{{Direction: "SOUTH", Destination: 1}}},
		},
		Objects:  []*object.Object{object.New("LAMP", "a brass lamp", 2)},
		Synonyms: []world.Synonym{{Alias: "N", Canonical: "NORTH"}, {Alias: "GET", Canonical: "TAKE"}},
	}
}

// keyWorld: room 1 holds the KEY and a locked EAST exit to room 3, plus a
// fallback EAST exit to room 2 declared after it
func keyWorld() *world.Definition {
	return &world.Definition{
		Name: "Key",
		Rooms: []world.RoomDefinition{
			{Number: 1, Name: "Gate", Description: []string{"A locked gate."},
				Motion: []world.MotionEntry{
					{Direction: "EAST", Destination: 3, Key: "KEY"},
					{Direction: "WEST", Destination: 2},
					{Direction: "OUT", Destination: 0},
				}},
			{Number: 2, Name: "Side", Description: []string{"A side path."},
				Motion: []world.MotionEntry{{Direction: "EAST", Destination: 1}}},
			{Number: 3, Name: "Garden", Description: []string{"A walled garden."}},
		},
		Objects: []*object.Object{object.New("KEY", "a rusty key", 1)},
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"take lamp", []string{"TAKE", "LAMP"}},
		{"  North  ", []string{"NORTH"}},
		{"drop\t key  now", []string{"DROP", "KEY", "NOW"}},
		{"", []string{}},
		{"   ", []string{}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.input)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Tokenize(%q) (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParse(t *testing.T) {
	s := newTestSession(t, lampWorld())
	syn := s.world.Synonyms()

	tests := []struct {
		input     string
		kind      Kind
		direction string
		words     []string
	}{
		{"", KindNone, "", nil},
		{"take lamp", KindTake, "", []string{"TAKE", "LAMP"}},
		{"get lamp", KindTake, "", []string{"TAKE", "LAMP"}},
		{"DROP LAMP", KindDrop, "", []string{"DROP", "LAMP"}},
		{"help", KindHelp, "", []string{"HELP"}},
		{"look", KindLook, "", []string{"LOOK"}},
		{"inventory", KindInventory, "", []string{"INVENTORY"}},
		{"quit", KindQuit, "", []string{"QUIT"}},
		{"n", KindMotion, "NORTH", []string{"NORTH"}},
		{"xyzzy", KindMotion, "XYZZY", []string{"XYZZY"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := Parse(tt.input, syn, s.CurrentRoom(), s.player)
			if c.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", c.Kind, tt.kind)
			}
			if c.Direction != tt.direction {
				t.Errorf("direction = %q, want %q", c.Direction, tt.direction)
			}
			if diff := cmp.Diff(tt.words, c.Words); diff != "" {
				t.Errorf("words (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSubstitutesOnce(t *testing.T) {
	syn := world.NewSynonyms([]world.Synonym{
		{Alias: "X", Canonical: "Y"},
		{Alias: "Y", Canonical: "Z"},
	})

	c := Parse("x", syn, nil, nil)
	if c.Direction != "Y" {
		t.Errorf("expected single substitution to Y, got %q", c.Direction)
	}
}

func TestParseResolvesRoomBeforeInventory(t *testing.T) {
	room := world.NewRoom(1, "Room", nil, nil)
	inRoom := object.New("LAMP", "the room's lamp", 1)
	carried := object.New("LAMP", "the carried lamp", 1)
	room.AddObject(inRoom)

	p := player.NewPlayer()
	p.AddObject(carried)

	if c := Parse("take lamp", nil, room, p); c.Target != inRoom {
		t.Errorf("expected the room's lamp, got %v", c.Target)
	}

	room.RemoveObject(inRoom)
	if c := Parse("drop lamp", nil, room, p); c.Target != carried {
		t.Errorf("expected the carried lamp, got %v", c.Target)
	}

	if c := Parse("take sword", nil, room, p); c.Target != nil {
		t.Errorf("expected no target, got %v", c.Target)
	}
}

func TestLampScenario(t *testing.T) {
	s := newTestSession(t, lampWorld())
	start := s.CurrentRoom()

	s.run(t, "NORTH")
	north := s.CurrentRoom()
	if north.Number != 2 {
		t.Fatalf("expected room 2, got %d", north.Number)
	}
	if out := s.run(t, "TAKE LAMP"); out != "LAMP taken" {
		t.Errorf("unexpected take output %q", out)
	}
	s.run(t, "SOUTH")

	out := s.run(t, "INVENTORY")
	if out != "LAMP: a brass lamp" {
		t.Errorf("unexpected inventory %q", out)
	}
	if diff := cmp.Diff([]string{"LAMP"}, object.Names(s.player.GetInventory())); diff != "" {
		t.Errorf("inventory (-want +got):\n%s", diff)
	}
	if north.ObjectCount() != 0 {
		t.Errorf("expected room 2 to be empty, has %d objects", north.ObjectCount())
	}
	if start.ObjectCount() != 0 {
		t.Errorf("expected room 1 to be unaffected, has %d objects", start.ObjectCount())
	}
	if s.CurrentRoom() != start {
		t.Errorf("expected to be back in room 1")
	}
}

func TestSynonymMatchesCanonical(t *testing.T) {
	a := newTestSession(t, lampWorld())
	b := newTestSession(t, lampWorld())

	outA := a.run(t, "N")
	outB := b.run(t, "NORTH")

	if outA != outB {
		t.Errorf("N and NORTH differ: %q vs %q", outA, outB)
	}
	if a.CurrentRoom().Number != b.CurrentRoom().Number {
		t.Errorf("N and NORTH moved to different rooms")
	}
}

func TestKeyedExit(t *testing.T) {
	s := newTestSession(t, keyWorld())

	if out := s.run(t, "EAST"); out != "Command not found" {
		t.Errorf("expected Command not found, got %q", out)
	}
	if s.CurrentRoom().Number != 1 {
		t.Fatalf("expected to stay in room 1, now in %d", s.CurrentRoom().Number)
	}

	s.run(t, "TAKE KEY")
	out := s.run(t, "EAST")
	if s.CurrentRoom().Number != 3 {
		t.Fatalf("expected room 3 with the key, now in %d", s.CurrentRoom().Number)
	}
	if out != "A walled garden." {
		t.Errorf("unexpected description %q", out)
	}
	if !s.CurrentRoom().Visited() {
		t.Error("expected room 3 to be marked visited")
	}
}

func TestFirstMatchingEntryWins(t *testing.T) {
	def := &world.Definition{
		Name: "Order",
		Rooms: []world.RoomDefinition{
			{Number: 1, Name: "Fork", Motion: []world.MotionEntry{
				{Direction: "EAST", Destination: 2},
				{Direction: "EAST", Destination: 3},
			}},
			{Number: 2, Name: "First"},
			{Number: 3, Name: "Second"},
		},
	}
	s := newTestSession(t, def)
	s.run(t, "EAST")
	if s.CurrentRoom().Number != 2 {
		t.Errorf("expected the first EAST entry, went to %d", s.CurrentRoom().Number)
	}
}

func TestGameOverRoom(t *testing.T) {
	s := newTestSession(t, keyWorld())

	out := s.run(t, "OUT")
	if out != "GAME OVER!" {
		t.Errorf("expected GAME OVER!, got %q", out)
	}
	if s.ended != EndGameOver {
		t.Errorf("expected game over, got %q", s.ended)
	}
	if s.CurrentRoom().Number != 1 {
		t.Errorf("room 0 should not be entered, now in %d", s.CurrentRoom().Number)
	}
}

func TestTakeGuards(t *testing.T) {
	s := newTestSession(t, keyWorld())

	if out := s.run(t, "TAKE"); out != "Take what?" {
		t.Errorf("unexpected output %q", out)
	}
	if out := s.run(t, "TAKE SWORD"); out != "I don't see that here." {
		t.Errorf("unexpected output %q", out)
	}

	s.run(t, "TAKE KEY")
	// Already carried, so not in the room
	if out := s.run(t, "TAKE KEY"); out != "I don't see that here." {
		t.Errorf("unexpected output %q", out)
	}
	if s.player.Count() != 1 {
		t.Errorf("expected one carried object, got %d", s.player.Count())
	}
}

func TestDropGuards(t *testing.T) {
	s := newTestSession(t, keyWorld())

	if out := s.run(t, "DROP"); out != "Drop what?" {
		t.Errorf("unexpected output %q", out)
	}
	// KEY is in the room, not carried
	if out := s.run(t, "DROP KEY"); out != "You are not carrying that." {
		t.Errorf("unexpected output %q", out)
	}
	if s.CurrentRoom().ObjectCount() != 1 {
		t.Errorf("room objects changed by a failed drop")
	}

	s.run(t, "TAKE KEY")
	s.run(t, "WEST")
	if out := s.run(t, "DROP KEY"); out != "KEY dropped" {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(s.run(t, "LOOK"), "There is KEY here") {
		t.Error("expected the key to be in the side room")
	}
}

func TestObjectInExactlyOnePlace(t *testing.T) {
	s := newTestSession(t, keyWorld())
	key := s.world.Objects()[0]

	check := func(step string) {
		t.Helper()
		places := 0
		for _, room := range s.world.Rooms() {
			if room.ContainsObject(key) {
				places++
			}
		}
		if s.player.IsCarrying(key) {
			places++
		}
		if places != 1 {
			t.Errorf("after %s: KEY is in %d places", step, places)
		}
	}

	for _, line := range []string{"TAKE KEY", "TAKE KEY", "WEST", "DROP KEY", "DROP KEY", "TAKE KEY", "EAST", "DROP KEY"} {
		s.run(t, line)
		check(line)
	}
}

func TestLook(t *testing.T) {
	s := newTestSession(t, keyWorld())
	want := "A locked gate.\nThere is KEY here"
	if out := s.run(t, "LOOK"); out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestEmptyInventory(t *testing.T) {
	s := newTestSession(t, keyWorld())
	if out := s.run(t, "INVENTORY"); out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestHelpListsSynonyms(t *testing.T) {
	s := newTestSession(t, lampWorld())
	out := s.run(t, "HELP")
	if !strings.Contains(out, "NORTH") || !strings.Contains(out, "TAKE") {
		t.Errorf("expected synonym table, got %q", out)
	}
}

func TestQuit(t *testing.T) {
	s := newTestSession(t, lampWorld())
	start := s.CurrentRoom()

	s.answers = []string{"n"}
	if out := s.run(t, "QUIT"); out != "" {
		t.Errorf("expected no output on N, got %q", out)
	}
	if !s.running() || s.CurrentRoom() != start {
		t.Error("N should leave the session running in the same room")
	}
	if diff := cmp.Diff([]string{"Are you sure (Y or N)?"}, s.asked); diff != "" {
		t.Errorf("questions (-want +got):\n%s", diff)
	}

	s.answers = []string{"y"}
	if out := s.run(t, "QUIT"); out != "See you later!" {
		t.Errorf("unexpected farewell %q", out)
	}
	if s.ended != EndQuit {
		t.Errorf("expected quit, got %q", s.ended)
	}
}

func TestQuitWithClosedInput(t *testing.T) {
	s := newTestSession(t, lampWorld())
	c := Parse("QUIT", nil, s.CurrentRoom(), s.player)
	if _, err := c.Execute(s); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestForcedCommand(t *testing.T) {
	def := &world.Definition{
		Name: "Trap",
		Rooms: []world.RoomDefinition{
			{Number: 1, Name: "Trapdoor", Motion: []world.MotionEntry{{Direction: world.Forced, Destination: 2}}},
			{Number: 2, Name: "Pit", Description: []string{"You fell into a pit."}},
		},
	}
	s := newTestSession(t, def)

	if !s.CurrentRoom().IsForced() {
		t.Fatal("expected room 1 to be forced")
	}
	out, err := ForcedCommand().Execute(s)
	if err != nil {
		t.Fatal(err)
	}
	if out != "You fell into a pit." || s.CurrentRoom().Number != 2 {
		t.Errorf("forced move failed: room %d, output %q", s.CurrentRoom().Number, out)
	}
	if s.player.Stats.ForcedMoves != 1 {
		t.Errorf("expected one forced move, got %d", s.player.Stats.ForcedMoves)
	}
}

func TestKindString(t *testing.T) {
	if KindMotion.String() != "motion" {
		t.Errorf("unexpected name %q", KindMotion.String())
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("unexpected name %q", Kind(99).String())
	}
}
