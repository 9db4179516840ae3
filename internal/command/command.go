// Package command turns one line of player input into a command and runs it
// against a game session.
package command

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/adventure/internal/object"
	"github.com/lawnchairsociety/adventure/internal/player"
	"github.com/lawnchairsociety/adventure/internal/world"
)

// Kind identifies what a parsed command does
type Kind int

const (
	KindNone Kind = iota // empty input
	KindTake
	KindDrop
	KindHelp
	KindLook
	KindInventory
	KindQuit
	KindMotion // any other word is a direction
)

var kindNames = map[Kind]string{
	KindNone:      "none",
	KindTake:      "take",
	KindDrop:      "drop",
	KindHelp:      "help",
	KindLook:      "look",
	KindInventory: "inventory",
	KindQuit:      "quit",
	KindMotion:    "motion",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// vocabulary maps the fixed command words. Anything else is a direction.
var vocabulary = map[string]Kind{
	"TAKE":      KindTake,
	"DROP":      KindDrop,
	"HELP":      KindHelp,
	"LOOK":      KindLook,
	"INVENTORY": KindInventory,
	"QUIT":      KindQuit,
}

// EndReason says why a session stopped
type EndReason string

const (
	EndQuit     EndReason = "quit"
	EndGameOver EndReason = "game over"
)

// Session is the state a command runs against. It is satisfied by
// *game.Session.
type Session interface {
	World() *world.World
	CurrentRoom() *world.Room
	Player() *player.Player
	MoveTo(room *world.Room)
	End(reason EndReason)
	// Confirm asks a yes/no question and reads the answer
	Confirm(question string) (bool, error)
}

type Command struct {
	Kind      Kind
	Words     []string       // tokens after synonym substitution
	Direction string         // set for KindMotion
	Target    *object.Object // resolved from Words[1], nil when nothing matched
}

// Tokenize upper-cases a line and splits it on runs of whitespace
func Tokenize(line string) []string {
	return strings.Fields(strings.ToUpper(line))
}

// Parse builds a command from a raw input line. Synonyms are substituted
// once per token, then the second word is looked up as an object in the room
// and then the inventory.
func Parse(line string, synonyms *world.Synonyms, room *world.Room, p *player.Player) *Command {
	words := synonyms.Substitute(Tokenize(line))
	if len(words) == 0 {
		return &Command{Kind: KindNone}
	}

	c := &Command{Words: words}
	if len(words) >= 2 {
		c.Target = resolveTarget(words[1], room, p)
	}

	kind, ok := vocabulary[words[0]]
	if !ok {
		kind = KindMotion
		c.Direction = words[0]
	}
	c.Kind = kind
	return c
}

// ForcedCommand is the motion synthesized when the current room forces the
// player onward
func ForcedCommand() *Command {
	return &Command{
		Kind:      KindMotion,
		Words:     []string{world.Forced},
		Direction: world.Forced,
	}
}

// resolveTarget finds an object by name, current room first
func resolveTarget(name string, room *world.Room, p *player.Player) *object.Object {
	if room != nil {
		if obj, ok := room.FindObject(name); ok {
			return obj
		}
	}
	if p != nil {
		if obj, ok := p.FindObject(name); ok {
			return obj
		}
	}
	return nil
}

// Arg returns the word after the verb, or "" when there is none
func (c *Command) Arg() string {
	if len(c.Words) < 2 {
		return ""
	}
	return c.Words[1]
}

func (c *Command) String() string {
	return strings.Join(c.Words, " ")
}

// Execute runs the command and returns the text to show the player. An error
// means the session cannot continue, for example when input is closed while
// QUIT waits for an answer.
func (c *Command) Execute(s Session) (string, error) {
	switch c.Kind {
	case KindNone:
		return "", nil
	case KindTake:
		return executeTake(c, s), nil
	case KindDrop:
		return executeDrop(c, s), nil
	case KindHelp:
		return executeHelp(c, s), nil
	case KindLook:
		return executeLook(s), nil
	case KindInventory:
		return executeInventory(s), nil
	case KindQuit:
		return executeQuit(s)
	case KindMotion:
		return executeMotion(c, s)
	default:
		return "", fmt.Errorf("unhandled command kind %v", c.Kind)
	}
}
