// Package game runs one adventure: it owns the session state and the
// read-parse-execute loop.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lawnchairsociety/adventure/internal/command"
	"github.com/lawnchairsociety/adventure/internal/logger"
	"github.com/lawnchairsociety/adventure/internal/player"
	"github.com/lawnchairsociety/adventure/internal/text"
	"github.com/lawnchairsociety/adventure/internal/world"
)

// ErrForcedLoop is returned when forced passages keep moving the player
// without ever reaching a room that waits for input.
var ErrForcedLoop = errors.New("forced passages do not end")

// ErrForcedStuck is returned when a forced room has no passage the player
// can take.
var ErrForcedStuck = errors.New("forced passage is barred")

// Reasons a session can end besides QUIT and reaching room 0
const (
	EndInputClosed command.EndReason = "input closed"
	EndForcedLoop  command.EndReason = "forced loop"
	EndForcedStuck command.EndReason = "stuck"
	EndCancelled   command.EndReason = "cancelled"
)

// DefaultMaxForcedHops bounds consecutive forced moves when Options leaves it unset
const DefaultMaxForcedHops = 32

// LineReader reads one line of player input after showing a prompt.
// io.EOF means the player is gone.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Recorder receives every turn of a session. A failing recorder is logged
// and never stops play.
type Recorder interface {
	Record(turn Turn) error
	Finish(summary Summary) error
}

// Turn is one executed command
type Turn struct {
	Number int
	Room   int // room the command was issued in
	Input  string
	Output string
	Forced bool
	At     time.Time
}

type Options struct {
	Prompt        string
	MaxForcedHops int
	Recorder      Recorder
}

// Session is a single player's game against one world. It satisfies
// command.Session.
type Session struct {
	world   *world.World
	player  *player.Player
	in      LineReader
	out     io.Writer
	opts    Options
	turns   int
	running bool
	reason  command.EndReason
	started time.Time
}

// NewSession places a new player in the world's lowest-numbered room
func NewSession(w *world.World, in LineReader, out io.Writer, opts Options) (*Session, error) {
	start := w.StartingRoom()
	if start == nil {
		return nil, fmt.Errorf("world %q has no starting room", w.Name)
	}
	if opts.MaxForcedHops <= 0 {
		opts.MaxForcedHops = DefaultMaxForcedHops
	}

	p := player.NewPlayer()
	p.PlaceIn(start)
	start.SetVisited(true)

	return &Session{
		world:   w,
		player:  p,
		in:      in,
		out:     out,
		opts:    opts,
		running: true,
	}, nil
}

func (s *Session) World() *world.World {
	return s.world
}

func (s *Session) CurrentRoom() *world.Room {
	return s.player.CurrentRoom
}

func (s *Session) Player() *player.Player {
	return s.player
}

func (s *Session) MoveTo(room *world.Room) {
	s.player.MoveTo(room)
}

// End stops the loop after the current command. The first reason sticks.
func (s *Session) End(reason command.EndReason) {
	if !s.running {
		return
	}
	s.running = false
	s.reason = reason
}

// Running reports whether the session still accepts commands
func (s *Session) Running() bool {
	return s.running
}

// Reason returns why the session ended, empty while it is running
func (s *Session) Reason() command.EndReason {
	return s.reason
}

// Confirm asks a question and reads the answer. Only Y, in either case,
// counts as yes.
func (s *Session) Confirm(question string) (bool, error) {
	answer, err := s.in.ReadLine(question + " ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "Y"), nil
}

// Run shows the starting room and then executes commands until the player
// quits, reaches room 0, or input ends. A forced room moves the player on
// without reading input. Cancelling ctx stops the loop before the next
// command; a read already in progress is not interrupted.
func (s *Session) Run(ctx context.Context) error {
	s.started = time.Now()
	logger.Info("Game started", "world", s.world.Name, "room", s.CurrentRoom().Number)
	s.print(strings.Join(s.CurrentRoom().Describe(), "\n"))

	err := s.loop(ctx)

	summary := s.Summary()
	logger.Info("Game ended",
		"world", summary.World,
		"reason", string(summary.Reason),
		"commands", summary.Commands,
		"moves", summary.Moves,
		"rooms_visited", summary.RoomsVisited,
		"duration", summary.Duration)
	if s.opts.Recorder != nil {
		if rerr := s.opts.Recorder.Finish(summary); rerr != nil {
			logger.Warning("Failed to record game end", "error", rerr)
		}
	}
	return err
}

func (s *Session) loop(ctx context.Context) error {
	hops := 0
	for s.running {
		if err := ctx.Err(); err != nil {
			s.End(EndCancelled)
			return err
		}

		var cmd *command.Command
		forced := s.CurrentRoom().IsForced()
		if forced {
			if _, ok := s.CurrentRoom().FindExit(world.Forced, s.player.HasObject); !ok {
				logger.Error("Forced passage is barred", "room", s.CurrentRoom().Number)
				s.print(text.Get().ForcedStuck())
				s.End(EndForcedStuck)
				return ErrForcedStuck
			}
			hops++
			if hops > s.opts.MaxForcedHops {
				logger.Error("Forced passages loop", "room", s.CurrentRoom().Number, "hops", hops-1)
				s.print(text.Get().ForcedLoop())
				s.End(EndForcedLoop)
				return ErrForcedLoop
			}
			cmd = command.ForcedCommand()
		} else {
			hops = 0
			line, err := s.in.ReadLine(s.opts.Prompt)
			if err != nil {
				if errors.Is(err, io.EOF) {
					s.End(EndInputClosed)
					return nil
				}
				return err
			}
			cmd = command.Parse(line, s.world.Synonyms(), s.CurrentRoom(), s.player)
			if cmd.Kind == command.KindNone {
				continue
			}
			s.player.Stats.RecordCommand()
		}

		room := s.CurrentRoom().Number
		output, err := cmd.Execute(s)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.End(EndInputClosed)
				return nil
			}
			return err
		}
		s.print(output)

		s.turns++
		s.record(Turn{
			Number: s.turns,
			Room:   room,
			Input:  cmd.String(),
			Output: output,
			Forced: forced,
			At:     time.Now(),
		})
	}
	return nil
}

func (s *Session) record(turn Turn) {
	if s.opts.Recorder == nil {
		return
	}
	if err := s.opts.Recorder.Record(turn); err != nil {
		logger.Warning("Failed to record turn", "turn", turn.Number, "error", err)
	}
}

func (s *Session) print(message string) {
	if message == "" {
		return
	}
	fmt.Fprintln(s.out, message)
}
