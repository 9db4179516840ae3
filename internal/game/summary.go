package game

import (
	"time"

	"github.com/lawnchairsociety/adventure/internal/command"
	"github.com/lawnchairsociety/adventure/internal/object"
)

// Summary describes a session, normally read once it has ended
type Summary struct {
	World        string            `json:"world"`
	Reason       command.EndReason `json:"reason"`
	Turns        int               `json:"turns"`
	Commands     int               `json:"commands"`
	Moves        int               `json:"moves"`
	ForcedMoves  int               `json:"forced_moves"`
	Unrecognized int               `json:"unrecognized"`
	RoomsVisited int               `json:"rooms_visited"`
	FinalRoom    int               `json:"final_room"`
	Carried      []string          `json:"carried"`
	Duration     time.Duration     `json:"duration"`
}

func (s *Session) Summary() Summary {
	stats := s.player.Stats
	var duration time.Duration
	if !s.started.IsZero() {
		duration = time.Since(s.started)
	}
	return Summary{
		World:        s.world.Name,
		Reason:       s.reason,
		Turns:        s.turns,
		Commands:     stats.Commands,
		Moves:        stats.Moves,
		ForcedMoves:  stats.ForcedMoves,
		Unrecognized: stats.Unrecognized,
		RoomsVisited: stats.DistinctRooms(),
		FinalRoom:    s.CurrentRoom().Number,
		Carried:      object.Names(s.player.GetInventory()),
		Duration:     duration,
	}
}
