package command

import (
	"strings"

	"github.com/lawnchairsociety/adventure/internal/logger"
	"github.com/lawnchairsociety/adventure/internal/text"
	"github.com/lawnchairsociety/adventure/internal/world"
)

// findExit returns the first motion table entry for the direction whose key,
// if any, is being carried
func findExit(s Session, direction string) (world.MotionEntry, bool) {
	return s.CurrentRoom().FindExit(direction, s.Player().HasObject)
}

// executeMotion follows an exit out of the current room
func executeMotion(c *Command, s Session) (string, error) {
	entry, ok := findExit(s, c.Direction)
	if !ok {
		s.Player().Stats.RecordUnrecognized()
		return text.Get().CommandNotFound(), nil
	}

	if c.Direction == world.Forced {
		s.Player().Stats.RecordForcedMove()
	}

	if entry.Destination == world.GameOverRoom {
		logger.Debug("Game over", "from", s.CurrentRoom().Number, "direction", c.Direction)
		s.End(EndGameOver)
		return text.Get().GameOver(), nil
	}

	next, err := s.World().GetRoom(entry.Destination)
	if err != nil {
		return "", err
	}

	logger.Debug("Player moved", "from", s.CurrentRoom().Number, "to", next.Number, "direction", c.Direction)
	s.MoveTo(next)
	next.SetVisited(true)
	return strings.Join(next.Describe(), "\n"), nil
}
