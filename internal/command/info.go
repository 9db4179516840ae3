package command

import (
	"strings"

	"github.com/lawnchairsociety/adventure/internal/help"
	"github.com/lawnchairsociety/adventure/internal/text"
)

// executeLook describes the current room again
func executeLook(s Session) string {
	return strings.Join(s.CurrentRoom().Describe(), "\n")
}

// executeHelp shows a help topic, or the general help and synonym table
func executeHelp(c *Command, s Session) string {
	return help.GetInstance().GetHelpText(c.Arg(), s.World().Synonyms())
}

// executeQuit asks for confirmation and ends the session on a Y
func executeQuit(s Session) (string, error) {
	ok, err := s.Confirm(text.Get().QuitConfirm())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	s.End(EndQuit)
	return text.Get().Farewell(), nil
}
