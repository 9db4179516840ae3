package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gertd/go-pluralize"
	"github.com/rodaine/table"

	"github.com/lawnchairsociety/adventure/internal/journal"
)

var plural = pluralize.NewClient()

func printSessions(ctx context.Context, w io.Writer, j *journal.Journal, limit int) error {
	sessions, err := j.Sessions(ctx, limit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded.")
		return nil
	}

	tbl := table.New("ID", "World", "Player", "Started", "Ended", "Summary").WithWriter(w)
	for i := range sessions {
		s := &sessions[i]
		ended := "-"
		if s.EndedAt.Valid {
			ended = s.Reason
		}
		tbl.AddRow(s.ID, s.World, remote(s.Remote), s.StartedAt.Local().Format(time.DateTime), ended, describe(s))
	}
	tbl.Print()
	fmt.Fprintf(w, "\n%s shown\n", plural.Pluralize("session", len(sessions), true))
	return nil
}

func printTranscript(ctx context.Context, w io.Writer, j *journal.Journal, id int64) error {
	s, err := j.Session(ctx, id)
	if err != nil {
		return err
	}
	turns, err := j.Turns(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Session %d in %s by %s, started %s\n\n",
		s.ID, s.World, remote(s.Remote), s.StartedAt.Local().Format(time.DateTime))
	for _, t := range turns {
		if t.Forced {
			fmt.Fprintf(w, "[room %d] (forced)\n", t.Room)
		} else {
			fmt.Fprintf(w, "[room %d] > %s\n", t.Room, t.Input)
		}
		if t.Output != "" {
			fmt.Fprintln(w, t.Output)
		}
	}
	fmt.Fprintf(w, "\n%s\n", describe(s))
	return nil
}

// describe summarizes a finished session in one line.
func describe(s *journal.SessionRecord) string {
	summary, err := journal.DecodeSummary(s)
	if err != nil {
		return "in progress"
	}
	parts := []string{
		plural.Pluralize("command", summary.Commands, true),
		plural.Pluralize("room", summary.RoomsVisited, true) + " visited",
	}
	if n := len(summary.Carried); n > 0 {
		parts = append(parts, fmt.Sprintf("carrying %s", strings.Join(summary.Carried, ", ")))
	}
	parts = append(parts, "ended by "+string(summary.Reason))
	return strings.Join(parts, ", ")
}

func remote(addr string) string {
	if addr == "" {
		return "console"
	}
	return addr
}
