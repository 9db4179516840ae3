// Command transcript reads the play journal: a list of recent sessions, or
// the full command-by-command transcript of one.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/adventure/internal/config"
	"github.com/lawnchairsociety/adventure/internal/journal"
)

func main() {
	configFile := flag.String("config", "data/adventure.yaml", "Path to game config YAML file")
	dbFile := flag.String("db", "", "SQLite journal file (overrides config)")
	limit := flag.Int("limit", 20, "Number of sessions to list")
	sessionID := flag.Int64("session", 0, "Print the transcript of this session")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	settings := cfg.Journal
	if *dbFile != "" {
		settings.Driver = "sqlite"
		settings.Path = *dbFile
	}

	j, err := journal.Open(journal.FromSettings(settings))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer j.Close()

	ctx := context.Background()
	if *sessionID > 0 {
		err = printTranscript(ctx, os.Stdout, j, *sessionID)
	} else {
		err = printSessions(ctx, os.Stdout, j, *limit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		j.Close()
		os.Exit(1)
	}
}
