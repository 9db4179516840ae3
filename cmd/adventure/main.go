package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lawnchairsociety/adventure/internal/config"
	"github.com/lawnchairsociety/adventure/internal/console"
	"github.com/lawnchairsociety/adventure/internal/game"
	"github.com/lawnchairsociety/adventure/internal/help"
	"github.com/lawnchairsociety/adventure/internal/journal"
	"github.com/lawnchairsociety/adventure/internal/loader"
	"github.com/lawnchairsociety/adventure/internal/logger"
	"github.com/lawnchairsociety/adventure/internal/server"
	"github.com/lawnchairsociety/adventure/internal/text"
	"github.com/lawnchairsociety/adventure/internal/world"
)

type options struct {
	configFile  string
	loggingFile string
	dir         string
	name        string
	format      string
	record      bool
	serve       bool
	telnetAddr  string
	wsAddr      string
}

func main() {
	var opts options
	flag.StringVar(&opts.configFile, "config", "data/adventure.yaml", "Path to game config YAML file")
	flag.StringVar(&opts.loggingFile, "logging", "data/logging.yaml", "Path to logging config YAML file")
	flag.StringVar(&opts.dir, "dir", "", "Directory holding world files (overrides config)")
	flag.StringVar(&opts.name, "world", "", "World to play (asked for when empty)")
	flag.StringVar(&opts.format, "format", "", "World format: flat or yaml (default: detect)")
	flag.BoolVar(&opts.record, "journal", false, "Record the game in the journal database")
	flag.BoolVar(&opts.serve, "serve", false, "Serve the world over telnet and WebSocket instead of playing locally")
	flag.StringVar(&opts.telnetAddr, "telnet", "", "Telnet listen address (overrides config)")
	flag.StringVar(&opts.wsAddr, "websocket", "", "WebSocket listen address (overrides config)")
	flag.Parse()

	logConfig, err := logger.LoadConfig(opts.loggingFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	logger.Initialize(logConfig)
	defer logger.Close()

	if err := run(opts); err != nil {
		logger.Error("Adventure failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Close()
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		logger.Warning("Failed to load config, using defaults", "path", opts.configFile, "error", err)
	}
	applyFlags(cfg, opts)

	if cfg.World.TextFile != "" {
		if err := text.Initialize(cfg.World.TextFile); err != nil {
			logger.Warning("Failed to load text config, using built-in messages", "path", cfg.World.TextFile, "error", err)
		}
	}
	if cfg.World.HelpFile != "" {
		if err := help.Initialize(cfg.World.HelpFile); err != nil {
			logger.Warning("Failed to load help config, showing shortcuts only", "path", cfg.World.HelpFile, "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.serve {
		return serve(ctx, cfg)
	}
	return play(ctx, cfg)
}

func applyFlags(cfg *config.GameConfig, opts options) {
	if opts.dir != "" {
		cfg.World.Dir = opts.dir
	}
	if opts.name != "" {
		cfg.World.Name = opts.name
	}
	if opts.format != "" {
		cfg.World.Format = opts.format
	}
	if opts.record {
		cfg.Journal.Enabled = true
	}
	if opts.telnetAddr != "" {
		cfg.Server.TelnetAddr = opts.telnetAddr
	}
	if opts.wsAddr != "" {
		cfg.Server.WebSocketAddr = opts.wsAddr
	}
}

func openJournal(cfg *config.GameConfig) (*journal.Journal, error) {
	if !cfg.Journal.Enabled {
		return nil, nil
	}
	j, err := journal.Open(journal.FromSettings(cfg.Journal))
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	logger.Info("Journal opened", "driver", cfg.Journal.Driver)
	return j, nil
}

// play runs one game on the local terminal.
func play(ctx context.Context, cfg *config.GameConfig) error {
	con := console.Open()
	defer con.Close()

	name := cfg.World.Name
	if name == "" {
		fmt.Fprintln(con, text.Get().Welcome())
		line, err := con.ReadLine("")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		name = strings.TrimSpace(line)
	}

	def, err := loader.Load(cfg.World.Dir, name, cfg.World.Format)
	if err != nil {
		return err
	}
	w, err := world.Build(def)
	if err != nil {
		return err
	}

	gameOpts := game.Options{
		Prompt:        cfg.Play.Prompt,
		MaxForcedHops: cfg.Play.MaxForcedHops,
	}

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
		rec, err := j.StartSession(ctx, def.Name, "console")
		if err != nil {
			logger.Warning("Failed to start journal session", "error", err)
		} else {
			gameOpts.Recorder = rec
		}
	}

	session, err := game.NewSession(w, con, con, gameOpts)
	if err != nil {
		return err
	}

	err = session.Run(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return nil
	case errors.Is(err, game.ErrForcedLoop):
		// The player has already been told
		logger.Warning("World has a forced loop", "world", def.Name, "room", session.CurrentRoom().Number)
		return nil
	case errors.Is(err, game.ErrForcedStuck):
		logger.Warning("World has a barred forced passage", "world", def.Name, "room", session.CurrentRoom().Number)
		return nil
	default:
		return err
	}
}

// serve offers the world to remote players until interrupted.
func serve(ctx context.Context, cfg *config.GameConfig) error {
	if cfg.World.Name == "" {
		return errors.New("a world name is required to serve (-world or world.name)")
	}
	if cfg.Server.TelnetAddr == "" && cfg.Server.WebSocketAddr == "" {
		return errors.New("no listener configured (server.telnet_addr or server.websocket_addr)")
	}

	def, err := loader.Load(cfg.World.Dir, cfg.World.Name, cfg.World.Format)
	if err != nil {
		return err
	}
	// Fail at startup rather than on the first connection
	if _, err := world.Build(def); err != nil {
		return err
	}

	srv := server.NewServer(def, cfg)

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
		srv.SetJournal(j)
	}

	if len(cfg.WebSocket.AllowedOrigins) == 0 {
		logger.Info("WebSocket CORS policy", "mode", "same-origin")
	} else if len(cfg.WebSocket.AllowedOrigins) == 1 && cfg.WebSocket.AllowedOrigins[0] == "*" {
		logger.Warning("WebSocket CORS allows all origins (not recommended for production)")
	} else {
		logger.Info("WebSocket CORS policy", "allowed_origins", cfg.WebSocket.AllowedOrigins)
	}

	errc := make(chan error, 2)
	if cfg.Server.TelnetAddr != "" {
		go func() { errc <- srv.Start() }()
	}
	if cfg.Server.WebSocketAddr != "" {
		go func() { errc <- srv.StartWebSocket(cfg.Server.WebSocketAddr) }()
	}

	logger.Info("Adventure server running",
		"world", def.Name,
		"telnet", cfg.Server.TelnetAddr,
		"websocket", cfg.Server.WebSocketAddr)
	fmt.Fprintf(os.Stderr, "Serving %s. Press Ctrl+C to shutdown.\n", def.Name)

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errc:
	}

	logger.Info("Shutting down server")
	srv.Shutdown()
	logger.Info("Server stopped")
	return serveErr
}
