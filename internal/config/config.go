package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// GameConfig holds the settings for playing or serving a world.
type GameConfig struct {
	World       WorldConfig       `yaml:"world"`
	Play        PlayConfig        `yaml:"play"`
	Journal     JournalConfig     `yaml:"journal"`
	Server      ServerConfig      `yaml:"server"`
	WebSocket   WebSocketConfig   `yaml:"websocket"`
	Connections ConnectionsConfig `yaml:"connections"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
}

// WorldConfig says where world data lives.
type WorldConfig struct {
	// Dir is the directory holding the world files.
	Dir string `yaml:"dir"`

	// Name is the world prefix for flat files (<Name>Rooms.txt, ...) or the
	// base name of a YAML world. Empty means ask the player.
	Name string `yaml:"name"`

	// Format is "flat" or "yaml". Empty picks by file extension.
	Format string `yaml:"format"`

	// HelpFile and TextFile are optional YAML overrides for help and messages.
	HelpFile string `yaml:"help_file"`
	TextFile string `yaml:"text_file"`
}

// PlayConfig holds interpreter settings.
type PlayConfig struct {
	// Prompt is printed before each command is read.
	Prompt string `yaml:"prompt"`

	// MaxForcedHops bounds consecutive forced passages before the session
	// is ended as a loop.
	MaxForcedHops int `yaml:"max_forced_hops"`
}

// JournalConfig controls the play transcript.
type JournalConfig struct {
	Enabled bool `yaml:"enabled"`

	// Driver is "sqlite" or "postgres".
	Driver string `yaml:"driver"`

	// Path is the SQLite database file.
	Path string `yaml:"path"`

	// DSN is the PostgreSQL connection string.
	DSN string `yaml:"dsn"`
}

// ServerConfig holds the remote play listeners. Empty addresses are disabled.
type ServerConfig struct {
	TelnetAddr    string `yaml:"telnet_addr"`
	WebSocketAddr string `yaml:"websocket_addr"`
}

// ConnectionsConfig holds connection limit settings.
type ConnectionsConfig struct {
	// MaxPerIP is the maximum concurrent connections allowed from a single IP address.
	// 0 means unlimited.
	MaxPerIP int `yaml:"max_per_ip"`

	// MaxTotal is the maximum total concurrent connections to the server.
	// 0 means unlimited.
	MaxTotal int `yaml:"max_total"`
}

// RateLimitConfig throttles how often one address may start a game.
type RateLimitConfig struct {
	// MaxConnects is the number of connections allowed per window.
	MaxConnects int `yaml:"max_connects"`

	// WindowSeconds is the sliding window the connections are counted in.
	WindowSeconds int `yaml:"window_seconds"`

	// LockoutSeconds is the first lockout; repeats double it.
	LockoutSeconds int `yaml:"lockout_seconds"`

	// MaxLockoutSeconds caps the lockout.
	MaxLockoutSeconds int `yaml:"max_lockout_seconds"`
}

// WebSocketConfig holds WebSocket-specific settings.
type WebSocketConfig struct {
	// AllowedOrigins is a list of origins allowed to connect via WebSocket.
	// Empty list enforces same-origin policy.
	// Use "*" to allow all origins.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum WebSocket message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`
}

// DefaultConfig returns a GameConfig with defaults for local play.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			Dir: "data",
		},
		Play: PlayConfig{
			Prompt:        "> ",
			MaxForcedHops: 32,
		},
		Journal: JournalConfig{
			Enabled: false,
			Driver:  "sqlite",
			Path:    "data/journal.db",
		},
		Server: ServerConfig{
			TelnetAddr: ":4000",
		},
		WebSocket: WebSocketConfig{
			AllowedOrigins: []string{},
			MaxMessageSize: 4096,
		},
		Connections: ConnectionsConfig{
			MaxPerIP: 3,
			MaxTotal: 100,
		},
		RateLimit: RateLimitConfig{
			MaxConnects:       20,
			WindowSeconds:     60,
			LockoutSeconds:    30,
			MaxLockoutSeconds: 300,
		},
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, returns default config.
func LoadConfig(path string) (*GameConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "parsing config %s", path)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Validate checks values that would make the game unplayable.
func (c *GameConfig) Validate() error {
	switch c.World.Format {
	case "", "flat", "yaml":
	default:
		return errors.Errorf("world.format %q must be flat or yaml", c.World.Format)
	}
	if c.Play.MaxForcedHops <= 0 {
		return errors.Errorf("play.max_forced_hops must be positive, got %d", c.Play.MaxForcedHops)
	}
	rl := c.RateLimit
	if rl.MaxConnects < 0 || rl.WindowSeconds < 0 || rl.LockoutSeconds < 0 || rl.MaxLockoutSeconds < 0 {
		return errors.New("rate_limit values must not be negative")
	}
	if c.Journal.Enabled {
		switch c.Journal.Driver {
		case "sqlite":
			if c.Journal.Path == "" {
				return errors.New("journal.path is required for sqlite")
			}
		case "postgres":
			if c.Journal.DSN == "" {
				return errors.New("journal.dsn is required for postgres")
			}
		default:
			return errors.Errorf("journal.driver %q must be sqlite or postgres", c.Journal.Driver)
		}
	}
	return nil
}

// IsOriginAllowed checks if the given origin is allowed based on the config.
// Returns true if:
// - AllowedOrigins contains "*" (allow all)
// - AllowedOrigins contains the exact origin
// - AllowedOrigins is empty and origin matches the request host (same-origin)
func (c *WebSocketConfig) IsOriginAllowed(origin, requestHost string) bool {
	if len(c.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}

	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	return false
}

// isSameOrigin checks if the origin matches the request host (same-origin policy).
func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true // No origin header means a non-browser client
	}

	// "http://localhost:3000" -> "localhost:3000"
	originHost := origin
	if idx := strings.Index(origin, "://"); idx != -1 {
		originHost = origin[idx+3:]
	}
	originHost = strings.TrimSuffix(originHost, "/")

	return originHost == requestHost
}
