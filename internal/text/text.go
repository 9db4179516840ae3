// Package text provides the player-facing messages, with built-in defaults
// that a world can override from a YAML file.
package text

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TextData represents the structure of the text.yaml file.
type TextData struct {
	Welcome         string `yaml:"welcome"`
	CommandNotFound string `yaml:"command_not_found"`
	GameOver        string `yaml:"game_over"`
	Taken           string `yaml:"taken"`   // %s is the object name
	Dropped         string `yaml:"dropped"` // %s is the object name
	NotHere         string `yaml:"not_here"`
	NotCarrying     string `yaml:"not_carrying"`
	TakeWhat        string `yaml:"take_what"`
	DropWhat        string `yaml:"drop_what"`
	QuitConfirm     string `yaml:"quit_confirm"`
	Farewell        string `yaml:"farewell"`
	Shortcuts       string `yaml:"shortcuts"`
	ForcedLoop      string `yaml:"forced_loop"`
	ForcedStuck     string `yaml:"forced_stuck"`
}

// Text provides message lookup.
type Text struct {
	data TextData
}

var (
	instance *Text
	once     sync.Once
)

func defaults() TextData {
	return TextData{
		Welcome:         "What will be your adventure today?",
		CommandNotFound: "Command not found",
		GameOver:        "GAME OVER!",
		Taken:           "%s taken",
		Dropped:         "%s dropped",
		NotHere:         "I don't see that here.",
		NotCarrying:     "You are not carrying that.",
		TakeWhat:        "Take what?",
		DropWhat:        "Drop what?",
		QuitConfirm:     "Are you sure (Y or N)?",
		Farewell:        "See you later!",
		Shortcuts:       "Available shortcuts:",
		ForcedLoop:      "You are caught in an endless passage. The adventure cannot continue.",
		ForcedStuck:     "Something drags you onward, but the way is barred. The adventure cannot continue.",
	}
}

// Default returns the built-in messages.
func Default() *Text {
	return &Text{data: defaults()}
}

// Load loads messages from a YAML file. Messages the file leaves out keep
// their defaults.
func Load(path string) (*Text, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read text file")
	}

	data := defaults()
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "failed to parse text file")
	}
	for _, format := range []*string{&data.Taken, &data.Dropped} {
		if strings.Count(*format, "%s") != 1 {
			return nil, errors.Errorf("message %q needs exactly one %%s", *format)
		}
	}

	return &Text{data: data}, nil
}

// Initialize loads the messages and sets the shared instance.
func Initialize(path string) error {
	var err error
	once.Do(func() {
		instance, err = Load(path)
	})
	return err
}

// Get returns the shared instance, or the defaults when none was loaded.
func Get() *Text {
	if instance == nil {
		return Default()
	}
	return instance
}

func (t *Text) Welcome() string         { return t.data.Welcome }
func (t *Text) CommandNotFound() string { return t.data.CommandNotFound }
func (t *Text) GameOver() string        { return t.data.GameOver }
func (t *Text) NotHere() string         { return t.data.NotHere }
func (t *Text) NotCarrying() string     { return t.data.NotCarrying }
func (t *Text) TakeWhat() string        { return t.data.TakeWhat }
func (t *Text) DropWhat() string        { return t.data.DropWhat }
func (t *Text) QuitConfirm() string     { return t.data.QuitConfirm }
func (t *Text) Farewell() string        { return t.data.Farewell }
func (t *Text) Shortcuts() string       { return t.data.Shortcuts }
func (t *Text) ForcedLoop() string      { return t.data.ForcedLoop }
func (t *Text) ForcedStuck() string     { return t.data.ForcedStuck }

// Taken returns the confirmation for picking up an object
func (t *Text) Taken(name string) string {
	return fmt.Sprintf(t.data.Taken, name)
}

// Dropped returns the confirmation for putting an object down
func (t *Text) Dropped(name string) string {
	return fmt.Sprintf(t.data.Dropped, name)
}
