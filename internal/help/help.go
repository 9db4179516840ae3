// Package help provides the HELP command text: optional topics loaded from a
// YAML file plus the world's synonym table.
package help

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rodaine/table"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/adventure/internal/text"
	"github.com/lawnchairsociety/adventure/internal/world"
)

// Topic represents a single help topic with aliases and text.
type Topic struct {
	Aliases []string `yaml:"aliases"`
	Text    string   `yaml:"text"`
}

// HelpData represents the structure of the help.yaml file.
type HelpData struct {
	Topics      map[string]Topic `yaml:"topics"`
	GeneralHelp string           `yaml:"general_help"`
}

// Help provides help text lookup.
type Help struct {
	data        *HelpData
	aliasLookup map[string]string // alias -> topic name
}

var (
	instance *Help
	once     sync.Once
)

// Load loads help data from a YAML file.
func Load(path string) (*Help, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read help file")
	}

	var helpData HelpData
	if err := yaml.Unmarshal(data, &helpData); err != nil {
		return nil, errors.Wrap(err, "failed to parse help file")
	}

	h := &Help{
		data:        &helpData,
		aliasLookup: make(map[string]string),
	}

	// Commands arrive upper-cased, so aliases are stored that way
	for topicName, topic := range helpData.Topics {
		h.aliasLookup[strings.ToUpper(topicName)] = topicName
		for _, alias := range topic.Aliases {
			h.aliasLookup[strings.ToUpper(alias)] = topicName
		}
	}

	return h, nil
}

// GetInstance returns the shared help instance, nil when none was loaded.
func GetInstance() *Help {
	return instance
}

// Initialize loads the help data and sets the shared instance.
func Initialize(path string) error {
	var err error
	once.Do(func() {
		instance, err = Load(path)
	})
	return err
}

// GetTopic returns help text for a given topic/alias.
// Returns empty string if topic not found.
func (h *Help) GetTopic(topic string) string {
	if h == nil {
		return ""
	}
	topicName, ok := h.aliasLookup[strings.ToUpper(topic)]
	if !ok {
		return ""
	}
	return strings.TrimSpace(h.data.Topics[topicName].Text)
}

// GetGeneralHelp returns the general help text.
func (h *Help) GetGeneralHelp() string {
	if h == nil {
		return ""
	}
	return strings.TrimSpace(h.data.GeneralHelp)
}

// GetHelpText returns help for a topic. With no topic, or a topic that has no
// entry, it returns the general help followed by the synonym table.
func (h *Help) GetHelpText(topic string, synonyms *world.Synonyms) string {
	if topic != "" {
		if t := h.GetTopic(topic); t != "" {
			return t
		}
	}

	var sb strings.Builder
	if general := h.GetGeneralHelp(); general != "" {
		sb.WriteString(general)
		sb.WriteString("\n\n")
	}
	sb.WriteString(SynonymTable(synonyms))
	return strings.TrimRight(sb.String(), "\n")
}

// SynonymTable renders every alias and the word it stands for.
func SynonymTable(synonyms *world.Synonyms) string {
	var sb strings.Builder
	fmt.Fprintln(&sb, text.Get().Shortcuts())

	entries := synonyms.Entries()
	if len(entries) == 0 {
		return sb.String()
	}

	tbl := table.New("Word", "Means").WithWriter(&sb)
	for _, e := range entries {
		tbl.AddRow(e.Alias, e.Canonical)
	}
	tbl.Print()
	return sb.String()
}
