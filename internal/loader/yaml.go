package loader

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/adventure/internal/object"
	"github.com/lawnchairsociety/adventure/internal/world"
)

// RoomData is a room in a YAML world file. Exits use the rooms file
// notation, for example "EAST 3/KEYS".
type RoomData struct {
	Number      int      `yaml:"number"`
	Name        string   `yaml:"name"`
	Description []string `yaml:"description"`
	Exits       []string `yaml:"exits,omitempty"`
}

type ObjectData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Room        int    `yaml:"room"`
}

// WorldData is the structure of a YAML world file
type WorldData struct {
	Name     string          `yaml:"name"`
	Rooms    []RoomData      `yaml:"rooms"`
	Objects  []ObjectData    `yaml:"objects,omitempty"`
	Synonyms []world.Synonym `yaml:"synonyms,omitempty"`
}

// ParseYAML reads a whole world from one YAML document
func ParseYAML(r io.Reader) (*world.Definition, error) {
	var data WorldData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(err, "parsing world YAML")
	}

	def := &world.Definition{Name: data.Name}
	for _, rd := range data.Rooms {
		room := world.RoomDefinition{
			Number:      rd.Number,
			Name:        rd.Name,
			Description: rd.Description,
		}
		for _, exit := range rd.Exits {
			entry, err := ParseMotion(exit)
			if err != nil {
				return nil, errors.Wrapf(err, "room %d", rd.Number)
			}
			room.Motion = append(room.Motion, entry)
		}
		def.Rooms = append(def.Rooms, room)
	}
	for _, od := range data.Objects {
		def.Objects = append(def.Objects, object.New(strings.ToUpper(od.Name), od.Description, od.Room))
	}
	for _, syn := range data.Synonyms {
		def.Synonyms = append(def.Synonyms, world.Synonym{
			Alias:     strings.ToUpper(syn.Alias),
			Canonical: strings.ToUpper(syn.Canonical),
		})
	}
	return def, nil
}

// MarshalYAML renders a definition as a YAML world file
func MarshalYAML(def *world.Definition) ([]byte, error) {
	data := WorldData{Name: def.Name, Synonyms: def.Synonyms}
	for _, rd := range def.Rooms {
		room := RoomData{Number: rd.Number, Name: rd.Name, Description: rd.Description}
		for _, entry := range rd.Motion {
			room.Exits = append(room.Exits, entry.String())
		}
		data.Rooms = append(data.Rooms, room)
	}
	for _, obj := range def.Objects {
		data.Objects = append(data.Objects, ObjectData{Name: obj.Name, Description: obj.Description, Room: obj.InitialRoom})
	}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return nil, errors.Wrapf(err, "marshaling world %s", def.Name)
	}
	return out, nil
}
