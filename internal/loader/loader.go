// Package loader reads world data from disk: the classic three flat files
// or a single YAML file.
package loader

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/lawnchairsociety/adventure/internal/logger"
	"github.com/lawnchairsociety/adventure/internal/world"
)

const (
	FormatFlat = "flat"
	FormatYAML = "yaml"
)

// Flat file names for a world called name
func RoomsFile(name string) string    { return name + "Rooms.txt" }
func ObjectsFile(name string) string  { return name + "Objects.txt" }
func SynonymsFile(name string) string { return name + "Synonyms.txt" }

// Load reads the world called name from dir. An empty format picks YAML when
// dir holds name.yaml or name.yml, and the flat files otherwise.
func Load(dir, name, format string) (*world.Definition, error) {
	switch format {
	case FormatFlat:
		return LoadFlat(dir, name)
	case FormatYAML:
		path, ok := findYAML(dir, name)
		if !ok {
			return nil, errors.Errorf("no YAML file for world %s in %s", name, dir)
		}
		return LoadYAML(path)
	case "":
		if path, ok := findYAML(dir, name); ok {
			return LoadYAML(path)
		}
		return LoadFlat(dir, name)
	default:
		return nil, errors.Errorf("unknown world format %q", format)
	}
}

func findYAML(dir, name string) (string, bool) {
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// LoadFlat reads <name>Rooms.txt, <name>Objects.txt and <name>Synonyms.txt.
// The rooms file must exist; a world may go without objects or synonyms.
func LoadFlat(dir, name string) (*world.Definition, error) {
	def := &world.Definition{Name: name}

	roomsPath := filepath.Join(dir, RoomsFile(name))
	f, err := os.Open(roomsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening rooms for world %s", name)
	}
	def.Rooms, err = ParseRooms(f)
	f.Close()
	if err != nil {
		return nil, errors.Wrap(err, roomsPath)
	}

	err = parseOptional(filepath.Join(dir, ObjectsFile(name)), func(r io.Reader) error {
		var perr error
		def.Objects, perr = ParseObjects(r)
		return perr
	})
	if err != nil {
		return nil, err
	}

	err = parseOptional(filepath.Join(dir, SynonymsFile(name)), func(r io.Reader) error {
		var perr error
		def.Synonyms, perr = ParseSynonyms(r)
		return perr
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded world", "world", name, "format", FormatFlat, "rooms", len(def.Rooms), "objects", len(def.Objects), "synonyms", len(def.Synonyms))
	return def, nil
}

// parseOptional runs parse over a file, skipping it with a warning when it
// doesn't exist
func parseOptional(path string, parse func(io.Reader) error) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		logger.Warning("World file not found, continuing without it", "path", path)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	if err := parse(f); err != nil {
		return errors.Wrap(err, path)
	}
	return nil
}

// LoadYAML reads a world from one YAML file. A file without a name takes
// the file's base name.
func LoadYAML(path string) (*world.Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading world file")
	}
	def, err := ParseYAML(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	logger.Info("Loaded world", "world", def.Name, "format", FormatYAML, "rooms", len(def.Rooms), "objects", len(def.Objects), "synonyms", len(def.Synonyms))
	return def, nil
}
