package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/lawnchairsociety/adventure/internal/world"
)

// WriteRooms renders rooms in the rooms file format
func WriteRooms(w io.Writer, rooms []world.RoomDefinition) error {
	bw := bufio.NewWriter(w)
	for i, room := range rooms {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintln(bw, room.Number)
		fmt.Fprintln(bw, room.Name)
		for _, line := range room.Description {
			fmt.Fprintln(bw, line)
		}
		fmt.Fprintln(bw, DescriptionEnd)
		for _, entry := range room.Motion {
			fmt.Fprintln(bw, entry.String())
		}
	}
	return bw.Flush()
}

// WriteObjects renders objects in the objects file format
func WriteObjects(w io.Writer, def *world.Definition) error {
	bw := bufio.NewWriter(w)
	for i, obj := range def.Objects {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "%s\n%s\n%d\n", obj.Name, obj.Description, obj.InitialRoom)
	}
	return bw.Flush()
}

// WriteSynonyms renders ALIAS=CANONICAL lines
func WriteSynonyms(w io.Writer, synonyms []world.Synonym) error {
	bw := bufio.NewWriter(w)
	for _, syn := range synonyms {
		fmt.Fprintf(bw, "%s=%s\n", syn.Alias, syn.Canonical)
	}
	return bw.Flush()
}

// WriteFlat writes the three flat files for a definition into dir
func WriteFlat(dir string, def *world.Definition) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating world directory")
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{RoomsFile(def.Name), func(w io.Writer) error { return WriteRooms(w, def.Rooms) }},
		{ObjectsFile(def.Name), func(w io.Writer) error { return WriteObjects(w, def) }},
		{SynonymsFile(def.Name), func(w io.Writer) error { return WriteSynonyms(w, def.Synonyms) }},
	}

	for _, file := range files {
		path := filepath.Join(dir, file.name)
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "creating %s", path)
		}
		if err := file.write(f); err != nil {
			f.Close()
			return errors.Wrapf(err, "writing %s", path)
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "closing %s", path)
		}
	}
	return nil
}
