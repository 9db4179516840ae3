package loader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lawnchairsociety/adventure/internal/object"
	"github.com/lawnchairsociety/adventure/internal/world"
)

// DescriptionEnd terminates a room description in a rooms file
const DescriptionEnd = "-----"

// lineScanner reads lines and remembers where it is for error messages
type lineScanner struct {
	scanner *bufio.Scanner
	line    int
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{scanner: bufio.NewScanner(r)}
}

func (s *lineScanner) next() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	s.line++
	return strings.TrimRight(s.scanner.Text(), "\r"), true
}

// nextNonBlank skips blank lines
func (s *lineScanner) nextNonBlank() (string, bool) {
	for {
		line, ok := s.next()
		if !ok || strings.TrimSpace(line) != "" {
			return line, ok
		}
	}
}

func (s *lineScanner) errorf(format string, args ...interface{}) error {
	return errors.Errorf("line %d: "+format, append([]interface{}{s.line}, args...)...)
}

// ParseRooms reads room records: a room number, a name line, description
// lines up to a "-----" line, then motion table lines up to a blank line or
// the end of input.
func ParseRooms(r io.Reader) ([]world.RoomDefinition, error) {
	sc := newLineScanner(r)
	var rooms []world.RoomDefinition

	for {
		line, ok := sc.nextNonBlank()
		if !ok {
			break
		}
		number, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, sc.errorf("expected a room number, got %q", strings.TrimSpace(line))
		}

		name, ok := sc.next()
		if !ok {
			return nil, sc.errorf("room %d: missing name", number)
		}
		room := world.RoomDefinition{Number: number, Name: strings.TrimSpace(name)}

		for {
			line, ok := sc.next()
			if !ok {
				return nil, sc.errorf("room %d: description has no %s line", number, DescriptionEnd)
			}
			if strings.TrimSpace(line) == DescriptionEnd {
				break
			}
			room.Description = append(room.Description, line)
		}

		for {
			line, ok := sc.next()
			if !ok || strings.TrimSpace(line) == "" {
				break
			}
			entry, err := ParseMotion(line)
			if err != nil {
				return nil, sc.errorf("room %d: %v", number, err)
			}
			room.Motion = append(room.Motion, entry)
		}

		rooms = append(rooms, room)
	}

	if err := sc.scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading rooms")
	}
	return rooms, nil
}

// ParseMotion parses "DIRECTION DESTINATION" or "DIRECTION DESTINATION/KEY"
func ParseMotion(line string) (world.MotionEntry, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return world.MotionEntry{}, errors.Errorf("motion entry %q needs a direction and a destination", strings.TrimSpace(line))
	}

	dest, key, _ := strings.Cut(fields[1], "/")
	number, err := strconv.Atoi(dest)
	if err != nil {
		return world.MotionEntry{}, errors.Errorf("motion entry %q: destination %q is not a number", strings.TrimSpace(line), dest)
	}

	return world.MotionEntry{
		Direction:   strings.ToUpper(fields[0]),
		Destination: number,
		Key:         strings.ToUpper(key),
	}, nil
}

// ParseObjects reads object records: a name line, a description line and
// the number of the room the object starts in. Records may be separated by
// blank lines.
func ParseObjects(r io.Reader) ([]*object.Object, error) {
	sc := newLineScanner(r)
	var objects []*object.Object

	for {
		name, ok := sc.nextNonBlank()
		if !ok {
			break
		}
		name = strings.ToUpper(strings.TrimSpace(name))

		desc, ok := sc.next()
		if !ok {
			return nil, sc.errorf("object %s: missing description", name)
		}
		loc, ok := sc.next()
		if !ok {
			return nil, sc.errorf("object %s: missing room number", name)
		}
		room, err := strconv.Atoi(strings.TrimSpace(loc))
		if err != nil {
			return nil, sc.errorf("object %s: room %q is not a number", name, strings.TrimSpace(loc))
		}

		objects = append(objects, object.New(name, strings.TrimSpace(desc), room))
	}

	if err := sc.scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading objects")
	}
	return objects, nil
}

// ParseSynonyms reads ALIAS=CANONICAL lines, skipping blank ones
func ParseSynonyms(r io.Reader) ([]world.Synonym, error) {
	sc := newLineScanner(r)
	var synonyms []world.Synonym

	for {
		line, ok := sc.nextNonBlank()
		if !ok {
			break
		}
		alias, canonical, found := strings.Cut(line, "=")
		alias = strings.ToUpper(strings.TrimSpace(alias))
		canonical = strings.ToUpper(strings.TrimSpace(canonical))
		if !found || alias == "" || canonical == "" {
			return nil, sc.errorf("synonym %q is not ALIAS=CANONICAL", strings.TrimSpace(line))
		}
		synonyms = append(synonyms, world.Synonym{Alias: alias, Canonical: canonical})
	}

	if err := sc.scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading synonyms")
	}
	return synonyms, nil
}
