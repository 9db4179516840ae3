// Package console connects a game to the local terminal. On an interactive
// terminal it offers line editing and history; otherwise it reads plain
// lines so input can be piped in.
package console

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/lawnchairsociety/adventure/internal/game"
	"github.com/lawnchairsociety/adventure/internal/logger"
)

// Console is both the input and output of a local game.
type Console struct {
	reader   game.LineReader
	out      io.Writer
	terminal *term.Terminal
	restore  func()
}

// Open returns a console over stdin and stdout.
func Open() *Console {
	return New(os.Stdin, os.Stdout)
}

// New returns a console over the given streams. When in is a terminal it is
// put in raw mode until Close.
func New(in io.Reader, out io.Writer) *Console {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c, err := newTerminal(f, out)
		if err == nil {
			return c
		}
		logger.Warning("Terminal unavailable, reading plain lines", "error", err)
	}
	return &Console{
		reader:  game.NewLineReader(in, out),
		out:     out,
		restore: func() {},
	}
}

func newTerminal(f *os.File, out io.Writer) (*Console, error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	rw := struct {
		io.Reader
		io.Writer
	}{f, out}
	t := term.NewTerminal(rw, "")
	if width, height, err := term.GetSize(fd); err == nil {
		t.SetSize(width, height)
	}
	return &Console{
		out:      t,
		terminal: t,
		restore: func() {
			if err := term.Restore(fd, state); err != nil {
				logger.Warning("Failed to restore terminal", "error", err)
			}
		},
	}, nil
}

// ReadLine implements game.LineReader.
func (c *Console) ReadLine(prompt string) (string, error) {
	if c.terminal == nil {
		return c.reader.ReadLine(prompt)
	}
	c.terminal.SetPrompt(prompt)
	return c.terminal.ReadLine()
}

// Write sends game output to the console.
func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// Interactive reports whether the console is a real terminal.
func (c *Console) Interactive() bool {
	return c.terminal != nil
}

// Close returns the terminal to its previous mode.
func (c *Console) Close() error {
	c.restore()
	return nil
}
