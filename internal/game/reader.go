package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptReader reads lines from any reader, writing the prompt first
type promptReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLineReader returns a LineReader over plain streams such as a pipe or a
// network connection
func NewLineReader(in io.Reader, out io.Writer) LineReader {
	return &promptReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (r *promptReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(r.scanner.Text(), "\r"), nil
}
