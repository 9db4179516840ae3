package server

import (
	"errors"
	"io"
	"net"

	"github.com/gorilla/websocket"
)

// Client abstracts the connection layer for both telnet and WebSocket connections.
// This allows the server to handle both protocols transparently.
type Client interface {
	// ReadLine blocks until a complete line is received (without newline).
	// Returns io.EOF once the connection is gone.
	ReadLine() (string, error)

	// WriteLine sends a line to the client.
	WriteLine(message string) error

	// Write sends text to the client as is.
	Write(data []byte) error

	// Close closes the connection.
	Close() error

	// RemoteAddr returns the client's address for logging.
	RemoteAddr() string
}

// clientIO lets a game session read from and write to a Client
type clientIO struct {
	client Client
}

func newClientIO(client Client) *clientIO {
	return &clientIO{client: client}
}

// ReadLine sends the prompt and waits for the player's answer
func (c *clientIO) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if err := c.client.Write([]byte(prompt)); err != nil {
			return "", closedAsEOF(err)
		}
	}
	line, err := c.client.ReadLine()
	if err != nil {
		return "", closedAsEOF(err)
	}
	return line, nil
}

func (c *clientIO) Write(p []byte) (int, error) {
	if err := c.client.Write(p); err != nil {
		return 0, closedAsEOF(err)
	}
	return len(p), nil
}

// closedAsEOF reports a connection that went away as io.EOF, which ends a
// game quietly
func closedAsEOF(err error) error {
	if errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrUnexpectedEOF) {
		return io.EOF
	}
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return io.EOF
	}
	return err
}
