package server

import (
	"bufio"
	"io"
	"net"
	"strings"
	"sync"
)

// TelnetClient wraps a raw TCP connection for telnet-style communication.
type TelnetClient struct {
	conn    net.Conn
	scanner *bufio.Scanner
	writer  *bufio.Writer
	writeMu sync.Mutex // the game and Shutdown both write
}

// NewTelnetClient creates a new TelnetClient from a TCP connection.
func NewTelnetClient(conn net.Conn) *TelnetClient {
	return &TelnetClient{
		conn:    conn,
		scanner: bufio.NewScanner(conn),
		writer:  bufio.NewWriter(conn),
	}
}

// ReadLine reads a line from the connection (blocking).
// Returns the line without the trailing newline.
func (c *TelnetClient) ReadLine() (string, error) {
	if c.scanner.Scan() {
		return strings.TrimRight(c.scanner.Text(), "\r"), nil
	}
	if err := c.scanner.Err(); err != nil {
		return "", err
	}
	// Scanner finished without error means the client hung up
	return "", io.EOF
}

// WriteLine writes a message followed by a line break.
func (c *TelnetClient) WriteLine(message string) error {
	return c.Write([]byte(message + "\n"))
}

// Write writes text to the client, turning bare newlines into CRLF.
func (c *TelnetClient) Write(data []byte) error {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if _, err := c.writer.WriteString(strings.ReplaceAll(text, "\n", "\r\n")); err != nil {
		return err
	}
	return c.writer.Flush()
}

// Close closes the underlying connection.
func (c *TelnetClient) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the remote address as a string.
func (c *TelnetClient) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
