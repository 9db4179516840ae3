package server

import (
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocketClient wraps a WebSocket connection for browser-based communication.
// Every message the browser sends is one or more command lines.
type WebSocketClient struct {
	conn    *websocket.Conn
	readBuf []string   // Buffer for lines when a message contains multiple lines
	mu      sync.Mutex // Protects readBuf
	writeMu sync.Mutex // gorilla allows one concurrent writer
}

// NewWebSocketClient creates a new WebSocketClient from a WebSocket connection.
func NewWebSocketClient(conn *websocket.Conn) *WebSocketClient {
	return &WebSocketClient{
		conn:    conn,
		readBuf: make([]string, 0),
	}
}

// ReadLine reads a line from the WebSocket connection (blocking).
// If a message contains multiple lines, they are buffered and returned one at a time.
// An empty message counts as an empty line, so the game simply prompts again.
func (c *WebSocketClient) ReadLine() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.readBuf) > 0 {
		line := c.readBuf[0]
		c.readBuf = c.readBuf[1:]
		return line, nil
	}

	_, message, err := c.conn.ReadMessage()
	if err != nil {
		return "", err
	}

	lines := strings.Split(strings.TrimRight(string(message), "\r\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	c.readBuf = append(c.readBuf, lines[1:]...)
	return lines[0], nil
}

// WriteLine writes a message to the WebSocket client.
// Unlike telnet, we don't need to add newlines - the message is self-contained.
func (c *WebSocketClient) WriteLine(message string) error {
	return c.Write([]byte(message))
}

// Write writes text to the WebSocket client as one text message.
func (c *WebSocketClient) Write(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Close closes the WebSocket connection.
func (c *WebSocketClient) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the remote address as a string.
func (c *WebSocketClient) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
