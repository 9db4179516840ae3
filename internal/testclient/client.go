// Package testclient drives a game over telnet for end-to-end scenarios.
package testclient

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"
)

// TestClient represents one player connected to the adventure server
type TestClient struct {
	Name     string
	conn     net.Conn
	reader   *bufio.Reader
	writer   *bufio.Writer
	messages []string
	mu       sync.Mutex
	done     chan struct{}
	closed   chan struct{}
	once     sync.Once
}

func newClientConnection(address string) (*TestClient, error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	client := &TestClient{
		conn:     conn,
		reader:   bufio.NewReader(conn),
		writer:   bufio.NewWriter(conn),
		messages: make([]string, 0),
		done:     make(chan struct{}),
		closed:   make(chan struct{}),
	}

	go client.readMessages()

	return client, nil
}

// NewTestClient connects and waits until the starting room has been shown.
// start is a fragment of the starting room's description.
func NewTestClient(name, address, start string) (*TestClient, error) {
	client, err := newClientConnection(address)
	if err != nil {
		return nil, err
	}
	client.Name = name

	if !client.WaitForMessage(start, 2*time.Second) {
		messages := client.GetMessages()
		client.Close()
		return nil, fmt.Errorf("failed to enter game, messages: %v", messages)
	}

	return client, nil
}

// readMessages collects lines until the server hangs up. The prompt has no
// line ending, so it is stripped from the start of the next line.
func (c *TestClient) readMessages() {
	defer close(c.closed)
	for {
		select {
		case <-c.done:
			return
		default:
			line, err := c.reader.ReadString('\n')
			line = strings.TrimRight(line, "\r\n")
			for strings.HasPrefix(line, "> ") {
				line = strings.TrimPrefix(line, "> ")
			}
			if line != "" {
				c.mu.Lock()
				c.messages = append(c.messages, line)
				c.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}
}

// SendCommand sends a command line to the server
func (c *TestClient) SendCommand(cmd string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.writer.WriteString(cmd + "\n")
	if err != nil {
		return err
	}
	return c.writer.Flush()
}

// Do clears the buffer, sends a command and waits for a reply containing
// want. It returns the lines received.
func (c *TestClient) Do(cmd, want string, timeout time.Duration) ([]string, bool) {
	c.ClearMessages()
	if err := c.SendCommand(cmd); err != nil {
		return nil, false
	}
	ok := c.WaitForMessage(want, timeout)
	return c.GetMessages(), ok
}

// GetMessages returns all messages received so far
func (c *TestClient) GetMessages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]string, len(c.messages))
	copy(result, c.messages)
	return result
}

// ClearMessages clears the message buffer
func (c *TestClient) ClearMessages() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = make([]string, 0)
}

// WaitForMessage waits for a message containing text, giving up after timeout
func (c *TestClient) WaitForMessage(text string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if c.HasMessage(text) {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}

	return false
}

// WaitForClose waits for the server to end the connection
func (c *TestClient) WaitForClose(timeout time.Duration) bool {
	select {
	case <-c.closed:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Close closes the client connection
func (c *TestClient) Close() error {
	var err error
	c.once.Do(func() {
		close(c.done)
		err = c.conn.Close()
	})
	return err
}

// CountMessages returns how many messages contain text
func (c *TestClient) CountMessages(text string) int {
	n := 0
	for _, msg := range c.GetMessages() {
		if strings.Contains(msg, text) {
			n++
		}
	}
	return n
}

// PrintMessages prints all messages (for debugging)
func (c *TestClient) PrintMessages() {
	messages := c.GetMessages()
	fmt.Printf("\n=== Messages for %s ===\n", c.Name)
	for i, msg := range messages {
		fmt.Printf("[%d] %s\n", i, msg)
	}
	fmt.Println("======================")
}

// HasMessage checks if any message contains text
func (c *TestClient) HasMessage(text string) bool {
	return c.CountMessages(text) > 0
}
