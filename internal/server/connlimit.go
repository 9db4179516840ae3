package server

import (
	"errors"
	"net"
	"sync"

	"github.com/lawnchairsociety/adventure/internal/config"
)

var (
	// ErrServerFull is returned when every game slot is taken.
	ErrServerFull = errors.New("server is full")
	// ErrTooManyFromIP is returned when one address already runs its share of games.
	ErrTooManyFromIP = errors.New("too many connections from this address")
)

// ConnLimiter counts running games per IP and in total. Every connection
// plays its own world, so this is what bounds memory use.
type ConnLimiter struct {
	mu       sync.Mutex
	ipCounts map[string]int
	total    int
	maxPerIP int
	maxTotal int
}

// ConnStats is a snapshot of the limiter's counters.
type ConnStats struct {
	Total     int
	UniqueIPs int
}

func NewConnLimiter(cfg config.ConnectionsConfig) *ConnLimiter {
	return &ConnLimiter{
		ipCounts: make(map[string]int),
		maxPerIP: cfg.MaxPerIP,
		maxTotal: cfg.MaxTotal,
	}
}

// Acquire takes a slot for the IP. A zero limit means unlimited.
func (c *ConnLimiter) Acquire(ip string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxTotal > 0 && c.total >= c.maxTotal {
		return ErrServerFull
	}
	if c.maxPerIP > 0 && c.ipCounts[ip] >= c.maxPerIP {
		return ErrTooManyFromIP
	}

	c.ipCounts[ip]++
	c.total++
	return nil
}

// Release gives back a slot taken by Acquire.
func (c *ConnLimiter) Release(ip string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ipCounts[ip] > 0 {
		c.ipCounts[ip]--
		if c.ipCounts[ip] == 0 {
			delete(c.ipCounts, ip)
		}
		c.total--
	}
}

func (c *ConnLimiter) Stats() ConnStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ConnStats{Total: c.total, UniqueIPs: len(c.ipCounts)}
}

// IPCount returns how many games an address is playing.
func (c *ConnLimiter) IPCount(ip string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ipCounts[ip]
}

// extractIP extracts the IP address from a remote address string (ip:port format).
func extractIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr // Return as-is if can't split
	}
	return host
}
