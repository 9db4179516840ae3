package server

import (
	"sync"
	"time"

	"github.com/lawnchairsociety/adventure/internal/config"
)

// ConnectThrottle limits how quickly a single address may open new games.
// An address that connects more than maxConnects times within window is
// locked out, and each repeated lockout doubles up to maxLockout.
type ConnectThrottle struct {
	mu              sync.Mutex
	attempts        map[string]*attemptInfo
	maxConnects     int
	window          time.Duration
	lockout         time.Duration
	maxLockout      time.Duration
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	stopOnce        sync.Once
	now             func() time.Time
}

type attemptInfo struct {
	recent       []time.Time
	lockedUntil  time.Time
	lockoutCount int
}

// NewConnectThrottle creates a throttle from config. Zero values fall back
// to defaults.
func NewConnectThrottle(cfg config.RateLimitConfig) *ConnectThrottle {
	ct := &ConnectThrottle{
		attempts:        make(map[string]*attemptInfo),
		maxConnects:     cfg.MaxConnects,
		window:          time.Duration(cfg.WindowSeconds) * time.Second,
		lockout:         time.Duration(cfg.LockoutSeconds) * time.Second,
		maxLockout:      time.Duration(cfg.MaxLockoutSeconds) * time.Second,
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
		now:             time.Now,
	}

	if ct.maxConnects == 0 {
		ct.maxConnects = 20
	}
	if ct.window == 0 {
		ct.window = time.Minute
	}
	if ct.lockout == 0 {
		ct.lockout = 30 * time.Second
	}
	if ct.maxLockout == 0 {
		ct.maxLockout = 5 * time.Minute
	}

	go ct.cleanupLoop()

	return ct
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (ct *ConnectThrottle) Stop() {
	ct.stopOnce.Do(func() { close(ct.stopCleanup) })
}

// Allow records a connection attempt from ip. It returns false, with the
// time left on the lockout, when the address must wait.
func (ct *ConnectThrottle) Allow(ip string) (bool, time.Duration) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	now := ct.now()
	info, exists := ct.attempts[ip]
	if !exists {
		info = &attemptInfo{}
		ct.attempts[ip] = info
	}

	if now.Before(info.lockedUntil) {
		return false, info.lockedUntil.Sub(now)
	}

	info.recent = append(pruneBefore(info.recent, now.Add(-ct.window)), now)
	if len(info.recent) <= ct.maxConnects {
		return true, 0
	}

	info.lockoutCount++
	d := ct.lockout
	for i := 1; i < info.lockoutCount; i++ {
		// Check before multiplication to prevent overflow
		if d >= ct.maxLockout/2 {
			d = ct.maxLockout
			break
		}
		d *= 2
	}
	if d > ct.maxLockout {
		d = ct.maxLockout
	}
	info.lockedUntil = now.Add(d)
	info.recent = nil
	return false, d
}

// Recent returns the number of attempts from ip inside the current window.
func (ct *ConnectThrottle) Recent(ip string) int {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	info, exists := ct.attempts[ip]
	if !exists {
		return 0
	}
	return len(pruneBefore(info.recent, ct.now().Add(-ct.window)))
}

func pruneBefore(times []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(times) && times[i].Before(cutoff) {
		i++
	}
	return times[i:]
}

func (ct *ConnectThrottle) cleanupLoop() {
	ticker := time.NewTicker(ct.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ct.stopCleanup:
			return
		case <-ticker.C:
			ct.cleanup()
		}
	}
}

// cleanup drops addresses that are unlocked and have nothing in the window.
func (ct *ConnectThrottle) cleanup() {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	now := ct.now()
	for ip, info := range ct.attempts {
		info.recent = pruneBefore(info.recent, now.Add(-ct.window))
		if len(info.recent) == 0 && !now.Before(info.lockedUntil) {
			delete(ct.attempts, ip)
		}
	}
}
