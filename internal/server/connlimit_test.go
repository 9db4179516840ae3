package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lawnchairsociety/adventure/internal/config"
)

func TestConnLimiter_Acquire(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ConnectionsConfig
		ips     []string
		wantErr []error
	}{
		{
			name:    "per IP limit",
			cfg:     config.ConnectionsConfig{MaxPerIP: 2, MaxTotal: 100},
			ips:     []string{"192.168.1.1", "192.168.1.1", "192.168.1.1", "192.168.1.2"},
			wantErr: []error{nil, nil, ErrTooManyFromIP, nil},
		},
		{
			name:    "total limit",
			cfg:     config.ConnectionsConfig{MaxPerIP: 10, MaxTotal: 3},
			ips:     []string{"192.168.1.1", "192.168.1.2", "192.168.1.3", "192.168.1.4"},
			wantErr: []error{nil, nil, nil, ErrServerFull},
		},
		{
			name:    "unlimited",
			cfg:     config.ConnectionsConfig{},
			ips:     []string{"192.168.1.1", "192.168.1.1", "192.168.1.1", "192.168.1.1"},
			wantErr: []error{nil, nil, nil, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewConnLimiter(tt.cfg)
			for i, ip := range tt.ips {
				if err := limiter.Acquire(ip); !errors.Is(err, tt.wantErr[i]) {
					t.Errorf("connection %d from %s: got %v, want %v", i+1, ip, err, tt.wantErr[i])
				}
			}
		})
	}
}

func TestConnLimiter_Release(t *testing.T) {
	limiter := NewConnLimiter(config.ConnectionsConfig{MaxPerIP: 1, MaxTotal: 2})

	if err := limiter.Acquire("192.168.1.1"); err != nil {
		t.Fatal(err)
	}
	if err := limiter.Acquire("192.168.1.1"); err == nil {
		t.Fatal("second connection from same IP should be rejected")
	}

	limiter.Release("192.168.1.1")
	if err := limiter.Acquire("192.168.1.1"); err != nil {
		t.Errorf("connection should be allowed after release: %v", err)
	}

	// Releasing an address that holds nothing must not free a slot
	limiter.Release("10.0.0.9")
	if stats := limiter.Stats(); stats.Total != 1 {
		t.Errorf("expected total 1, got %d", stats.Total)
	}
}

func TestConnLimiter_Stats(t *testing.T) {
	limiter := NewConnLimiter(config.ConnectionsConfig{
		MaxPerIP: 10,
		MaxTotal: 100,
	})

	limiter.Acquire("192.168.1.1")
	limiter.Acquire("192.168.1.1")
	limiter.Acquire("192.168.1.2")

	stats := limiter.Stats()
	if stats.Total != 3 {
		t.Errorf("expected total 3, got %d", stats.Total)
	}
	if stats.UniqueIPs != 2 {
		t.Errorf("expected 2 unique IPs, got %d", stats.UniqueIPs)
	}

	if count := limiter.IPCount("192.168.1.1"); count != 2 {
		t.Errorf("expected count 2 for IP 192.168.1.1, got %d", count)
	}
	if count := limiter.IPCount("192.168.1.3"); count != 0 {
		t.Errorf("expected count 0 for unknown IP, got %d", count)
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"192.168.1.1:12345", "192.168.1.1"},
		{"[::1]:12345", "::1"},
		{"localhost:4000", "localhost"},
		{"192.168.1.1", "192.168.1.1"}, // No port
	}

	for _, tt := range tests {
		result := extractIP(tt.input)
		if result != tt.expected {
			t.Errorf("extractIP(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestGetRealIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For single IP",
			xff:        "203.0.113.50",
			remoteAddr: "10.0.0.1:12345",
			expected:   "203.0.113.50",
		},
		{
			name:       "X-Forwarded-For multiple IPs",
			xff:        "203.0.113.50, 70.41.3.18, 150.172.238.178",
			remoteAddr: "10.0.0.1:12345",
			expected:   "203.0.113.50", // First IP is the client
		},
		{
			name:       "X-Real-IP",
			xri:        "203.0.113.50",
			remoteAddr: "10.0.0.1:12345",
			expected:   "203.0.113.50",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			xff:        "203.0.113.50",
			xri:        "198.51.100.25",
			remoteAddr: "10.0.0.1:12345",
			expected:   "203.0.113.50",
		},
		{
			name:       "No headers - use RemoteAddr",
			remoteAddr: "192.168.1.100:54321",
			expected:   "192.168.1.100",
		},
		{
			name:       "Empty X-Forwarded-For falls back to RemoteAddr",
			xff:        "",
			remoteAddr: "192.168.1.100:54321",
			expected:   "192.168.1.100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &http.Request{
				RemoteAddr: tt.remoteAddr,
				Header:     make(http.Header),
			}
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}

			result := getRealIP(req)
			if result != tt.expected {
				t.Errorf("getRealIP() = %q, want %q", result, tt.expected)
			}
		})
	}
}
