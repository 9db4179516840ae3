// Package server offers the game over telnet and WebSocket. Each connection
// gets its own freshly built world, so players never see each other.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lawnchairsociety/adventure/internal/config"
	"github.com/lawnchairsociety/adventure/internal/game"
	"github.com/lawnchairsociety/adventure/internal/journal"
	"github.com/lawnchairsociety/adventure/internal/logger"
	"github.com/lawnchairsociety/adventure/internal/world"
)

type Server struct {
	def          *world.Definition
	cfg          *config.GameConfig
	listener     net.Listener
	httpServer   *http.Server
	journal      *journal.Journal
	connLimiter  *ConnLimiter
	throttle     *ConnectThrottle
	clients      map[Client]struct{}
	mu           sync.Mutex
	games        sync.WaitGroup
	ctx          context.Context
	cancel       context.CancelFunc
	shutdown     chan struct{}
	shutdownOnce sync.Once
	StartTime    time.Time
}

// NewServer creates a server that plays the given world definition.
func NewServer(def *world.Definition, cfg *config.GameConfig) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		def:         def,
		cfg:         cfg,
		connLimiter: NewConnLimiter(cfg.Connections),
		throttle:    NewConnectThrottle(cfg.RateLimit),
		clients:     make(map[Client]struct{}),
		ctx:         ctx,
		cancel:      cancel,
		shutdown:    make(chan struct{}),
		StartTime:   time.Now(),
	}
}

// SetJournal records every game played on this server
func (s *Server) SetJournal(j *journal.Journal) {
	s.journal = j
}

// Start listens for telnet connections on the configured address and serves
// them until Shutdown.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.Server.TelnetAddr)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return s.Serve(listener)
}

// Serve accepts telnet connections on an existing listener.
func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	select {
	case <-s.shutdown:
		s.mu.Unlock()
		listener.Close()
		return nil
	default:
	}
	s.listener = listener
	s.mu.Unlock()

	logger.Info("Server listening", "address", listener.Addr().String(), "world", s.def.Name)

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-s.shutdown:
				return nil
			default:
				logger.Error("Error accepting connection", "error", err)
				if errors.Is(err, net.ErrClosed) {
					return err
				}
				continue
			}
		}

		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	remoteAddr := conn.RemoteAddr().String()
	ip := extractIP(remoteAddr)

	if ok, wait := s.throttle.Allow(ip); !ok {
		logger.Warning("Connection throttled", "remote_addr", remoteAddr, "ip", ip, "wait", wait)
		conn.Write([]byte(throttleMessage(wait) + "\r\n"))
		conn.Close()
		return
	}

	if err := s.connLimiter.Acquire(ip); err != nil {
		logger.Warning("Connection rejected", "remote_addr", remoteAddr, "ip", ip, "reason", err)
		conn.Write([]byte(rejectMessage(err) + "\r\n"))
		conn.Close()
		return
	}

	defer func() {
		s.connLimiter.Release(ip)
		conn.Close()
	}()

	s.handleClient(NewTelnetClient(conn))
}

func rejectMessage(err error) string {
	if errors.Is(err, ErrTooManyFromIP) {
		return "Too many adventures from your address. Please finish one first."
	}
	return "Too many connections. Please try again later."
}

func throttleMessage(wait time.Duration) string {
	return fmt.Sprintf("Too many new adventures from your address. Try again in %d seconds.", int(wait.Round(time.Second)/time.Second))
}

// handleClient is the shared client handling logic for both telnet and
// WebSocket: build a world, run a game, record it.
func (s *Server) handleClient(client Client) {
	if !s.track(client) {
		return
	}
	defer s.untrack(client)

	remote := client.RemoteAddr()
	logger.Info("Client connected", "remote_addr", remote)

	w, err := world.Build(s.def)
	if err != nil {
		logger.Error("Failed to build world", "world", s.def.Name, "error", err)
		client.WriteLine("The adventure could not be started. Please try again later.")
		return
	}

	opts := game.Options{
		Prompt:        s.cfg.Play.Prompt,
		MaxForcedHops: s.cfg.Play.MaxForcedHops,
	}
	if s.journal != nil {
		rec, err := s.journal.StartSession(s.ctx, w.Name, remote)
		if err != nil {
			logger.Warning("Journal unavailable for this game", "remote_addr", remote, "error", err)
		} else {
			opts.Recorder = rec
		}
	}

	conn := newClientIO(client)
	session, err := game.NewSession(w, conn, conn, opts)
	if err != nil {
		logger.Error("Failed to start game", "remote_addr", remote, "error", err)
		return
	}

	if err := session.Run(s.ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warning("Game ended with error", "remote_addr", remote, "error", err)
	}
	logger.Info("Client disconnected", "remote_addr", remote, "reason", string(session.Reason()))
}

// track registers a client so Shutdown can close it. It refuses clients
// that arrive after shutdown began.
func (s *Server) track(client Client) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.shutdown:
		client.WriteLine("The server is shutting down.")
		return false
	default:
	}
	s.clients[client] = struct{}{}
	s.games.Add(1)
	return true
}

func (s *Server) untrack(client Client) {
	s.mu.Lock()
	delete(s.clients, client)
	s.mu.Unlock()
	s.games.Done()
}

// ActiveGames returns the number of games being played
func (s *Server) ActiveGames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// StartWebSocket serves the game over WebSocket at /ws on the given address.
func (s *Server) StartWebSocket(address string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocketUpgrade)

	srv := &http.Server{Addr: address, Handler: mux}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	logger.Info("WebSocket server listening", "address", address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// WebSocketHandler returns the /ws handler for embedding in another server
func (s *Server) WebSocketHandler() http.Handler {
	return http.HandlerFunc(s.handleWebSocketUpgrade)
}

// handleWebSocketUpgrade upgrades an HTTP connection to WebSocket.
func (s *Server) handleWebSocketUpgrade(w http.ResponseWriter, r *http.Request) {
	// Get the real client IP (supports X-Forwarded-For from reverse proxies)
	clientIP := getRealIP(r)

	if ok, wait := s.throttle.Allow(clientIP); !ok {
		logger.Warning("WebSocket connection throttled", "remote_addr", r.RemoteAddr, "client_ip", clientIP, "wait", wait)
		http.Error(w, throttleMessage(wait), http.StatusTooManyRequests)
		return
	}

	if err := s.connLimiter.Acquire(clientIP); err != nil {
		logger.Warning("WebSocket connection rejected",
			"remote_addr", r.RemoteAddr,
			"client_ip", clientIP,
			"reason", err)
		http.Error(w, rejectMessage(err), http.StatusTooManyRequests)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := s.cfg.WebSocket.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("WebSocket connection rejected - origin not allowed",
					"origin", origin,
					"host", r.Host,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		s.connLimiter.Release(clientIP)
		return
	}
	if s.cfg.WebSocket.MaxMessageSize > 0 {
		wsConn.SetReadLimit(int64(s.cfg.WebSocket.MaxMessageSize))
	}

	go s.handleWebSocketConnection(wsConn, clientIP)
}

func (s *Server) handleWebSocketConnection(wsConn *websocket.Conn, clientIP string) {
	defer func() {
		s.connLimiter.Release(clientIP)
		wsConn.Close()
	}()

	s.handleClient(NewWebSocketClient(wsConn))
}

// getRealIP extracts the real client IP from an HTTP request.
// It checks X-Forwarded-For header first (for reverse proxy setups),
// then falls back to the direct remote address.
func getRealIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs: "client, proxy1, proxy2"
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if clientIP := strings.TrimSpace(strings.Split(xff, ",")[0]); clientIP != "" {
			return clientIP
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	return extractIP(r.RemoteAddr)
}

// Shutdown stops accepting players, ends every running game and waits for
// them to finish recording.
func (s *Server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		close(s.shutdown)
		s.cancel()
		if s.listener != nil {
			s.listener.Close()
		}
		httpServer := s.httpServer
		// Closing the connection unblocks a game waiting for input
		for client := range s.clients {
			client.WriteLine("The server is shutting down. Farewell!")
			client.Close()
		}
		s.mu.Unlock()

		if httpServer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil {
				logger.Warning("WebSocket server shutdown", "error", err)
			}
		}

		s.games.Wait()
		s.throttle.Stop()
		logger.Info("Server shutdown complete", "uptime", time.Since(s.StartTime).Round(time.Second).String())
	})
}
