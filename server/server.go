// Package server publishes the game status over websocket and HTTP and
// queues remote commands for the game loop.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pthm-cable/cruise/config"
	"github.com/pthm-cable/cruise/economy"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow connections from any origin
	},
}

// Server handles HTTP and WebSocket connections.
type Server struct {
	hub          *Hub
	commands     chan Command
	latest       atomic.Pointer[[]byte] // Last status payload
	pingInterval time.Duration

	httpServer *http.Server
	cancel     context.CancelFunc
}

// New creates a server from config. Start or Run the hub before serving.
func New(cfg config.ServerConfig) *Server {
	queue := cfg.CommandQueue
	if queue < 1 {
		queue = 1
	}
	ping := time.Duration(cfg.PingInterval * float64(time.Second))
	if ping <= 0 {
		ping = 54 * time.Second
	}
	return &Server{
		hub:          NewHub(),
		commands:     make(chan Command, queue),
		pingInterval: ping,
	}
}

// Hub returns the client hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the HTTP routes: /ws and /status.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/status", s.handleStatus)
	return mux
}

// Start runs the hub and serves on addr in the background. It returns the
// bound address once the listener is open.
func (s *Server) Start(ctx context.Context, addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}

	ctx, s.cancel = context.WithCancel(ctx)
	go s.hub.Run(ctx)

	s.httpServer = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("status server stopped", "error", err)
		}
	}()

	slog.Info("status server listening", "addr", ln.Addr().String())
	return ln.Addr(), nil
}

// Shutdown stops accepting connections and disconnects clients.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down status server: %w", err)
	}
	return nil
}

// PublishStatus stores the snapshot for /status and broadcasts it to clients.
// Safe to call from the game loop; never blocks.
func (s *Server) PublishStatus(snap economy.Snapshot) {
	msg, err := Encode(TypeStatus, snap)
	if err != nil {
		slog.Error("encoding status", "error", err)
		return
	}
	s.latest.Store(&msg)
	if !s.hub.Broadcast(msg) {
		slog.Debug("status broadcast dropped", "reason", "queue full")
	}
}

// Commands returns the queue of validated remote commands.
func (s *Server) Commands() <-chan Command {
	return s.commands
}

// Drain hands up to max queued commands to fn without blocking.
// It returns the number handled.
func (s *Server) Drain(max int, fn func(Command)) int {
	n := 0
	for n < max {
		select {
		case cmd := <-s.commands:
			fn(cmd)
			n++
		default:
			return n
		}
	}
	return n
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	msg := s.latest.Load()
	if msg == nil {
		http.Error(w, "game not started", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(*msg)
}

// handleWebSocket upgrades the request and starts the client pumps.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		hub:   s.hub,
		conn:  conn,
		send:  make(chan []byte, 32),
		reply: make(chan []byte, 8),
	}
	// Greet with the current status before the hub can touch send
	if msg := s.latest.Load(); msg != nil {
		c.send <- *msg
	}
	if !s.hub.join(c) {
		conn.Close()
		return
	}

	go s.writePump(c)
	go s.readPump(c)
}

// readPump decodes client commands onto the command queue.
func (s *Server) readPump(c *client) {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	// Keepalive: the write pump pings well inside this deadline
	deadline := s.pingInterval * 10 / 9
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(deadline))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(deadline))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("websocket read", "error", err)
			}
			return
		}

		cmd, err := DecodeCommand(data)
		if err != nil {
			s.reject(c, err.Error())
			continue
		}
		select {
		case s.commands <- cmd:
		default:
			s.reject(c, "command queue full")
		}
	}
}

// reject sends an error frame to one client. The frame is dropped if the
// client's buffer is full.
func (s *Server) reject(c *client, reason string) {
	msg, err := Encode(TypeError, ErrorPayload{Message: reason})
	if err != nil {
		return
	}
	select {
	case c.reply <- msg:
	default:
	}
}

// writePump sends queued frames and keepalive pings.
func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(s.pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Debug("websocket write", "error", err)
				return
			}

		case msg := <-c.reply:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
