// Package stream broadcasts simulation frames to remote renderers over websockets.
package stream

import (
	"context"
	"net/http"
	"sync"
	"time"

	solarsystem "github.com/FihlaTV/SolarSystem"
	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const writeWait = 5 * time.Second

// Hub sends the frames it receives to every connected client, at most at the configured rate.
type Hub struct {
	upgrader websocket.Upgrader
	limiter  *rate.Limiter
	logger   kitlog.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub returns a hub sending at most fps frames per second (all frames if fps <= 0).
func NewHub(fps float64, logger kitlog.Logger) *Hub {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	limit := rate.Inf
	if fps > 0 {
		limit = rate.Limit(fps)
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		limiter: rate.NewLimiter(limit, 1),
		logger:  kitlog.With(logger, "subsys", "stream"),
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP upgrades the connection and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		level.Warn(h.logger).Log("upgrade", err)
		return
	}
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	level.Info(h.logger).Log("client", conn.RemoteAddr(), "clients", n)

	// Drain the client until it leaves: clients are not expected to send anything.
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
	h.mu.Unlock()
}

// Broadcast sends the frame to all clients unless the rate limit drops it.
// It returns whether the frame was sent.
func (h *Hub) Broadcast(frame solarsystem.FrameState) bool {
	if !h.limiter.Allow() {
		return false
	}
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteJSON(frame); err != nil {
			level.Debug(h.logger).Log("client", c.RemoteAddr(), "write", err)
			h.remove(c)
		}
	}
	return true
}

// Run broadcasts the frames of the channel until it is closed or the context is done.
func (h *Hub) Run(ctx context.Context, frames <-chan solarsystem.FrameState) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case frame, more := <-frames:
			if !more {
				h.closeAll()
				return
			}
			h.Broadcast(frame)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.Close()
		delete(h.clients, c)
	}
}
