// Package watch broadcasts board snapshots to websocket spectators so
// a browser can follow a console game (AI-vs-AI games in particular).
package watch

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	// pongWait must exceed pingPeriod so a live peer always answers a
	// ping before its read deadline expires.
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	// sendBuffer bounds per-client queueing; clients that fall this far
	// behind are dropped instead of blocking the game loop.
	sendBuffer = 8
)

// Hub fans out snapshots to connected spectators.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	last     []byte
	Upgrader websocket.Upgrader
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Publish marshals v and queues it to every connected spectator. It
// never blocks: a client with a full queue is disconnected.
func (h *Hub) Publish(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WATCH] marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = payload
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// ClientCount returns the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// HandleWatch upgrades the connection and streams snapshots until the
// spectator goes away.
func (h *Hub) HandleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WATCH] upgrade error: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	// new spectators get the latest snapshot immediately
	if h.last != nil {
		c.send <- h.last
	}
	h.mu.Unlock()

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	c.conn.Close()
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	// closing the connection here also unblocks readLoop, so a client
	// dropped by Publish is fully torn down
	defer h.remove(c)

	for {
		select {
		case payload, ok := <-c.send:
			if !ok {
				c.conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeWait))
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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

// readLoop drains incoming frames; spectators send nothing meaningful,
// but reading is required to process control frames and notice closes.
// The read deadline is refreshed on every pong so a silent peer times
// out instead of pinning the goroutine forever.
func (h *Hub) readLoop(c *client) {
	defer h.remove(c)

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Serve runs a spectator server on addr. It blocks, so callers start
// it in a goroutine.
func (h *Hub) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", h.HandleWatch)

	log.Printf("[WATCH] spectator server listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
