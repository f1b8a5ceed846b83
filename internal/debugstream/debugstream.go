// Package debugstream broadcasts a JSON snapshot of the engine's state
// to any number of connected websocket clients, once per tick. It is
// purely observational: nothing it does feeds back into the state
// machine, and a client disconnecting never blocks or alters the tick
// loop.
package debugstream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Snapshot is the per-tick payload broadcast to every subscriber.
type Snapshot struct {
	Tick                      uint64  `json:"tick"`
	State                     string  `json:"state"`
	Sub                       string  `json:"sub,omitempty"`
	LastMovement              string  `json:"lastMovement"`
	UnstuckCounter            uint32  `json:"unstuckCounter"`
	UnstuckConsecutiveCounter uint32  `json:"unstuckConsecutiveCounter"`
	VIPBoosterFailCount       uint32  `json:"vipBoosterFailCount"`
	HexaBoosterFailCount      uint32  `json:"hexaBoosterFailCount"`
	PositionX                 int32   `json:"positionX,omitempty"`
	PositionY                 int32   `json:"positionY,omitempty"`
	HasPosition               bool    `json:"hasPosition"`
	QueueLength               int     `json:"queueLength"`
	NavigationHint            string  `json:"navigationHint,omitempty"`
}

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub tracks connected debug-stream subscribers and fans a Snapshot out
// to all of them. The zero value is not usable; build one with New.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*websocket.Conn]struct{}
	logger      *log.Logger
}

// New builds an empty Hub. A nil logger discards connection diagnostics.
func New(logger *log.Logger) *Hub {
	return &Hub{subscribers: make(map[*websocket.Conn]struct{}), logger: logger}
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}

// ServeHTTP upgrades the request to a websocket connection and registers
// it as a subscriber. The connection is dropped from the subscriber set
// the moment a write to it fails.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logf("debugstream: upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.subscribers[conn] = struct{}{}
	h.mu.Unlock()

	// Subscribers are read-only observers; drain and discard whatever
	// they send so the connection doesn't back up, and deregister on
	// disconnect.
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.subscribers, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast sends snapshot to every currently connected subscriber,
// dropping any connection whose write fails.
func (h *Hub) Broadcast(snapshot Snapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		h.logf("debugstream: marshal failed: %v", err)
		return
	}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.subscribers))
	for conn := range h.subscribers {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(conn)
		}
	}
}

// SubscriberCount returns the number of currently connected clients.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
