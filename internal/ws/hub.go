// Package ws pushes chat events to connected browser shells over WebSocket.
// The hub mirrors the in-process event bus onto the wire: every published
// event is marshaled to a {event, payload} frame and broadcast to all open
// connections.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/0xshariq/ai-powered-chatbot/internal/bus"
)

const writeWait = 10 * time.Second

// frame is the wire envelope for a broadcast event.
type frame struct {
	Event   bus.EventName `json:"event"`
	Payload any           `json:"payload"`
}

// Hub tracks open WebSocket connections and fans bus events out to them.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}

	unsubscribe []func()
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Served same-origin behind the app's own router.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Bind subscribes the hub to every broadcast event on b. Call Close to detach.
func (h *Hub) Bind(b *bus.Bus) {
	for _, name := range []bus.EventName{
		bus.EventChatUpdated,
		bus.EventChatSelected,
		bus.EventNewChat,
		bus.EventSidebarToggled,
	} {
		h.unsubscribe = append(h.unsubscribe, b.Subscribe(name, h.broadcast))
	}
}

// Close detaches the hub from the bus and closes every open connection.
func (h *Hub) Close() {
	for _, unsub := range h.unsubscribe {
		unsub()
	}
	h.unsubscribe = nil

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.Close()
	}
	h.conns = make(map[*websocket.Conn]struct{})
}

// ConnCount reports the number of open connections.
func (h *Hub) ConnCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// HandleWS upgrades the request and registers the connection for broadcasts.
// Inbound messages are drained and discarded; the socket is push-only.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	total := len(h.conns)
	h.mu.Unlock()
	slog.Info("WebSocket client connected", "connections", total)

	go h.readLoop(conn)
}

func (h *Hub) readLoop(conn *websocket.Conn) {
	defer h.drop(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *Hub) broadcast(e bus.Event) {
	data, err := json.Marshal(frame{Event: e.Name(), Payload: e})
	if err != nil {
		slog.Error("Failed to marshal WebSocket frame", "event", e.Name(), "error", err)
		return
	}

	// Writes happen under the registry lock: gorilla connections allow only
	// one concurrent writer.
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Warn("Dropping slow WebSocket client", "error", err)
			delete(h.conns, conn)
			conn.Close()
		}
	}
}
