package feed

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	model "player-auction/internal/models"
	"player-auction/utils"
)

// Event types pushed to subscribers
const (
	EventPlayerCreated = "player_created"
	EventBidPlaced     = "bid_placed"
	EventPlayerSold    = "player_sold"
)

const (
	sendBuffer   = 64
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second
	readLimit    = 512
)

// Event is one player state change as sent over the websocket
type Event struct {
	Type   string       `json:"type"`
	Player model.Player `json:"player"`
}

// Publisher receives player state changes
type Publisher interface {
	Publish(evt Event)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	conn *websocket.Conn
	send chan Event
}

// Hub fans player updates out to every connected websocket client
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool
}

var _ Publisher = (*Hub)(nil)

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// Publish queues evt for every client. Clients whose queue is full are disconnected.
func (h *Hub) Publish(evt Event) {
	var slow []*client

	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- evt:
		default:
			slow = append(slow, c)
		}
	}
	delivered := len(h.clients) - len(slow)
	h.mu.RUnlock()

	utils.Debug("feed: event published", map[string]any{
		"type":      evt.Type,
		"player_id": evt.Player.ID,
		"clients":   delivered,
	})

	for _, c := range slow {
		utils.Warn("feed: dropping slow client", map[string]any{"remote": c.conn.RemoteAddr().String()})
		h.remove(c)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.remove(c)
	}
}

// ServeWS upgrades the request and streams events until the client goes away
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		utils.Warn("feed: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	cl := &client{conn: conn, send: make(chan Event, sendBuffer)}
	if !h.add(cl) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeTimeout))
		_ = conn.Close()
		return
	}

	utils.Info("feed: client connected", map[string]any{"remote": conn.RemoteAddr().String()})

	go h.writePump(cl)
	h.readPump(cl)
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

// remove unregisters c and closes its queue. Safe to call more than once.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// readPump discards inbound messages and keeps the read deadline alive
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.Warn("feed: unexpected close", map[string]any{"error": err.Error()})
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case evt, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
