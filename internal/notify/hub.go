package notify

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/pkg/metrics"
)

const (
	writeWait = 5 * time.Second
	pingEvery = 25 * time.Second
)

type EventType string

const (
	EventNotification EventType = "notification"
	EventTimer        EventType = "timer"
)

// Event is the frame pushed to every connected view.
type Event struct {
	Type  EventType `json:"type"`
	Title string    `json:"title,omitempty"`
	Body  string    `json:"body,omitempty"`
	Data  any       `json:"data,omitempty"`
}

type client struct {
	conn *websocket.Conn
	// gorilla connections allow one concurrent writer
	mu sync.Mutex
}

func (c *client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(messageType, data)
}

// Hub keeps the connected views and fans events out to them. As a Notifier,
// it holds permission while at least one view is subscribed.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	closed   bool
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHub accepts upgrades from the given origins. "*" accepts any origin.
func NewHub(allowedOrigins []string, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
		},
	}
	return h
}

// ServeHTTP upgrades the request and holds the connection until the view
// goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	c := &client{conn: conn}
	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	h.logger.Info("view subscribed", slog.String("remote_addr", r.RemoteAddr))

	done := make(chan struct{})
	go h.keepAlive(c, done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	close(done)
	h.unregister(c)
	h.logger.Info("view unsubscribed", slog.String("remote_addr", r.RemoteAddr))
}

func (h *Hub) keepAlive(c *client, done <-chan struct{}) {
	t := time.NewTicker(pingEvery)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				h.unregister(c)
				return
			}
		}
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	metrics.Subscribers.Set(float64(len(h.clients)))
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		metrics.Subscribers.Set(float64(len(h.clients)))
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish sends ev to every connected view and returns how many got it.
// Views that fail the write are dropped.
func (h *Hub) Publish(ev Event) (int, error) {
	msg, err := sonic.Marshal(ev)
	if err != nil {
		return 0, errors.New("encoding event error: " + err.Error())
	}
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, c := range targets {
		if err := c.write(websocket.TextMessage, msg); err != nil {
			h.logger.Warn("dropping view after failed write", slog.String("error", err.Error()))
			h.unregister(c)
			continue
		}
		delivered++
	}
	return delivered, nil
}

func (h *Hub) RequestPermission(ctx context.Context) (Permission, error) {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		return PermissionDenied, errorvalues.ErrNotificationsUnsupported
	}
	return h.Permission(), nil
}

func (h *Hub) Permission() Permission {
	if h.Subscribers() > 0 {
		return PermissionGranted
	}
	return PermissionDenied
}

func (h *Hub) Notify(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := h.Publish(Event{Type: EventNotification, Title: title, Body: body})
	if err != nil {
		return err
	}
	if n == 0 {
		return errorvalues.ErrPermissionDenied
	}
	return nil
}

// Close disconnects every view and refuses new ones.
func (h *Hub) Close() error {
	h.mu.Lock()
	h.closed = true
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		_ = c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		h.unregister(c)
	}
	return nil
}
