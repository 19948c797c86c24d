package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup
// response. If more events were missed, a catchup.overflow message
// tells the client to do a full REST reload.
const catchupLimit = 200

// CatchupEvent holds the data returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier queries persisted events for catchup. Implemented by
// the session store.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// ConnectionManager manages WebSocket connections and channel
// subscriptions, bridging bus channels to connected clients. The first
// client subscription to a channel attaches the manager to the bus;
// the last unsubscribe detaches it.
type ConnectionManager struct {
	// Active connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Channel subscriptions: channel → set of connection_ids, plus the
	// manager's own bus subscription feeding that channel.
	channels  map[string]map[string]bool
	busSubs   map[string]*Subscription
	channelMu sync.Mutex

	bus            *Bus
	catchupQuerier CatchupQuerier

	writeTimeout time.Duration
}

// Connection represents a single WebSocket client.
//
// subscriptions is accessed WITHOUT a lock. This is safe because all
// reads and writes happen on the single goroutine that owns this
// connection (HandleConnection's read loop and its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a connection manager reading from bus.
// catchupQuerier may be nil when event persistence is disabled.
func NewConnectionManager(bus *Bus, catchupQuerier CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:    make(map[string]*Connection),
		channels:       make(map[string]map[string]bool),
		busSubs:        make(map[string]*Subscription),
		bus:            bus,
		catchupQuerier: catchupQuerier,
		writeTimeout:   writeTimeout,
	}
}

// HandleConnection manages the lifecycle of a single WebSocket
// connection. Called by the WebSocket HTTP handler after upgrade.
// Blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast sends an event payload to all connections subscribed to
// the given channel.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.channelMu.Lock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.Unlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.Unlock()

	// Snapshot connection pointers under the lock, then release before
	// sending, so slow writes cannot stall register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported, used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.Lock()
	defer m.channelMu.Unlock()
	return len(m.channels[channel])
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		m.subscribe(c, msg.Channel)
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// No replay on subscribe. Clients that missed events send an
		// explicit catchup with their last seen event ID.

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers a connection for a channel. The first subscriber
// attaches the manager to the bus; the bus pump goroutine runs until
// the last subscriber leaves.
func (m *ConnectionManager) subscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		sub := m.bus.Subscribe(channel)
		m.busSubs[channel] = sub
		go m.pump(channel, sub)
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	c.subscriptions[channel] = true
}

// pump forwards one bus subscription to Broadcast until cancelled.
func (m *ConnectionManager) pump(channel string, sub *Subscription) {
	for event := range sub.C {
		m.Broadcast(channel, event)
	}
}

// unsubscribe removes a connection from a channel and detaches from
// the bus if it was the last subscriber.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
			if sub, ok := m.busSubs[channel]; ok {
				delete(m.busSubs, channel)
				sub.Cancel()
			}
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

// handleCatchup sends all persisted events on channel with ID greater
// than sinceID, followed by catchup.complete. With more than
// catchupLimit missed events, catchup.overflow is sent instead and the
// client should reload via REST.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, channel string, sinceID int) {
	if m.catchupQuerier == nil {
		m.sendJSON(c, map[string]any{
			"type":    "catchup.complete",
			"channel": channel,
			"count":   0,
		})
		return
	}

	catchupEvents, err := m.catchupQuerier.GetCatchupEvents(ctx, channel, sinceID, catchupLimit+1)
	if err != nil {
		slog.Warn("Catchup query failed",
			"connection_id", c.ID, "channel", channel, "error", err)
		m.sendJSON(c, map[string]string{
			"type":    "error",
			"message": "catchup query failed",
		})
		return
	}

	if len(catchupEvents) > catchupLimit {
		m.sendJSON(c, map[string]any{
			"type":    "catchup.overflow",
			"channel": channel,
			"message": "too many missed events, perform a full reload",
		})
		return
	}

	for _, ev := range catchupEvents {
		ev.Payload["catchup"] = true
		ev.Payload["event_id"] = ev.ID
		m.sendJSON(c, ev.Payload)
	}
	m.sendJSON(c, map[string]any{
		"type":    "catchup.complete",
		"channel": channel,
		"count":   len(catchupEvents),
	})
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	for channel := range c.subscriptions {
		m.unsubscribe(c, channel)
	}
	c.cancel()
}

func (m *ConnectionManager) sendJSON(c *Connection, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal WebSocket payload", "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send to WebSocket client",
			"connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	ctx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(ctx, websocket.MessageText, data)
}
