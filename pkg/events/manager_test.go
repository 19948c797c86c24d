package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, _ int, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func setupTestManager(t *testing.T, querier CatchupQuerier) (*ConnectionManager, *Bus, *httptest.Server) {
	t.Helper()

	bus := NewBus()
	manager := NewConnectionManager(bus, querier, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() {
		server.Close()
		bus.Close()
	})
	return manager, bus, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readWSJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeWSJSON(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, _, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)

	msg := readWSJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeReceivesBusEvents(t *testing.T) {
	manager, bus, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readWSJSON(t, conn) // connection.established

	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:test-123"})

	msg := readWSJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "session:test-123", msg["channel"])

	// The first subscriber attaches the manager to the bus.
	waitFor(t, func() bool { return bus.SubscriberCount("session:test-123") == 1 })
	assert.Equal(t, 1, manager.ActiveConnections())

	bus.Publish("session:test-123", []byte(`{"type":"iteration_start","iteration":1}`))

	msg = readWSJSON(t, conn)
	assert.Equal(t, "iteration_start", msg["type"])
	assert.Equal(t, float64(1), msg["iteration"])

	// Events on other channels are not delivered.
	bus.Publish("session:other", []byte(`{"type":"log"}`))
	bus.Publish("session:test-123", []byte(`{"type":"convergence_check"}`))
	msg = readWSJSON(t, conn)
	assert.Equal(t, "convergence_check", msg["type"])
}

func TestConnectionManager_UnsubscribeDetachesFromBus(t *testing.T) {
	manager, bus, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readWSJSON(t, conn)

	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	readWSJSON(t, conn) // subscription.confirmed
	waitFor(t, func() bool { return bus.SubscriberCount("session:abc") == 1 })

	writeWSJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: "session:abc"})
	waitFor(t, func() bool { return bus.SubscriberCount("session:abc") == 0 })
	assert.Equal(t, 0, manager.subscriberCount("session:abc"))
}

func TestConnectionManager_DisconnectCleansUp(t *testing.T) {
	manager, bus, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readWSJSON(t, conn)

	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	readWSJSON(t, conn)
	waitFor(t, func() bool { return bus.SubscriberCount("session:abc") == 1 })

	conn.Close(websocket.StatusNormalClosure, "")

	waitFor(t, func() bool { return manager.ActiveConnections() == 0 })
	waitFor(t, func() bool { return bus.SubscriberCount("session:abc") == 0 })
}

func TestConnectionManager_SubscribeDoesNotReplay(t *testing.T) {
	// Persisted history exists, but subscribing alone must not deliver
	// it; only live events flow until the client asks for catchup.
	querier := &mockCatchupQuerier{
		events: []CatchupEvent{
			{ID: 1, Payload: map[string]interface{}{"type": "session_created"}},
			{ID: 2, Payload: map[string]interface{}{"type": "iteration_start"}},
		},
	}
	_, bus, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readWSJSON(t, conn)

	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	msg := readWSJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])

	waitFor(t, func() bool { return bus.SubscriberCount("session:abc") == 1 })
	bus.Publish("session:abc", []byte(`{"type":"convergence_check"}`))

	// The next frame is the live event, not replayed history.
	msg = readWSJSON(t, conn)
	assert.Equal(t, "convergence_check", msg["type"])
	assert.Nil(t, msg["catchup"])
}

func TestConnectionManager_Catchup(t *testing.T) {
	querier := &mockCatchupQuerier{
		events: []CatchupEvent{
			{ID: 1, Payload: map[string]interface{}{"type": "session_created"}},
			{ID: 2, Payload: map[string]interface{}{"type": "iteration_start"}},
		},
	}
	_, _, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readWSJSON(t, conn)

	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	readWSJSON(t, conn) // subscription.confirmed

	since := 0
	writeWSJSON(t, conn, ClientMessage{Action: "catchup", Channel: "session:abc", LastEventID: &since})

	// Catchup replays persisted events with catchup markers.
	msg := readWSJSON(t, conn)
	assert.Equal(t, "session_created", msg["type"])
	assert.Equal(t, true, msg["catchup"])
	assert.Equal(t, float64(1), msg["event_id"])

	msg = readWSJSON(t, conn)
	assert.Equal(t, "iteration_start", msg["type"])

	msg = readWSJSON(t, conn)
	assert.Equal(t, "catchup.complete", msg["type"])
	assert.Equal(t, float64(2), msg["count"])
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	events := make([]CatchupEvent, catchupLimit+1)
	for i := range events {
		events[i] = CatchupEvent{ID: i + 1, Payload: map[string]interface{}{"type": "log"}}
	}
	_, _, server := setupTestManager(t, &mockCatchupQuerier{events: events})
	conn := connectWS(t, server)
	readWSJSON(t, conn)

	writeWSJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	readWSJSON(t, conn) // subscription.confirmed

	since := 0
	writeWSJSON(t, conn, ClientMessage{Action: "catchup", Channel: "session:abc", LastEventID: &since})

	msg := readWSJSON(t, conn)
	assert.Equal(t, "catchup.overflow", msg["type"])
}

func TestConnectionManager_Ping(t *testing.T) {
	_, _, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readWSJSON(t, conn)

	writeWSJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readWSJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_SubscribeRequiresChannel(t *testing.T) {
	_, _, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readWSJSON(t, conn)

	writeWSJSON(t, conn, ClientMessage{Action: "subscribe"})
	msg := readWSJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}
