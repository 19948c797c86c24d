package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusFanOut(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	sub1 := bus.Subscribe("session:abc")
	sub2 := bus.Subscribe("session:abc")
	other := bus.Subscribe("session:xyz")

	bus.Publish("session:abc", []byte(`{"type":"log"}`))

	assert.Equal(t, []byte(`{"type":"log"}`), <-sub1.C)
	assert.Equal(t, []byte(`{"type":"log"}`), <-sub2.C)
	assert.Empty(t, other.C)
}

func TestBusPublishToEmptyChannel(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	// No subscribers: publish is a no-op, not a block or panic.
	bus.Publish("session:nobody", []byte(`{}`))
}

func TestBusCancelDetachesSubscriber(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	sub := bus.Subscribe("session:abc")
	require.Equal(t, 1, bus.SubscriberCount("session:abc"))

	sub.Cancel()
	assert.Equal(t, 0, bus.SubscriberCount("session:abc"))

	// C is closed after cancel.
	_, ok := <-sub.C
	assert.False(t, ok)

	// Cancel is idempotent.
	sub.Cancel()
}

func TestBusOverflowDropsWithWarning(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	sub := bus.Subscribe("session:abc")

	for i := 0; i < subscriberBuffer; i++ {
		bus.Publish("session:abc", []byte(`{"n":1}`))
	}
	// The queue is full: this publish drops the payload, evicts the
	// oldest queued event and enqueues an overflow warning in its
	// place. Publish must not block.
	bus.Publish("session:abc", []byte(`{"n":2}`))

	// One original event was evicted; the rest survive in order.
	for i := 0; i < subscriberBuffer-1; i++ {
		assert.Equal(t, []byte(`{"n":1}`), <-sub.C)
	}
	var got map[string]any
	require.NoError(t, json.Unmarshal(<-sub.C, &got))
	assert.Equal(t, "log", got["type"])
	assert.Equal(t, LogLevelWarning, got["level"])

	// Delivery resumes normally once there is room again.
	bus.Publish("session:abc", []byte(`{"n":3}`))
	assert.Equal(t, []byte(`{"n":3}`), <-sub.C)
}

func TestBusCloseClosesSubscriptions(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("session:abc")

	bus.Close()

	_, ok := <-sub.C
	assert.False(t, ok)

	// Publish and Subscribe after close are safe.
	bus.Publish("session:abc", []byte(`{}`))
	late := bus.Subscribe("session:abc")
	_, ok = <-late.C
	assert.False(t, ok)
}
