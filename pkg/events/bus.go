package events

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// subscriberBuffer is the per-subscriber queue depth. A subscriber
// that falls this far behind starts losing events (replaced by a
// synthetic overflow warning); publishers never block on slow
// consumers.
const subscriberBuffer = 256

// Subscription is a live feed of one channel's events. Receive from C
// and call Cancel when done. C is closed after Cancel or Bus.Close.
type Subscription struct {
	C chan []byte

	bus     *Bus
	channel string
	id      int

	once sync.Once
}

// Cancel detaches the subscription and closes C. Safe to call more
// than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.bus.unsubscribe(s)
		close(s.C)
	})
}

// Bus is the in-process event fan-out. Publish delivers a payload to
// every subscriber of a channel without blocking; each subscriber has
// its own bounded queue.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[int]*Subscription
	nextID int
	closed bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]*Subscription)}
}

// Subscribe attaches a new subscriber to channel.
func (b *Bus) Subscribe(channel string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscription{
		C:       make(chan []byte, subscriberBuffer),
		bus:     b,
		channel: channel,
		id:      b.nextID,
	}
	b.nextID++

	if b.closed {
		// Late subscriber on a closed bus gets an already-cancelled
		// subscription rather than a hang.
		sub.once.Do(func() { close(sub.C) })
		return sub
	}

	if b.subs[channel] == nil {
		b.subs[channel] = make(map[int]*Subscription)
	}
	b.subs[channel][sub.id] = sub
	return sub
}

func (b *Bus) unsubscribe(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if subs, ok := b.subs[s.channel]; ok {
		delete(subs, s.id)
		if len(subs) == 0 {
			delete(b.subs, s.channel)
		}
	}
}

// Publish delivers payload to every subscriber of channel. When a
// subscriber's queue is full the oldest queued event is evicted and a
// synthetic overflow warning is enqueued in its place, so the client
// learns its view of the stream has a gap.
func (b *Bus) Publish(channel string, payload []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, sub := range b.subs[channel] {
		select {
		case sub.C <- payload:
		default:
			slog.Warn("Event subscriber queue full, dropping event", "channel", channel)
			b.sendOverflowWarning(sub)
		}
	}
}

// sendOverflowWarning makes room by evicting the oldest queued event,
// then enqueues the warning. Receiving here races only with the
// subscriber's own reads, which is safe.
func (b *Bus) sendOverflowWarning(sub *Subscription) {
	warn, err := json.Marshal(LogPayload{
		Type:      EventTypeLog,
		Level:     LogLevelWarning,
		Message:   "event stream overflow, some events were dropped",
		Timestamp: Timestamp(time.Now()),
	})
	if err != nil {
		return
	}
	select {
	case <-sub.C:
	default:
	}
	select {
	case sub.C <- warn:
	default:
	}
}

// SubscriberCount returns how many subscribers channel currently has.
func (b *Bus) SubscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[channel])
}

// Close shuts the bus down and closes every subscription.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, subs := range b.subs {
		for _, sub := range subs {
			sub.once.Do(func() { close(sub.C) })
		}
	}
	b.subs = make(map[string]map[int]*Subscription)
}
