package realtime

import (
	"sync"
)

// Feed topics. One per content-store collection the frontend watches.
const (
	TopicTestimonials = "testimonials"
	TopicCandles      = "candles"
)

// Event is one push delivered to live-feed subscribers. The payload is a
// full snapshot of the watched collection, not a delta: subscribers replace
// their list wholesale on every event.
type Event struct {
	Topic   string      `json:"topic"`
	Payload interface{} `json:"payload"`
}

// Publisher is the write-side interface services publish through. It is
// satisfied by Hub directly and by Bridge when redis fanout is configured.
type Publisher interface {
	Publish(topic string, payload interface{})
}

// Hub fans collection-change events out to in-process subscribers.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

// Subscription is a registered listener. Close must run on every exit path
// of the consumer; a leaked subscription keeps a channel registered forever.
type Subscription struct {
	hub    *Hub
	topics []string
	once   sync.Once

	// C delivers events until Close.
	C chan Event
}

// Subscribe registers a listener for the given topics. The returned channel
// is buffered; a subscriber that stops draining loses events rather than
// blocking the publisher.
func (h *Hub) Subscribe(topics ...string) *Subscription {
	sub := &Subscription{hub: h, topics: topics, C: make(chan Event, 16)}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, t := range topics {
		if h.subs[t] == nil {
			h.subs[t] = make(map[chan Event]struct{})
		}
		h.subs[t][sub.C] = struct{}{}
	}
	return sub
}

// Close unregisters the subscription and closes its channel. Safe to call
// more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		for _, t := range s.topics {
			delete(s.hub.subs[t], s.C)
		}
		close(s.C)
	})
}

// Publish delivers an event to every subscriber of the topic. Non-blocking:
// full subscriber buffers are skipped.
func (h *Hub) Publish(topic string, payload interface{}) {
	ev := Event{Topic: topic, Payload: payload}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[topic] {
		select {
		case ch <- ev:
		default:
		}
	}
}
