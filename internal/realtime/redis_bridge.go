package realtime

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/joelle-memorial/backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const channelPrefix = "realtime:"

// Bridge routes published events through redis pub/sub so every running
// instance's hub observes writes made on any instance. Local delivery also
// goes through redis: the subscribing goroutine is the single feed into the
// hub, which keeps instances consistent with each other.
type Bridge struct {
	hub    *Hub
	client *redis.Client
}

func NewBridge(hub *Hub, client *redis.Client) *Bridge {
	return &Bridge{hub: hub, client: client}
}

// Publish sends the event over redis. If redis is unreachable the event is
// delivered to the local hub directly so a single-instance deployment keeps
// working through a redis outage.
func (b *Bridge) Publish(topic string, payload interface{}) {
	data, err := json.Marshal(Event{Topic: topic, Payload: payload})
	if err != nil {
		logger.Errorf("marshal realtime event: %v", err)
		return
	}
	if err := b.client.Publish(context.Background(), channelPrefix+topic, data).Err(); err != nil {
		logger.Warnf("redis publish failed, delivering locally: %v", err)
		b.hub.Publish(topic, payload)
	}
}

// Run subscribes to the realtime channels and pumps events into the local
// hub until the context is cancelled. Intended to run as a goroutine for
// the lifetime of the process.
func (b *Bridge) Run(ctx context.Context) {
	ps := b.client.PSubscribe(ctx, channelPrefix+"*")
	defer ps.Close()
	ch := ps.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev struct {
				Topic   string          `json:"topic"`
				Payload json.RawMessage `json:"payload"`
			}
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				logger.Warnf("bad realtime event on %s: %v", msg.Channel, err)
				continue
			}
			topic := ev.Topic
			if topic == "" {
				topic = strings.TrimPrefix(msg.Channel, channelPrefix)
			}
			b.hub.Publish(topic, ev.Payload)
		case <-ctx.Done():
			return
		}
	}
}
