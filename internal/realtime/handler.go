package realtime

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/joelle-memorial/backend/pkg/logger"
	"github.com/joelle-memorial/backend/pkg/metrics"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SnapshotFunc produces the current full payload for a topic, sent once at
// connect so a fresh page session does not wait for the next write.
type SnapshotFunc func(ctx context.Context, topic string) (interface{}, error)

// Handler serves the live feed: one websocket per page session, subscribed
// to the requested topics for the lifetime of the connection.
type Handler struct {
	hub      *Hub
	snapshot SnapshotFunc
}

func NewHandler(hub *Hub, snapshot SnapshotFunc) *Handler {
	return &Handler{hub: hub, snapshot: snapshot}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/api/realtime", h.Serve)
}

// Serve upgrades the request and streams feed events until the client goes
// away. The subscription and the connection are both released on every exit
// path; that teardown is the one resource obligation of the live feed.
func (h *Handler) Serve(c *gin.Context) {
	topics, ok := parseTopics(c.Query("topics"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown topic; valid topics are testimonials, candles"})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("websocket upgrade failed: %v", err)
		return
	}
	defer ws.Close()

	metrics.RealtimeConnections.Inc()
	defer metrics.RealtimeConnections.Dec()

	sub := h.hub.Subscribe(topics...)
	defer sub.Close()

	ctx := c.Request.Context()

	// initial snapshots, in the order the topics were requested
	for _, t := range topics {
		payload, err := h.snapshot(ctx, t)
		if err != nil {
			logger.Warnf("snapshot for topic %s failed: %v", t, err)
			continue
		}
		if err := ws.WriteJSON(Event{Topic: t, Payload: payload}); err != nil {
			return
		}
	}

	// reader goroutine: the client never sends application data, but reading
	// is how we learn about the close handshake
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				if wsErr, ok := err.(*websocket.CloseError); ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						logger.Debugf("websocket closed: %v", wsErr)
					}
				} else {
					logger.Debugf("websocket read ended: %v", err)
				}
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			if err := ws.WriteJSON(ev); err != nil {
				return
			}
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func parseTopics(raw string) ([]string, bool) {
	if strings.TrimSpace(raw) == "" {
		return []string{TopicTestimonials, TopicCandles}, true
	}
	var topics []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		switch t {
		case TopicTestimonials, TopicCandles:
			topics = append(topics, t)
		case "":
		default:
			return nil, false
		}
	}
	if len(topics) == 0 {
		return nil, false
	}
	return topics, true
}
