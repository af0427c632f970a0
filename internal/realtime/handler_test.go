package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newFeedServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	snapshot := func(ctx context.Context, topic string) (interface{}, error) {
		switch topic {
		case TopicTestimonials:
			return map[string]interface{}{"testimonials": []string{}}, nil
		default:
			return map[string]interface{}{"candles": []string{}, "total": 0}, nil
		}
	}
	r := gin.New()
	NewHandler(hub, snapshot).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dialFeed(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/realtime" + query
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readEvent(t *testing.T, ws *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, ws.ReadJSON(&ev))
	return ev
}

func TestServe_SnapshotThenPush(t *testing.T) {
	hub := NewHub()
	srv := newFeedServer(t, hub)
	ws := dialFeed(t, srv, "?topics=testimonials")

	// initial snapshot arrives before any write happens
	ev := readEvent(t, ws)
	require.Equal(t, TopicTestimonials, ev.Topic)

	// a publish after connect is pushed to the open socket
	hub.Publish(TopicTestimonials, map[string]interface{}{"testimonials": []string{"new"}})
	ev = readEvent(t, ws)
	require.Equal(t, TopicTestimonials, ev.Topic)
	payload, ok := ev.Payload.(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, payload, "testimonials")
}

func TestServe_DefaultTopicsSendBothSnapshots(t *testing.T) {
	hub := NewHub()
	srv := newFeedServer(t, hub)
	ws := dialFeed(t, srv, "")

	first := readEvent(t, ws)
	second := readEvent(t, ws)
	require.ElementsMatch(t, []string{TopicTestimonials, TopicCandles}, []string{first.Topic, second.Topic})
}

func TestServe_TopicIsolation(t *testing.T) {
	hub := NewHub()
	srv := newFeedServer(t, hub)
	ws := dialFeed(t, srv, "?topics=candles")

	ev := readEvent(t, ws)
	require.Equal(t, TopicCandles, ev.Topic)

	// a testimonial publish must not reach a candles-only subscriber
	hub.Publish(TopicTestimonials, "ignored")
	hub.Publish(TopicCandles, "lit")

	ev = readEvent(t, ws)
	require.Equal(t, TopicCandles, ev.Topic)
	require.Equal(t, "lit", ev.Payload)
}

func TestServe_UnknownTopicRejectedBeforeUpgrade(t *testing.T) {
	hub := NewHub()
	srv := newFeedServer(t, hub)

	resp, err := http.Get(srv.URL + "/api/realtime?topics=weather")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
