package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joelle-memorial/backend/internal/candle/repository"
	"github.com/joelle-memorial/backend/internal/candle/service"
	"github.com/joelle-memorial/backend/internal/realtime"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	svc := service.New(repository.NewMemoryRepo(), realtime.NewHub())
	r := gin.New()
	RegisterCandleRoutes(r, svc)
	return r
}

func light(r *gin.Engine, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest("POST", "/api/candles", nil)
	} else {
		req = httptest.NewRequest("POST", "/api/candles", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLightCandle(t *testing.T) {
	r := newTestRouter()

	w := light(r, `{"name":"Ama"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool  `json:"success"`
		Total   int64 `json:"total"`
		Candle  struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"candle"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, int64(1), resp.Total)
	require.Equal(t, "Ama", resp.Candle.Name)
	require.NotEmpty(t, resp.Candle.ID)
}

func TestLightCandle_AnonymousWithEmptyBody(t *testing.T) {
	r := newTestRouter()

	w := light(r, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Candle struct {
			Name string `json:"name"`
		} `json:"candle"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Candle.Name)
}

func TestLightCandle_NameTooLong(t *testing.T) {
	r := newTestRouter()

	w := light(r, `{"name":"`+strings.Repeat("x", 51)+`"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLightCandle_AccentedNameAtCap(t *testing.T) {
	r := newTestRouter()

	// 50 accented characters exceed 50 bytes but not the character cap
	w := light(r, `{"name":"`+strings.Repeat("è", 50)+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = light(r, `{"name":"`+strings.Repeat("è", 51)+`"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecentAndCount_AcrossFeedLimit(t *testing.T) {
	r := newTestRouter()

	for i := 0; i < 13; i++ {
		w := light(r, `{"name":"visitor"}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest("GET", "/api/candles/recent", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var recent struct {
		Candles []json.RawMessage `json:"candles"`
		Total   int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recent))
	require.Len(t, recent.Candles, 12)
	require.Equal(t, int64(13), recent.Total)

	req = httptest.NewRequest("GET", "/api/candles/count", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var count struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &count))
	require.Equal(t, int64(13), count.Count)
}
