package status

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-viberoute/internal/types"
)

func TestHealth(t *testing.T) {
	h := NewHandlerImpl(slog.Default())
	h.now = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got types.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, "2026-03-14T09:30:00Z", got.Time)
}

func TestGetSpots(t *testing.T) {
	h := NewHandlerImpl(slog.Default())

	w := httptest.NewRecorder()
	h.GetSpots(w, httptest.NewRequest(http.MethodGet, "/api/spots", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Trattoria da Giggi", got[0]["name"])
	assert.InDelta(t, 41.8902, got[0]["lat"], 1e-9)
	assert.InDelta(t, 12.4922, got[0]["lng"], 1e-9)
	assert.Equal(t, "Stay", got[1]["type"])
}
