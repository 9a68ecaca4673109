package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-viberoute/internal/api/explorer"
	"github.com/FACorreiaa/go-viberoute/internal/api/guide"
	"github.com/FACorreiaa/go-viberoute/internal/api/status"
)

type stubGenerator struct {
	text string
}

func (s stubGenerator) GenerateResponse(context.Context, string, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []*genai.Part{{Text: s.text}}},
	}}}, nil
}

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	guideService := guide.NewServiceImpl(stubGenerator{text: "[]"}, guide.Options{}, logger)
	store := explorer.NewStore(guideService, explorer.Options{}, logger)
	return SetupRouter(&Config{
		GuideHandler:    guide.NewHandlerImpl(guideService, logger),
		ExplorerHandler: explorer.NewHandlerImpl(store, logger),
		StatusHandler:   status.NewHandlerImpl(logger),
		AllowedOrigins:  []string{"http://localhost:5173"},
	})
}

func TestSetupRouter_Routes(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/ping", http.StatusOK},
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/spots", http.StatusOK},
		{http.MethodGet, "/api/v1/guide/suggestions", http.StatusOK},
		{http.MethodGet, "/api/v1/guide/menu?city=Roma", http.StatusNoContent},
		{http.MethodGet, "/api/v1/guide/safety?city=Roma", http.StatusOK},
		{http.MethodGet, "/api/v1/guide/safety", http.StatusBadRequest},
		{http.MethodPost, "/api/v1/explorer/sessions", http.StatusCreated},
		{http.MethodGet, "/api/v1/explorer/sessions/00000000-0000-0000-0000-000000000000", http.StatusNotFound},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSetupRouter_SwaggerDoc(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "/api/v1/guide/{tab}"))
}

func TestSetupRouter_CORS(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/guide/safety", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/guide/safety", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
