package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-viberoute/internal/api/explorer"
	"github.com/FACorreiaa/go-viberoute/internal/api/guide"
	"github.com/FACorreiaa/go-viberoute/internal/api/status"
	"github.com/FACorreiaa/go-viberoute/internal/router"
	"github.com/FACorreiaa/go-viberoute/internal/types"
)

// cannedGenerator answers each prompt with fixed JSON for its query and a
// single grounding source. Prompts about "Atlantide" fail.
type cannedGenerator struct {
	mu    sync.Mutex
	calls int
}

func (g *cannedGenerator) GenerateResponse(_ context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	if strings.Contains(prompt, "Atlantide") {
		return nil, errors.New("model unavailable")
	}

	var text string
	switch {
	case config.ResponseSchema.Type == genai.TypeObject:
		text = `{"description":"Città eterna","typicalFoods":[{"name":"Cacio e pepe","recommendedPlaces":[]}],"monuments":[{"name":"Pantheon"}],"hiddenGems":[]}`
	case strings.Contains(prompt, "itinerario"):
		text = `[{"time":"09:00 - 10:00","activity":"Colosseo","location":"Piazza del Colosseo"}]`
	case strings.Contains(prompt, "sicurezza"):
		text = `[{"neighborhood":"Monti","rating":8}]`
	case strings.Contains(prompt, "StreetEats"):
		text = `[{"name":"Supplì Roma","type":"Street Food"}]`
	default:
		text = `[{"activity":"Aperitivo sui tetti","vibe":"Chill"}]`
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		GroundingMetadata: &genai.GroundingMetadata{GroundingChunks: []*genai.GroundingChunk{
			{Web: &genai.GroundingChunkWeb{URI: "https://example.com/guide", Title: "Guide"}},
		}},
	}}}, nil
}

// E2ETestSuite drives the full HTTP stack against a canned model.
type E2ETestSuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	generator *cannedGenerator
	store     *explorer.Store
}

func (suite *E2ETestSuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.generator = &cannedGenerator{}

	guideService := guide.NewServiceImpl(suite.generator, guide.Options{WebSearch: true}, logger)
	suite.store = explorer.NewStore(guideService, explorer.Options{FetchTimeout: 5 * time.Second}, logger)

	handler := newHTTPHandler(&router.Config{
		GuideHandler:    guide.NewHandlerImpl(guideService, logger),
		ExplorerHandler: explorer.NewHandlerImpl(suite.store, logger),
		StatusHandler:   status.NewHandlerImpl(logger),
		AllowedOrigins:  []string{"http://localhost:5173"},
	}, logger, 10*time.Second)

	suite.server = httptest.NewServer(handler)
	suite.client = &http.Client{Timeout: 30 * time.Second}
}

func (suite *E2ETestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
}

func (suite *E2ETestSuite) makeRequest(method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, suite.server.URL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return suite.client.Do(req)
}

func (suite *E2ETestSuite) decodeView(resp *http.Response) types.ExplorerView {
	defer resp.Body.Close()
	var raw struct {
		types.ExplorerView
		Result json.RawMessage `json:"result"`
	}
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&raw))
	view := raw.ExplorerView
	if len(raw.Result) > 0 && string(raw.Result) != "null" {
		view.Result = &types.QueryResult{}
		var r struct {
			Kind types.QueryKind `json:"kind"`
		}
		require.NoError(suite.T(), json.Unmarshal(raw.Result, &r))
		view.Result.Kind = r.Kind
	}
	return view
}

func (suite *E2ETestSuite) TestHealthAndSpots() {
	t := suite.T()

	resp, err := suite.makeRequest(http.MethodGet, "/api/health", nil)
	require.NoError(t, err)
	var health types.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", health.Status)
	assert.NotEmpty(t, health.Time)

	resp, err = suite.makeRequest(http.MethodGet, "/api/spots", nil)
	require.NoError(t, err)
	var spots []types.Spot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&spots))
	resp.Body.Close()
	assert.Len(t, spots, 3)
}

func (suite *E2ETestSuite) TestGuideTabs() {
	t := suite.T()

	for _, tab := range []string{"itinerary", "safety", "bites", "social", "overview-detail", "food-detail", "monuments-detail"} {
		resp, err := suite.makeRequest(http.MethodGet, "/api/v1/guide/"+tab+"?city=Roma", nil)
		require.NoError(t, err)

		var body struct {
			Kind    types.QueryKind        `json:"kind"`
			Data    json.RawMessage        `json:"data"`
			Sources []types.SourceCitation `json:"sources"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode, tab)
		assert.NotEqual(t, "null", string(body.Data), tab)
		assert.Len(t, body.Sources, 1, tab)
	}

	resp, err := suite.makeRequest(http.MethodGet, "/api/v1/guide/explore?city=Roma", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = suite.makeRequest(http.MethodGet, "/api/v1/guide/safety?city=Atlantide", nil)
	require.NoError(t, err)
	var errBody types.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.False(t, errBody.Success)
	assert.NotEmpty(t, errBody.RequestID)
}

func (suite *E2ETestSuite) TestExplorerWorkflow() {
	t := suite.T()

	resp, err := suite.makeRequest(http.MethodPost, "/api/v1/explorer/sessions", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	view := suite.decodeView(resp)
	assert.Equal(t, types.TabExplore, view.Tab)
	assert.NotEmpty(t, view.Suggestions)
	base := "/api/v1/explorer/sessions/" + view.SessionID.String()

	resp, err = suite.makeRequest(http.MethodPost, base+"/city", types.CityRequest{City: "Roma"})
	require.NoError(t, err)
	view = suite.decodeView(resp)
	assert.Equal(t, types.TabMenu, view.Tab)

	resp, err = suite.makeRequest(http.MethodPost, base+"/tabs/food-detail?wait=true", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view = suite.decodeView(resp)
	assert.False(t, view.Loading)
	require.NotNil(t, view.Result)
	assert.Equal(t, types.KindOverview, view.Result.Kind)
	assert.Len(t, view.Sources, 1)

	resp, err = suite.makeRequest(http.MethodPost, base+"/back", nil)
	require.NoError(t, err)
	view = suite.decodeView(resp)
	assert.Equal(t, types.TabMenu, view.Tab)
	assert.Nil(t, view.Result)

	resp, err = suite.makeRequest(http.MethodDelete, base, nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func (suite *E2ETestSuite) TestExplorerFailureKeepsSessionUsable() {
	t := suite.T()

	resp, err := suite.makeRequest(http.MethodPost, "/api/v1/explorer/sessions", nil)
	require.NoError(t, err)
	base := "/api/v1/explorer/sessions/" + suite.decodeView(resp).SessionID.String()

	resp, err = suite.makeRequest(http.MethodPost, base+"/city", types.CityRequest{City: "Atlantide"})
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = suite.makeRequest(http.MethodPost, base+"/tabs/bites?wait=true", nil)
	require.NoError(t, err)
	view := suite.decodeView(resp)
	assert.False(t, view.Loading)
	assert.Nil(t, view.Result)
	assert.Contains(t, view.Error, "model unavailable")

	resp, err = suite.makeRequest(http.MethodPost, base+"/back", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func (suite *E2ETestSuite) TestConcurrentSessions() {
	t := suite.T()
	const numSessions = 5

	var wg sync.WaitGroup
	errs := make(chan error, numSessions)
	for i := 0; i < numSessions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := suite.makeRequest(http.MethodPost, "/api/v1/explorer/sessions", nil)
			if err != nil {
				errs <- err
				return
			}
			var view types.ExplorerView
			err = json.NewDecoder(resp.Body).Decode(&view)
			resp.Body.Close()
			if err != nil {
				errs <- err
				return
			}
			base := "/api/v1/explorer/sessions/" + view.SessionID.String()

			city := []string{"Roma", "Tokyo", "Milano", "Berlino", "Londra"}[i]
			resp, err = suite.makeRequest(http.MethodPost, base+"/city", types.CityRequest{City: city})
			if err != nil {
				errs <- err
				return
			}
			resp.Body.Close()

			resp, err = suite.makeRequest(http.MethodPost, base+"/tabs/safety?wait=true", nil)
			if err != nil {
				errs <- err
				return
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				errs <- fmt.Errorf("session %d: status %d", i, resp.StatusCode)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

// TestE2E runs the complete end-to-end test suite
func TestE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}

	suite.Run(t, new(E2ETestSuite))
}
