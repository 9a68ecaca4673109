package guide

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-viberoute/internal/types"
)

// MockGuideService is a mock implementation of the Service interface
type MockGuideService struct {
	mock.Mock
}

func (m *MockGuideService) GenerateItinerary(ctx context.Context, city string, hours int) (*types.GuideResponse[[]types.ItineraryStop], error) {
	args := m.Called(ctx, city, hours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GuideResponse[[]types.ItineraryStop]), args.Error(1)
}

func (m *MockGuideService) GetSafetyHeatmap(ctx context.Context, city string) (*types.GuideResponse[[]types.NeighborhoodSafety], error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GuideResponse[[]types.NeighborhoodSafety]), args.Error(1)
}

func (m *MockGuideService) GetLocalBites(ctx context.Context, city string) (*types.GuideResponse[[]types.Eatery], error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GuideResponse[[]types.Eatery]), args.Error(1)
}

func (m *MockGuideService) GetSocialTours(ctx context.Context, city string) (*types.GuideResponse[[]types.SocialActivity], error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GuideResponse[[]types.SocialActivity]), args.Error(1)
}

func (m *MockGuideService) GetCityOverview(ctx context.Context, city string) (*types.GuideResponse[types.CityOverview], error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GuideResponse[types.CityOverview]), args.Error(1)
}

func (m *MockGuideService) Dispatch(ctx context.Context, tab types.Tab, q types.GuideQuery) (*types.QueryResult, error) {
	args := m.Called(ctx, tab, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.QueryResult), args.Error(1)
}

func newGuideRouter(h *HandlerImpl) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/guide/suggestions", h.GetSuggestions)
	r.Get("/api/v1/guide/{tab}", h.GetGuide)
	return r
}

func TestHandlerImpl_GetGuide(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		setup      func(m *MockGuideService)
		wantStatus int
		check      func(t *testing.T, body []byte)
	}{
		{
			name:       "missing city",
			url:        "/api/v1/guide/safety",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "hours not a number",
			url:        "/api/v1/guide/itinerary?city=Roma&hours=tante",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "hours not positive",
			url:        "/api/v1/guide/itinerary?city=Roma&hours=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "navigation tab",
			url:  "/api/v1/guide/menu?city=Roma",
			setup: func(m *MockGuideService) {
				m.On("Dispatch", mock.Anything, types.TabMenu, types.GuideQuery{City: "Roma"}).Return(nil, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "model failure",
			url:  "/api/v1/guide/bites?city=Tokyo",
			setup: func(m *MockGuideService) {
				m.On("Dispatch", mock.Anything, types.TabBites, types.GuideQuery{City: "Tokyo"}).
					Return(nil, fmt.Errorf("failed to generate bites for Tokyo: %w", errors.New("boom"))).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "service rejects city",
			url:  "/api/v1/guide/bites?city=Tokyo",
			setup: func(m *MockGuideService) {
				m.On("Dispatch", mock.Anything, types.TabBites, types.GuideQuery{City: "Tokyo"}).
					Return(nil, types.ErrCityRequired).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "itinerary with hours",
			url:  "/api/v1/guide/itinerary?city=Roma&hours=6",
			setup: func(m *MockGuideService) {
				m.On("Dispatch", mock.Anything, types.TabItinerary, types.GuideQuery{City: "Roma", DurationHours: 6}).
					Return(&types.QueryResult{
						Kind:      types.KindItinerary,
						Itinerary: []types.ItineraryStop{{Time: "09:00", Activity: "Colosseo"}},
						Sources:   []types.SourceCitation{{URI: "https://example.com", Title: "Ex"}},
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var got struct {
					Kind    string                 `json:"kind"`
					Data    []types.ItineraryStop  `json:"data"`
					Sources []types.SourceCitation `json:"sources"`
				}
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "itinerary", got.Kind)
				require.Len(t, got.Data, 1)
				assert.Equal(t, "Colosseo", got.Data[0].Activity)
				assert.Len(t, got.Sources, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockGuideService)
			if tt.setup != nil {
				tt.setup(mockService)
			}
			router := newGuideRouter(NewHandlerImpl(mockService, slog.Default()))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.check != nil {
				tt.check(t, w.Body.Bytes())
			}
			if tt.setup == nil {
				mockService.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandlerImpl_GetSuggestions(t *testing.T) {
	router := newGuideRouter(NewHandlerImpl(new(MockGuideService), slog.Default()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guide/suggestions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, CitySuggestions, got)
}
