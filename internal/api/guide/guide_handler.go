package guide

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-viberoute/internal/api"
	"github.com/FACorreiaa/go-viberoute/internal/types"
)

// CitySuggestions are the cities offered on the landing screen.
var CitySuggestions = []string{"Roma", "Parigi", "Tokyo", "New York", "Londra", "Barcellona", "Berlino", "Milano"}

type HandlerImpl struct {
	guideService Service
	logger       *slog.Logger
}

func NewHandlerImpl(guideService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		guideService: guideService,
		logger:       logger,
	}
}

// GetGuide godoc
// @Summary      Get Guide Data
// @Description  Queries the model for the tab's data about a city. Navigation and unknown tabs return no content.
// @Tags         Guide
// @Produce      json
// @Param        tab   path  string true  "Tab identifier (itinerary, safety, bites, social, overview-detail, food-detail, monuments-detail)"
// @Param        city  query string true  "City name"
// @Param        hours query int    false "Itinerary duration in hours (default 4)"
// @Success      200 {object} types.QueryResult "Guide data with sources"
// @Success      204 "Tab does not query the model"
// @Failure      400 {object} types.Response "Invalid Input"
// @Failure      502 {object} types.Response "Model call failed"
// @Router       /api/v1/guide/{tab} [get]
func (h *HandlerImpl) GetGuide(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GuideHandler").Start(r.Context(), "GetGuide", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/guide/{tab}"),
	))
	defer span.End()

	tab := types.Tab(chi.URLParam(r, "tab"))
	l := h.logger.With(slog.String("handler", "GetGuide"), slog.String("tab", string(tab)))

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		l.WarnContext(ctx, "City name missing from query parameters")
		span.SetStatus(codes.Error, "City name missing")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Query parameter 'city' is required.")
		return
	}
	span.SetAttributes(attribute.String("app.city.name", city), attribute.String("app.guide.tab", string(tab)))

	query := types.GuideQuery{City: city}
	if raw := r.URL.Query().Get("hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			l.WarnContext(ctx, "Invalid hours parameter", slog.String("hours", raw))
			span.SetStatus(codes.Error, "Invalid hours")
			api.ErrorResponse(w, r, http.StatusBadRequest, types.ErrInvalidHours.Error())
			return
		}
		query.DurationHours = hours
	}

	result, err := h.guideService.Dispatch(ctx, tab, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service error")
		if errors.Is(err, types.ErrCityRequired) || errors.Is(err, types.ErrInvalidHours) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(ctx, "Guide query failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadGateway, "Failed to query the travel guide model")
		return
	}
	if result == nil {
		span.SetStatus(codes.Ok, "No query for tab")
		api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
		return
	}

	span.SetAttributes(attribute.Int("app.guide.sources", len(result.Sources)))
	span.SetStatus(codes.Ok, "Guide served")
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// GetSuggestions godoc
// @Summary      Get City Suggestions
// @Tags         Guide
// @Produce      json
// @Success      200 {array} string
// @Router       /api/v1/guide/suggestions [get]
func (h *HandlerImpl) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, CitySuggestions)
}
