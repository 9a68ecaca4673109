package status

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/FACorreiaa/go-viberoute/internal/api"
	"github.com/FACorreiaa/go-viberoute/internal/types"
)

// DemoSpots is the fixed list served by GetSpots.
var DemoSpots = []types.Spot{
	{ID: 1, Name: "Trattoria da Giggi", Type: "Food", Price: "€", Safety: 5, Latitude: 41.8902, Longitude: 12.4922, Description: "Authentic Roman pasta for under 12€."},
	{ID: 2, Name: "YellowSquare Hostel", Type: "Stay", Price: "€€", Safety: 4, Latitude: 41.9055, Longitude: 12.5047, Description: "Best social hostel in Rome with a basement bar."},
	{ID: 3, Name: "Mercato di Testaccio", Type: "Food", Price: "€", Safety: 5, Latitude: 41.8785, Longitude: 12.4775, Description: "Street food heaven. Try the Mordi e Vai sandwich."},
}

type HandlerImpl struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewHandlerImpl(logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{logger: logger, now: time.Now}
}

// Health godoc
// @Summary      Health Check
// @Tags         Status
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /api/health [get]
func (h *HandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, types.HealthResponse{
		Status: "ok",
		Time:   h.now().UTC().Format(time.RFC3339Nano),
	})
}

// GetSpots godoc
// @Summary      List Demo Spots
// @Tags         Status
// @Produce      json
// @Success      200 {array} types.Spot
// @Router       /api/spots [get]
func (h *HandlerImpl) GetSpots(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Serving demo spots", slog.Int("count", len(DemoSpots)))
	api.WriteJSONResponse(w, r, http.StatusOK, DemoSpots)
}
