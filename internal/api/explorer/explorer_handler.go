package explorer

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-viberoute/internal/api"
	"github.com/FACorreiaa/go-viberoute/internal/types"
)

type HandlerImpl struct {
	store  *Store
	logger *slog.Logger
}

func NewHandlerImpl(store *Store, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		store:  store,
		logger: logger,
	}
}

// session resolves {sessionID}; on failure it has already written the response.
func (h *HandlerImpl) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid session ID format")
		return nil, false
	}
	s, err := h.store.Get(id)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusNotFound, err.Error())
		return nil, false
	}
	return s, true
}

func (h *HandlerImpl) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrBusy):
		api.ErrorResponse(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, ErrSessionNotFound):
		api.ErrorResponse(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, types.ErrCityRequired), errors.Is(err, types.ErrInvalidHours), errors.Is(err, ErrUnknownTab):
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Explorer request failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateSession godoc
// @Summary      Create Explorer Session
// @Description  Starts a new browsing session on the explore screen.
// @Tags         Explorer
// @Produce      json
// @Success      201 {object} types.ExplorerView
// @Router       /api/v1/explorer/sessions [post]
func (h *HandlerImpl) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.store.Create(r.Context())
	api.WriteJSONResponse(w, r, http.StatusCreated, s.View())
}

// GetSession godoc
// @Summary      Get Explorer Session
// @Tags         Explorer
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} types.ExplorerView
// @Failure      400 {object} types.Response "Invalid session ID"
// @Failure      404 {object} types.Response "Session not found"
// @Router       /api/v1/explorer/sessions/{sessionID} [get]
func (h *HandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, s.View())
}

// SubmitCity godoc
// @Summary      Submit City
// @Description  Sets the session city and opens the category menu.
// @Tags         Explorer
// @Accept       json
// @Produce      json
// @Param        sessionID path string            true "Session ID"
// @Param        request   body types.CityRequest true "City"
// @Success      200 {object} types.ExplorerView
// @Failure      400 {object} types.Response "Invalid Input"
// @Failure      404 {object} types.Response "Session not found"
// @Failure      409 {object} types.Response "Session is loading"
// @Router       /api/v1/explorer/sessions/{sessionID}/city [post]
func (h *HandlerImpl) SubmitCity(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req types.CityRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.SubmitCity(req.City); err != nil {
		h.writeError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, s.View())
}

// SetHours godoc
// @Summary      Set Itinerary Duration
// @Tags         Explorer
// @Accept       json
// @Produce      json
// @Param        sessionID path string             true "Session ID"
// @Param        request   body types.HoursRequest true "Hours"
// @Success      200 {object} types.ExplorerView
// @Failure      400 {object} types.Response "Invalid Input"
// @Failure      404 {object} types.Response "Session not found"
// @Failure      409 {object} types.Response "Session is loading"
// @Router       /api/v1/explorer/sessions/{sessionID}/hours [put]
func (h *HandlerImpl) SetHours(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req types.HoursRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.SetHours(req.Hours); err != nil {
		h.writeError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, s.View())
}

// SelectTab godoc
// @Summary      Select Tab
// @Description  Navigates to a tab. Detail tabs start a model query; pass wait=true to block until it settles.
// @Tags         Explorer
// @Produce      json
// @Param        sessionID path  string true  "Session ID"
// @Param        tab       path  string true  "Tab identifier"
// @Param        wait      query bool   false "Block until the fetch completes"
// @Success      200 {object} types.ExplorerView "Settled view"
// @Success      202 {object} types.ExplorerView "Fetch started"
// @Failure      400 {object} types.Response "Invalid Input"
// @Failure      404 {object} types.Response "Session not found"
// @Failure      409 {object} types.Response "Session is loading"
// @Router       /api/v1/explorer/sessions/{sessionID}/tabs/{tab} [post]
func (h *HandlerImpl) SelectTab(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ExplorerHandler").Start(r.Context(), "SelectTab")
	defer span.End()

	s, ok := h.session(w, r)
	if !ok {
		span.SetStatus(codes.Error, "Session lookup failed")
		return
	}
	tab := types.Tab(chi.URLParam(r, "tab"))
	span.SetAttributes(attribute.String("app.session.id", s.ID.String()), attribute.String("app.guide.tab", string(tab)))

	if err := s.SelectCategory(ctx, tab); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Navigation rejected")
		h.writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("wait") != "true" {
		view := s.View()
		status := http.StatusOK
		if view.Loading {
			status = http.StatusAccepted
		}
		api.WriteJSONResponse(w, r, status, view)
		return
	}

	if err := s.Wait(ctx); err != nil {
		h.logger.WarnContext(ctx, "Client stopped waiting for fetch", slog.Any("error", err))
		api.WriteJSONResponse(w, r, http.StatusAccepted, s.View())
		return
	}
	span.SetStatus(codes.Ok, "Tab settled")
	api.WriteJSONResponse(w, r, http.StatusOK, s.View())
}

// Back godoc
// @Summary      Navigate Back
// @Tags         Explorer
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} types.ExplorerView
// @Failure      404 {object} types.Response "Session not found"
// @Failure      409 {object} types.Response "Session is loading"
// @Router       /api/v1/explorer/sessions/{sessionID}/back [post]
func (h *HandlerImpl) Back(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.Back(); err != nil {
		h.writeError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, s.View())
}

// DeleteSession godoc
// @Summary      Delete Explorer Session
// @Tags         Explorer
// @Param        sessionID path string true "Session ID"
// @Success      204 "Session deleted"
// @Failure      400 {object} types.Response "Invalid session ID"
// @Failure      404 {object} types.Response "Session not found"
// @Router       /api/v1/explorer/sessions/{sessionID} [delete]
func (h *HandlerImpl) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid session ID format")
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
