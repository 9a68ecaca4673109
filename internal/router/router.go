package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/go-viberoute/docs"
	"github.com/FACorreiaa/go-viberoute/internal/api/explorer"
	"github.com/FACorreiaa/go-viberoute/internal/api/guide"
	"github.com/FACorreiaa/go-viberoute/internal/api/status"
)

// Config contains dependencies needed for the router setup
type Config struct {
	GuideHandler    *guide.HandlerImpl
	ExplorerHandler *explorer.HandlerImpl
	StatusHandler   *status.HandlerImpl
	AllowedOrigins  []string
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (request ID, logger, recoverer) is applied in main
// before this router is mounted.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Get("/api/health", cfg.StatusHandler.Health)
	r.Get("/api/spots", cfg.StatusHandler.GetSpots)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/guide", func(r chi.Router) {
			r.Get("/suggestions", cfg.GuideHandler.GetSuggestions)
			r.Get("/{tab}", cfg.GuideHandler.GetGuide)
		})

		r.Route("/explorer/sessions", func(r chi.Router) {
			r.Post("/", cfg.ExplorerHandler.CreateSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", cfg.ExplorerHandler.GetSession)
				r.Delete("/", cfg.ExplorerHandler.DeleteSession)
				r.Post("/city", cfg.ExplorerHandler.SubmitCity)
				r.Put("/hours", cfg.ExplorerHandler.SetHours)
				r.Post("/tabs/{tab}", cfg.ExplorerHandler.SelectTab)
				r.Post("/back", cfg.ExplorerHandler.Back)
			})
		})
	})

	return r
}
