package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zapponejosh/merch-calendar/internal/config"
)

// NewRouter configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/today                                   default calendar
//	GET /api/v1/{calendar}/today
//	GET /api/v1/{calendar}/dates/{date}
//	GET /api/v1/{calendar}/months?start=&end=
//	GET /api/v1/{calendar}/convert/{direction}/{month}
//	GET /api/v1/{calendar}/years/{year}
//	GET /api/v1/{calendar}/years/{year}/quarters/{quarter}
//	GET /api/v1/{calendar}/years/{year}/months/{month}
//	GET /api/v1/{calendar}/years/{year}/months/{month}/weeks
//	GET /api/v1/{calendar}/years/{year}/months/{month}/weeks/{week}
func NewRouter(h *Handlers, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware(cfg))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(ETagMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "No route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteMethodNotAllowed(w, r.Method+" not allowed on "+r.URL.Path)
	})

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimitMiddleware(cfg))
		r.Use(AuthMiddleware(cfg, logger))

		r.Get("/today", h.GetToday)

		r.Route("/{calendar}", func(r chi.Router) {
			r.Get("/today", h.GetToday)
			r.Get("/dates/{date}", h.GetDate)
			r.Get("/months", h.GetMonthsInRange)
			r.Get("/convert/{direction}/{month}", h.ConvertMonth)

			r.Route("/years/{year}", func(r chi.Router) {
				r.Get("/", h.GetYear)
				r.Get("/quarters/{quarter}", h.GetQuarter)
				r.Route("/months/{month}", func(r chi.Router) {
					r.Get("/", h.GetMonth)
					r.Get("/weeks", h.GetMonthWeeks)
					r.Get("/weeks/{week}", h.GetWeek)
				})
			})
		})
	})

	return r
}
