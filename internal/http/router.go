package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/league-admin/internal/http/handlers"
	"github.com/preston-bernstein/league-admin/internal/http/middleware"
	"github.com/preston-bernstein/league-admin/internal/metrics"
	"github.com/preston-bernstein/league-admin/internal/navigation"
)

// NewRouter registers HTTP routes on a chi router. Page routes run inside the
// navigation middleware so every page load drives the progress indicator.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder, events *navigation.Events) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger, recorder))
	r.Use(middleware.Recover(logger))
	r.Use(chimw.StripSlashes)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/navigation", h.Navigation)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Navigation(events))
		r.Get("/", h.Landing)
		r.Get("/teams", h.TeamsPage)
		r.Post("/teams", h.CreateTeam)
		r.Post("/teams/{id}/delete", h.DeleteTeam)
	})
	r.Delete("/teams/{id}", h.DeleteTeamJSON)

	return r
}
