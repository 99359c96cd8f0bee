package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/league-admin/internal/navigation"
	"github.com/preston-bernstein/league-admin/internal/session"
	"github.com/preston-bernstein/league-admin/internal/teamlist"
)

const defaultLandingPath = "/"

// Handler wires HTTP routes to the team page controller.
type Handler struct {
	teams       *teamlist.Controller
	sessions    session.Provider
	indicator   *navigation.Indicator
	logger      *slog.Logger
	landingPath string
	views       *renderer
}

// NewHandler constructs a Handler. A nil indicator renders a permanently hidden bar.
func NewHandler(teams *teamlist.Controller, sessions session.Provider, indicator *navigation.Indicator, landingPath string, logger *slog.Logger) *Handler {
	if landingPath == "" {
		landingPath = defaultLandingPath
	}
	if indicator == nil {
		indicator = navigation.NewIndicator()
	}
	return &Handler{
		teams:       teams,
		sessions:    sessions,
		indicator:   indicator,
		logger:      logger,
		landingPath: landingPath,
		views:       newRenderer(),
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.teams == nil || h.sessions == nil {
		writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Navigation reports the progress bar's current render state.
func (h *Handler) Navigation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		InTransition bool           `json:"inTransition"`
		Bar          navigation.Bar `json:"bar"`
	}{
		InTransition: h.indicator.InTransition(),
		Bar:          h.indicator.Bar(),
	}, h.logger)
}

// Landing renders the entry page unauthenticated visitors are sent to.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	_, signedIn := h.lookupSession(r)
	h.views.render(w, http.StatusOK, pageLanding, landingData{
		layoutData: h.layout("Welcome", nil),
		SignedIn:   signedIn,
	}, loggerFromContext(r, h.logger))
}

// layout always carries the idle bar: the page being written is the completion of
// its own navigation. Live state is served by Navigation.
func (h *Handler) layout(title string, notices []teamlist.Notice) layoutData {
	return layoutData{Title: title, Bar: navigation.IdleBar(), Notices: notices}
}

func (h *Handler) lookupSession(r *http.Request) (session.Session, bool) {
	if h.sessions == nil {
		return session.Session{}, false
	}
	return h.sessions.Lookup(r)
}

// redirectToLanding is terminal: nothing else is written for the request.
func (h *Handler) redirectToLanding(w http.ResponseWriter, r *http.Request) {
	status := http.StatusTemporaryRedirect
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		status = http.StatusSeeOther
	}
	http.Redirect(w, r, h.landingPath, status)
}
