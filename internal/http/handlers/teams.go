package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/league-admin/internal/domain/teams"
	"github.com/preston-bernstein/league-admin/internal/logging"
	"github.com/preston-bernstein/league-admin/internal/teamlist"
)

const teamsPath = "/teams"

// TeamsPage performs the initial load: no session redirects to the landing route,
// otherwise the collection is fetched (or degraded to empty) and rendered.
// The page is mounted before its single server-side render, so the loader only
// shows when the page state expired between Load and Mount.
func (h *Handler) TeamsPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookupSession(r)
	if !ok {
		h.redirectToLanding(w, r)
		return
	}

	page := h.teams.Load(r.Context(), sess.Token)
	mounted, err := h.teams.Mount(page.ID, sess.Token)
	if err != nil {
		// Render the unmounted page; the loader is shown instead of the table.
		mounted = page
	}
	h.renderTeams(w, r, http.StatusOK, teamlist.View{Page: mounted})
}

// CreateTeam handles the create form.
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookupSession(r)
	if !ok {
		h.redirectToLanding(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form", h.logger)
		return
	}

	view, err := h.teams.Create(r.Context(), r.PostForm.Get("page"), sess.Token, r.PostForm.Get("name"))
	if err != nil {
		h.handlePageError(w, r, err)
		return
	}

	status := http.StatusOK
	if view.Invalid {
		status = http.StatusUnprocessableEntity
	}
	h.renderTeams(w, r, status, view)
}

// DeleteTeam handles the per-row delete form.
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	view, ok := h.deleteTeam(w, r, func() string {
		if err := r.ParseForm(); err != nil {
			return ""
		}
		return r.PostForm.Get("page")
	})
	if ok {
		h.renderTeams(w, r, http.StatusOK, view)
	}
}

// DeleteTeamJSON is the scripted variant of DeleteTeam; the page id comes from the query.
func (h *Handler) DeleteTeamJSON(w http.ResponseWriter, r *http.Request) {
	view, ok := h.deleteTeam(w, r, func() string { return r.URL.Query().Get("page") })
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Teams   []teams.Team      `json:"teams"`
		Notices []teamlist.Notice `json:"notices"`
	}{Teams: view.Page.Teams, Notices: view.Notices}, h.logger)
}

func (h *Handler) deleteTeam(w http.ResponseWriter, r *http.Request, pageID func() string) (teamlist.View, bool) {
	sess, ok := h.lookupSession(r)
	if !ok {
		h.redirectToLanding(w, r)
		return teamlist.View{}, false
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid team id", h.logger)
		return teamlist.View{}, false
	}

	view, err := h.teams.Delete(r.Context(), pageID(), sess.Token, id)
	if err != nil {
		h.handlePageError(w, r, err)
		return teamlist.View{}, false
	}
	return view, true
}

// handlePageError sends stale or foreign pages back through a fresh load.
func (h *Handler) handlePageError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	if errors.Is(err, teamlist.ErrPageNotFound) {
		logging.Info(logger, "page state missing, reloading", slog.String(logging.FieldPath, r.URL.Path))
		http.Redirect(w, r, teamsPath, http.StatusSeeOther)
		return
	}
	logging.Error(logger, "team page action failed", err)
	writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
}

func (h *Handler) renderTeams(w http.ResponseWriter, r *http.Request, status int, view teamlist.View) {
	h.views.render(w, status, pageTeams, teamsData{
		layoutData:    h.layout("Teams", view.Notices),
		PageID:        view.Page.ID,
		Mounted:       view.Page.Mounted(),
		Teams:         view.Page.Teams,
		Form:          view.Page.Form,
		MinNameLength: teams.MinNameLength,
	}, loggerFromContext(r, h.logger))
}
