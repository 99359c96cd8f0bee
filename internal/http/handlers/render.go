package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/league-admin/internal/domain/teams"
	"github.com/preston-bernstein/league-admin/internal/navigation"
	"github.com/preston-bernstein/league-admin/internal/teamlist"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageLanding = "landing"
	pageTeams   = "teams"
)

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() *renderer {
	return &renderer{
		pages: map[string]*template.Template{
			pageLanding: template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/landing.html")),
			pageTeams:   template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/teams.html")),
		},
	}
}

// layoutData is shared by every page.
type layoutData struct {
	Title   string
	Bar     navigation.Bar
	Notices []teamlist.Notice
}

type landingData struct {
	layoutData
	SignedIn bool
}

type teamsData struct {
	layoutData
	PageID        string
	Mounted       bool
	Teams         []teams.Team
	Form          teamlist.FormState
	MinNameLength int
}

// render executes into a buffer first so a template failure never leaves a half-written page.
func (rd *renderer) render(w http.ResponseWriter, status int, page string, data any, logger *slog.Logger) {
	tmpl, ok := rd.pages[page]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		if logger != nil {
			logger.Error("failed to render page", "page", page, "error", err)
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
