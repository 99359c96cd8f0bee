package teamlist

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/preston-bernstein/league-admin/internal/domain/teams"
	"github.com/preston-bernstein/league-admin/internal/logging"
	"github.com/preston-bernstein/league-admin/internal/upstream"
)

// ErrPageNotFound is returned when a page id is unknown, expired, or owned by another session.
var ErrPageNotFound = errors.New("teamlist: page not found")

// PageStore persists page state between requests.
type PageStore interface {
	Put(page Page)
	Get(id string) (Page, bool)
	Update(id string, fn func(*Page)) (Page, bool)
}

// View is what a handler renders: a page snapshot plus the notices produced by the action.
type View struct {
	Page    Page
	Notices []Notice
	Invalid bool
}

// Controller keeps page state in step with create/delete outcomes from the league API.
type Controller struct {
	api    upstream.TeamAPI
	pages  PageStore
	logger *slog.Logger
	newID  func() string
}

// NewController wires a Controller to the API and page store.
func NewController(api upstream.TeamAPI, pages PageStore, logger *slog.Logger) *Controller {
	return &Controller{
		api:    api,
		pages:  pages,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Load fetches the initial collection for a new page. Fetch failures are logged
// and degrade to an empty list; they never fail the load.
func (c *Controller) Load(ctx context.Context, token string) Page {
	logger := logging.FromContext(ctx, c.logger)

	records, err := c.api.ListTeams(ctx, token)
	if err != nil {
		logging.Error(logger, "initial team load failed, rendering empty list", err)
		records = nil
	}

	page := NewPage(c.newID(), token, teams.NormalizeAll(records))
	c.pages.Put(page)
	logging.Debug(logger, "team page loaded",
		slog.String(logging.FieldPageID, page.ID),
		slog.Int(logging.FieldCount, len(page.Teams)),
	)
	return page.Clone()
}

// Mount flips the render guard on a stored page.
func (c *Controller) Mount(pageID, token string) (Page, error) {
	if _, err := c.owned(pageID, token); err != nil {
		return Page{}, err
	}
	page, ok := c.pages.Update(pageID, func(p *Page) { p.Mount() })
	if !ok {
		return Page{}, ErrPageNotFound
	}
	return page.Clone(), nil
}

// Create validates the name, asks the API to create the team, and appends exactly
// the record the API returns. Invalid names never reach the network.
func (c *Controller) Create(ctx context.Context, pageID, token, name string) (View, error) {
	if _, err := c.owned(pageID, token); err != nil {
		return View{}, err
	}

	if err := teams.ValidateName(name); err != nil {
		page, ok := c.pages.Update(pageID, func(p *Page) {
			p.Form = FormState{Name: name, Error: teams.NameTooShortMessage}
		})
		if !ok {
			return View{}, ErrPageNotFound
		}
		return View{Page: page.Clone(), Invalid: true}, nil
	}

	created, err := c.api.CreateTeam(ctx, token, name)
	if err != nil {
		logging.Error(logging.FromContext(ctx, c.logger), "create team failed", err, slog.String(logging.FieldPageID, pageID))
		page, ok := c.pages.Update(pageID, func(p *Page) {
			p.Form = FormState{Name: name}
		})
		if !ok {
			return View{}, ErrPageNotFound
		}
		return View{Page: page.Clone(), Notices: []Notice{errorNotice()}}, nil
	}

	page, ok := c.pages.Update(pageID, func(p *Page) {
		p.Append(teams.Normalize(created.Team))
		p.Form = FormState{}
	})
	if !ok {
		return View{}, ErrPageNotFound
	}
	return View{Page: page.Clone(), Notices: []Notice{successNotice(created.Message)}}, nil
}

// Delete asks the API to delete the team and, on success, removes it from the page.
func (c *Controller) Delete(ctx context.Context, pageID, token string, id int64) (View, error) {
	if _, err := c.owned(pageID, token); err != nil {
		return View{}, err
	}

	msg, err := c.api.DeleteTeam(ctx, token, id)
	if err != nil {
		logging.Error(logging.FromContext(ctx, c.logger), "delete team failed", err,
			slog.String(logging.FieldPageID, pageID),
			slog.Int64(logging.FieldTeamID, id),
		)
		current, ok := c.pages.Get(pageID)
		if !ok {
			return View{}, ErrPageNotFound
		}
		return View{Page: current.Clone(), Notices: []Notice{errorNotice()}}, nil
	}

	page, ok := c.pages.Update(pageID, func(p *Page) { p.Remove(id) })
	if !ok {
		return View{}, ErrPageNotFound
	}
	return View{Page: page.Clone(), Notices: []Notice{successNotice(msg)}}, nil
}

func (c *Controller) owned(pageID, token string) (Page, error) {
	page, ok := c.pages.Get(pageID)
	if !ok || page.Owner != token {
		return Page{}, ErrPageNotFound
	}
	return page, nil
}
