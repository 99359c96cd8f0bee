// Package fixture serves an in-memory league API for local runs and tests.
package fixture

import (
	"context"
	"net/http"
	"sync"

	"github.com/preston-bernstein/league-admin/internal/domain/teams"
	"github.com/preston-bernstein/league-admin/internal/upstream"
)

var _ upstream.TeamAPI = (*API)(nil)

// API is a deterministic, in-memory stand-in for the league API.
type API struct {
	mu     sync.Mutex
	teams  []teams.Record
	nextID int64
}

// New creates a fixture API seeded with a couple of example teams.
func New() *API {
	points, goals := 10, 20
	return &API{
		teams: []teams.Record{
			{ID: 1, Name: "Corinthians", Points: &points, ScoredGoals: &goals},
			{ID: 2, Name: "Palmeiras FC"},
		},
		nextID: 3,
	}
}

// ListTeams returns a copy of the stored teams.
func (a *API) ListTeams(ctx context.Context, token string) ([]teams.Record, error) {
	if err := authorize(ctx, upstream.OpList, token); err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]teams.Record, len(a.teams))
	copy(out, a.teams)
	return out, nil
}

// CreateTeam stores a new team with no statistics.
func (a *API) CreateTeam(ctx context.Context, token, name string) (upstream.Created, error) {
	if err := authorize(ctx, upstream.OpCreate, token); err != nil {
		return upstream.Created{}, err
	}
	if teams.ValidateName(name) != nil {
		return upstream.Created{}, &upstream.APIError{Operation: upstream.OpCreate, StatusCode: http.StatusBadRequest, Message: teams.NameTooShortMessage}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	rec := teams.Record{ID: a.nextID, Name: name}
	a.nextID++
	a.teams = append(a.teams, rec)
	return upstream.Created{Team: rec, Message: "Team created successfully!"}, nil
}

// DeleteTeam removes a team by id.
func (a *API) DeleteTeam(ctx context.Context, token string, id int64) (string, error) {
	if err := authorize(ctx, upstream.OpDelete, token); err != nil {
		return "", err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, t := range a.teams {
		if t.ID == id {
			a.teams = append(a.teams[:i], a.teams[i+1:]...)
			return "Team deleted successfully!", nil
		}
	}
	return "", &upstream.APIError{Operation: upstream.OpDelete, StatusCode: http.StatusNotFound, Message: "team not found"}
}

func authorize(ctx context.Context, op, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if token == "" {
		return &upstream.APIError{Operation: op, StatusCode: http.StatusUnauthorized, Message: "missing token"}
	}
	return nil
}
