package upstream

import (
	"context"

	"github.com/preston-bernstein/league-admin/internal/domain/teams"
)

// TeamAPI is the league API surface consumed by the team page. The token is the
// session token and is sent as a bearer credential on every call.
type TeamAPI interface {
	ListTeams(ctx context.Context, token string) ([]teams.Record, error)
	CreateTeam(ctx context.Context, token, name string) (Created, error)
	DeleteTeam(ctx context.Context, token string, id int64) (string, error)
}

// Created is the API's answer to a create call.
type Created struct {
	Team    teams.Record
	Message string
}
