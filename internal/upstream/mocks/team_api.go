// Package mocks holds testify mocks for the upstream interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/preston-bernstein/league-admin/internal/domain/teams"
	"github.com/preston-bernstein/league-admin/internal/upstream"
)

// TeamAPI is a mock of upstream.TeamAPI.
type TeamAPI struct {
	mock.Mock
}

var _ upstream.TeamAPI = (*TeamAPI)(nil)

func (m *TeamAPI) ListTeams(ctx context.Context, token string) ([]teams.Record, error) {
	args := m.Called(ctx, token)
	records, _ := args.Get(0).([]teams.Record)
	return records, args.Error(1)
}

func (m *TeamAPI) CreateTeam(ctx context.Context, token, name string) (upstream.Created, error) {
	args := m.Called(ctx, token, name)
	created, _ := args.Get(0).(upstream.Created)
	return created, args.Error(1)
}

func (m *TeamAPI) DeleteTeam(ctx context.Context, token string, id int64) (string, error) {
	args := m.Called(ctx, token, id)
	return args.String(0), args.Error(1)
}
