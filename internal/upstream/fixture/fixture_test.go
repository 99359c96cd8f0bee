package fixture

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/league-admin/internal/upstream"
)

func TestFixtureListCreateDelete(t *testing.T) {
	api := New()
	ctx := context.Background()

	initial, err := api.ListTeams(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, initial, 2)

	created, err := api.CreateTeam(ctx, "tok", "Santos Futebol")
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.Team.ID)
	assert.NotEmpty(t, created.Message)

	msg, err := api.DeleteTeam(ctx, "tok", 1)
	require.NoError(t, err)
	assert.NotEmpty(t, msg)

	after, err := api.ListTeams(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, int64(2), after[0].ID)
	assert.Equal(t, int64(3), after[1].ID)
}

func TestFixtureRejectsMissingToken(t *testing.T) {
	_, err := New().ListTeams(context.Background(), "")

	apiErr, ok := upstream.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestFixtureDeleteUnknownIsNotFound(t *testing.T) {
	_, err := New().DeleteTeam(context.Background(), "tok", 99)

	apiErr, ok := upstream.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestFixtureRejectsShortName(t *testing.T) {
	_, err := New().CreateTeam(context.Background(), "tok", "short")

	apiErr, ok := upstream.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestFixtureListReturnsCopy(t *testing.T) {
	api := New()
	list, err := api.ListTeams(context.Background(), "tok")
	require.NoError(t, err)
	list[0].Name = "mutated"

	again, err := api.ListTeams(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Corinthians", again[0].Name)
}
