package teams

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaultsMissingStatistics(t *testing.T) {
	var records []Record
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":1,"name":"Corinthians","points":10,"scored_goals":20},
		{"id":2,"name":"Palmeiras FC","points":null},
		{"id":3,"name":"Santos Futebol"}
	]`), &records))

	got := NormalizeAll(records)

	assert.Equal(t, []Team{
		{ID: 1, Name: "Corinthians", Points: 10, ScoredGoals: 20},
		{ID: 2, Name: "Palmeiras FC"},
		{ID: 3, Name: "Santos Futebol"},
	}, got)
}

func TestNormalizeAllNilYieldsEmpty(t *testing.T) {
	got := NormalizeAll(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTeamEncodesSnakeCaseGoals(t *testing.T) {
	raw, err := json.Marshal(Team{ID: 7, Name: "Flamengo RJ", Points: 3, ScoredGoals: 4})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Flamengo RJ","points":3,"scored_goals":4}`, string(raw))
}
