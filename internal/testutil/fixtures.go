package testutil

import "github.com/preston-bernstein/league-admin/internal/domain/teams"

// SampleRecord returns a wire record with statistics set.
func SampleRecord(id int64, name string, points, goals int) teams.Record {
	return teams.Record{ID: id, Name: name, Points: &points, ScoredGoals: &goals}
}

// SampleTeams returns three normalized teams in a stable order.
func SampleTeams() []teams.Team {
	return []teams.Team{
		{ID: 1, Name: "Corinthians", Points: 10, ScoredGoals: 20},
		{ID: 2, Name: "Palmeiras FC", Points: 7, ScoredGoals: 9},
		{ID: 3, Name: "Santos Futebol"},
	}
}
