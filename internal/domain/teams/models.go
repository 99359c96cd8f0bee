package teams

// Team is a league team as held in local page state. Statistics are always
// concrete numbers here; see Normalize for how wire records get this shape.
type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Points      int    `json:"points"`
	ScoredGoals int    `json:"scored_goals"`
}

// Record is the wire shape returned by the league API. Statistics may be
// missing or null.
type Record struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Points      *int   `json:"points"`
	ScoredGoals *int   `json:"scored_goals"`
}

// Normalize converts a wire record into a Team, defaulting absent statistics to zero.
func Normalize(r Record) Team {
	return Team{
		ID:          r.ID,
		Name:        r.Name,
		Points:      valueOrZero(r.Points),
		ScoredGoals: valueOrZero(r.ScoredGoals),
	}
}

// NormalizeAll normalizes a collection, preserving order. A nil input yields an empty slice.
func NormalizeAll(records []Record) []Team {
	out := make([]Team, 0, len(records))
	for _, r := range records {
		out = append(out, Normalize(r))
	}
	return out
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
