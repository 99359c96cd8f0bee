package teamlist

import "github.com/preston-bernstein/league-admin/internal/domain/teams"

// FormState is the create-team form as last rendered.
type FormState struct {
	Name  string
	Error string
}

// Page is the local state behind one rendered team page. It owns the displayed
// list once the initial load has happened; the API is never re-polled.
type Page struct {
	ID      string
	Owner   string
	Teams   []teams.Team
	Form    FormState
	mounted bool
}

// NewPage builds an unmounted page for the given owner token and initial teams.
func NewPage(id, owner string, initial []teams.Team) Page {
	list := make([]teams.Team, len(initial))
	copy(list, initial)
	return Page{ID: id, Owner: owner, Teams: list}
}

// Mount flips the client-side render guard. Calling it again has no effect.
func (p *Page) Mount() {
	p.mounted = true
}

// Mounted reports whether the page is past its first render pass.
func (p Page) Mounted() bool {
	return p.mounted
}

// Clone returns a copy that shares no backing storage with p.
func (p Page) Clone() Page {
	out := p
	out.Teams = make([]teams.Team, len(p.Teams))
	copy(out.Teams, p.Teams)
	return out
}

// Append adds the team after existing entries.
func (p *Page) Append(team teams.Team) {
	p.Teams = append(p.Teams, team)
}

// Remove drops every team with the given id, keeping the others in order.
// It returns how many entries were removed.
func (p *Page) Remove(id int64) int {
	kept := make([]teams.Team, 0, len(p.Teams))
	for _, t := range p.Teams {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(p.Teams) - len(kept)
	p.Teams = kept
	return removed
}
