package game

// Read-only snapshot views handed to the UI collaborator for
// rendering. The gateway marshals them as JSON frames; nothing in a
// view aliases live engine state.

// CardView describes one card instance.
type CardView struct {
	ID                   string   `json:"id"`
	Number               int      `json:"number"`
	Name                 string   `json:"name"`
	Points               int      `json:"points"`
	Isolated             bool     `json:"isolated"`
	Skills               []string `json:"skills"`
	RequiresCardTarget   bool     `json:"requires_card_target"`
	RequiresPlayerTarget bool     `json:"requires_player_target"`
	TargetZone           string   `json:"target_zone"`
	TargetSide           string   `json:"target_side"`
}

// PlayerView describes one player's zones and counters.
type PlayerView struct {
	Name             string     `json:"name"`
	Hand             []CardView `json:"hand"`
	Battlefield      []CardView `json:"battlefield"`
	Isolated         []CardView `json:"isolated"`
	RoundScore       int        `json:"round_score"`
	Bonus            int        `json:"bonus"`
	Wins             int        `json:"wins"`
	WonPreviousRound bool       `json:"won_previous_round"`
	Ended            bool       `json:"ended_turn"`
}

// MatchView is the complete renderable match state.
type MatchView struct {
	ID            string       `json:"id"`
	State         string       `json:"state"`
	Round         int          `json:"round"`
	CurrentPlayer string       `json:"current_player"`
	Winners       []string     `json:"winners,omitempty"`
	Players       []PlayerView `json:"players"`
}

// Snapshot builds a renderable copy of the current match state.
func (m *MatchManager) Snapshot() MatchView {
	view := MatchView{
		ID:    m.id,
		State: m.state.String(),
		Round: m.round,
	}
	if current := m.CurrentPlayer(); current != nil {
		view.CurrentPlayer = current.Name
	}
	if m.state == StateMatchOver {
		view.Winners = m.MatchWinners()
	}
	for _, p := range m.players {
		view.Players = append(view.Players, PlayerView{
			Name:             p.Name,
			Hand:             cardViews(p.Hand),
			Battlefield:      cardViews(p.Battlefield),
			Isolated:         cardViews(p.Isolated),
			RoundScore:       p.RoundScore(),
			Bonus:            p.Bonus,
			Wins:             p.Wins,
			WonPreviousRound: p.WonPreviousRound,
			Ended:            m.endedTurn[p.Name],
		})
	}
	return view
}

func cardViews(zone *Zone) []CardView {
	views := make([]CardView, 0, zone.Len())
	for _, c := range zone.Cards() {
		views = append(views, newCardView(c))
	}
	return views
}

func newCardView(c *Card) CardView {
	skills := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		skills = append(skills, s.Name())
	}
	t := c.Targeting()
	return CardView{
		ID:                   c.ID,
		Number:               c.Number,
		Name:                 c.Name,
		Points:               c.Points,
		Isolated:             c.Isolated,
		Skills:               skills,
		RequiresCardTarget:   t.RequiresCardTarget,
		RequiresPlayerTarget: t.RequiresPlayerTarget,
		TargetZone:           t.CardZone.String(),
		TargetSide:           t.Side.String(),
	}
}
