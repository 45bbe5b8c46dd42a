package game

// Player owns the three card zones, the per-round bonus score, the
// round-win counter and the previous-round outcome flag read by
// reactive skills. A player persists across all rounds of a match.
type Player struct {
	Name string

	Hand        *Zone
	Battlefield *Zone
	Isolated    *Zone

	// Bonus is the per-round score adjustment applied by explicit
	// skills (victor's spoils, consolation). It is cleared together
	// with the board zones when the round resolves; board points are
	// never accumulated here.
	Bonus int

	// Wins counts rounds won. This is the only representation of the
	// fact — the match manager queries players rather than keeping a
	// parallel map.
	Wins int

	// WonPreviousRound is set by round resolution and read by skills
	// that react to the prior round's outcome.
	WonPreviousRound bool
}

// NewPlayer creates a player with empty zones and zeroed counters.
func NewPlayer(name string) *Player {
	return &Player{
		Name:        name,
		Hand:        NewZone(),
		Battlefield: NewZone(),
		Isolated:    NewZone(),
	}
}

// RoundScore is the player's score for the round in progress: the sum
// of battlefield and isolated card points plus the skill bonus. It is
// recomputed from zone contents on every call.
func (p *Player) RoundScore() int {
	return p.Battlefield.Points() + p.Isolated.Points() + p.Bonus
}

// ResetBoard clears the battlefield and isolated zones and the round
// bonus. The hand is untouched; it persists across rounds.
func (p *Player) ResetBoard() {
	p.Battlefield.Clear()
	p.Isolated.Clear()
	p.Bonus = 0
}

// ResetAll returns the player to match-setup state: all zones emptied,
// win counter and previous-round flag zeroed.
func (p *Player) ResetAll() {
	p.ResetBoard()
	p.Hand.Clear()
	p.Wins = 0
	p.WonPreviousRound = false
}
