package game

// PlayAction is the context object threaded through one effect
// resolution pass. Owner, Card, Board and Manager are fixed at
// construction; the target lists are populated by the caller (the UI
// collects all clicks first) before Card.Play is invoked — the engine
// never prompts mid-resolution.
type PlayAction struct {
	Owner   *Player
	Card    *Card
	Board   *Board
	Manager *MatchManager

	TargetCards   []*Card
	TargetPlayers []*Player
}

// NewPlayAction binds the fixed fields of a play action. Targets are
// added afterwards with AddTarget and AddEnemy.
func NewPlayAction(owner *Player, card *Card, board *Board, manager *MatchManager) *PlayAction {
	return &PlayAction{
		Owner:   owner,
		Card:    card,
		Board:   board,
		Manager: manager,
	}
}

// AddTarget appends a card target.
func (a *PlayAction) AddTarget(c *Card) {
	a.TargetCards = append(a.TargetCards, c)
}

// AddEnemy appends a player target.
func (a *PlayAction) AddEnemy(p *Player) {
	a.TargetPlayers = append(a.TargetPlayers, p)
}

// ClearTargets empties both target lists, for callers that reuse the
// collection flow after a cancelled selection.
func (a *PlayAction) ClearTargets() {
	a.TargetCards = a.TargetCards[:0]
	a.TargetPlayers = a.TargetPlayers[:0]
}

// logf emits a game log line through the manager when one is attached.
func (a *PlayAction) logf(format string, args ...interface{}) {
	if a.Manager != nil {
		a.Manager.Logf(format, args...)
	}
}
