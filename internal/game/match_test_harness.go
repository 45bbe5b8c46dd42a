package game

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/quintgame/quint-server-go/internal/game/dice"
)

// MatchTestHarness provides utilities for setting up and running match
// scenarios in tests.
type MatchTestHarness struct {
	t       *testing.T
	Manager *MatchManager
}

// NewMatchTestHarness starts a match with the given players and a
// seeded dice source.
func NewMatchTestHarness(t *testing.T, src dice.Source, players ...string) *MatchTestHarness {
	logger := zaptest.NewLogger(t)
	mgr := NewMatchManager(DefaultOptions(), src, logger)
	if err := mgr.StartMatch(players); err != nil {
		t.Fatalf("failed to start match: %v", err)
	}
	return &MatchTestHarness{t: t, Manager: mgr}
}

// NewSkillTestBed builds a manager with players in ROUND_IN_PROGRESS
// state but with nothing dealt, so skill tests control zones and dice
// sequences exactly.
func NewSkillTestBed(t *testing.T, src dice.Source, players ...string) *MatchTestHarness {
	logger := zaptest.NewLogger(t)
	mgr := NewMatchManager(DefaultOptions(), src, logger)
	list := make([]*Player, 0, len(players))
	for _, name := range players {
		list = append(list, NewPlayer(name))
	}
	mgr.players = list
	mgr.board = NewBoard(list)
	mgr.state = StateRoundInProgress
	mgr.round = 1
	return &MatchTestHarness{t: t, Manager: mgr}
}

// Player returns the named player.
func (h *MatchTestHarness) Player(name string) *Player {
	p := h.Manager.Board().PlayerByName(name)
	if p == nil {
		h.t.Fatalf("no player named %s", name)
	}
	return p
}

// GiveCard materializes a catalog card straight into the player's hand
// without logging a draw.
func (h *MatchTestHarness) GiveCard(player *Player, number int) *Card {
	c, err := NewCard(number)
	if err != nil {
		h.t.Fatalf("failed to create card %d: %v", number, err)
	}
	player.Hand.Add(c)
	return c
}

// PlaceOnBattlefield materializes a catalog card directly onto the
// player's battlefield, bypassing play resolution.
func (h *MatchTestHarness) PlaceOnBattlefield(player *Player, number int) *Card {
	c, err := NewCard(number)
	if err != nil {
		h.t.Fatalf("failed to create card %d: %v", number, err)
	}
	player.Battlefield.Add(c)
	return c
}

// NewAction builds a play action bound to the harness manager.
func (h *MatchTestHarness) NewAction(owner *Player, card *Card) *PlayAction {
	return NewPlayAction(owner, card, h.Manager.Board(), h.Manager)
}

// EndRound makes every remaining player end their turn, driving the
// round to resolution. Resolution immediately begins the next round
// unless the match ended, so the loop watches the round counter.
func (h *MatchTestHarness) EndRound() {
	round := h.Manager.Round()
	for h.Manager.State() == StateRoundInProgress && h.Manager.Round() == round {
		current := h.Manager.CurrentPlayer()
		if current == nil {
			h.t.Fatalf("no current player while round in progress")
		}
		if err := h.Manager.EndTurn(current.Name); err != nil {
			h.t.Fatalf("end turn for %s: %v", current.Name, err)
		}
	}
}
