package server

import "github.com/quintgame/quint-server-go/internal/game"

// Command is an inbound frame from a UI client. Type selects the
// operation; the remaining fields are filled per operation. Target
// collection is entirely client-side: play_card arrives with every
// target already chosen.
type Command struct {
	Type string `json:"type"`

	// new_match
	Players []string `json:"players,omitempty"`

	// play_card / end_turn
	Player        string   `json:"player,omitempty"`
	CardID        string   `json:"card_id,omitempty"`
	TargetCards   []string `json:"target_cards,omitempty"`
	TargetPlayers []string `json:"target_players,omitempty"`
}

// Command types.
const (
	CmdNewMatch   = "new_match"
	CmdPlayCard   = "play_card"
	CmdEndTurn    = "end_turn"
	CmdResetMatch = "reset_match"
	CmdGetState   = "get_state"
)

// Frame is an outbound message to UI clients.
type Frame struct {
	Type  string          `json:"type"`
	State *game.MatchView `json:"state,omitempty"`
	Log   string          `json:"log,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Frame types.
const (
	FrameState = "state"
	FrameLog   = "log"
	FrameError = "error"
)
