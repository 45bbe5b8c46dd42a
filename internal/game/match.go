package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quintgame/quint-server-go/internal/game/dice"
)

// MatchState represents the lifecycle state of a match.
type MatchState int

const (
	StateSetup MatchState = iota
	StateRoundInProgress
	StateRoundResolving
	StateMatchOver
)

func (s MatchState) String() string {
	switch s {
	case StateSetup:
		return "SETUP"
	case StateRoundInProgress:
		return "ROUND_IN_PROGRESS"
	case StateRoundResolving:
		return "ROUND_RESOLVING"
	case StateMatchOver:
		return "MATCH_OVER"
	default:
		return "UNKNOWN"
	}
}

// Message is a game log line for the UI collaborator.
type Message struct {
	Text      string
	Timestamp time.Time
}

// NotificationHandler receives game log messages as they are emitted.
type NotificationHandler func(Message)

// Options configures a match.
type Options struct {
	// TotalRounds is the best-of-N length of the match.
	TotalRounds int
	// WinsRequired is the round-win majority that ends the match.
	WinsRequired int
	// OpeningHandSize is the number of cards dealt on round one.
	OpeningHandSize int
	// RoundDealSize is the number of cards dealt on later rounds.
	RoundDealSize int
}

// DefaultOptions returns the standard best-of-three match settings.
func DefaultOptions() Options {
	return Options{
		TotalRounds:     3,
		WinsRequired:    2,
		OpeningHandSize: 6,
		RoundDealSize:   2,
	}
}

// MatchManager owns the player list, the shared board, the round and
// turn counters and the draw source, and drives round and turn
// progression. It is the sole card-production path: every draw goes
// through DrawFor and the injected dice source.
//
// The manager is not safe for concurrent use. The engine is
// single-threaded by design — exactly one play action resolves at a
// time — so callers (the gateway) serialize access with a coarse
// per-match lock.
type MatchManager struct {
	id     string
	opts   Options
	logger *zap.Logger
	dice   dice.Source

	players []*Player
	board   *Board

	state     MatchState
	round     int
	turnIndex int
	endedTurn map[string]bool

	messages []Message
	notify   NotificationHandler
}

// NewMatchManager creates a manager in SETUP state. Zero option fields
// fall back to the defaults.
func NewMatchManager(opts Options, src dice.Source, logger *zap.Logger) *MatchManager {
	defaults := DefaultOptions()
	if opts.TotalRounds <= 0 {
		opts.TotalRounds = defaults.TotalRounds
	}
	if opts.WinsRequired <= 0 {
		opts.WinsRequired = opts.TotalRounds/2 + 1
	}
	if opts.OpeningHandSize <= 0 {
		opts.OpeningHandSize = defaults.OpeningHandSize
	}
	if opts.RoundDealSize <= 0 {
		opts.RoundDealSize = defaults.RoundDealSize
	}
	if src == nil {
		src = dice.NewFromTime()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchManager{
		id:        uuid.New().String(),
		opts:      opts,
		logger:    logger,
		dice:      src,
		state:     StateSetup,
		endedTurn: make(map[string]bool),
	}
}

// ID returns the match identifier.
func (m *MatchManager) ID() string { return m.id }

// State returns the current lifecycle state.
func (m *MatchManager) State() MatchState { return m.state }

// Round returns the current round number, starting at 1 once the first
// round has been dealt.
func (m *MatchManager) Round() int { return m.round }

// Board returns the shared board.
func (m *MatchManager) Board() *Board { return m.board }

// Players returns the player list in turn order.
func (m *MatchManager) Players() []*Player { return m.players }

// Options returns the match settings in effect.
func (m *MatchManager) Options() Options { return m.opts }

// SetNotificationHandler installs a callback invoked for every emitted
// game log message.
func (m *MatchManager) SetNotificationHandler(handler NotificationHandler) {
	m.notify = handler
}

// Messages returns the accumulated game log.
func (m *MatchManager) Messages() []Message {
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Logf appends a formatted line to the game log, mirrors it to the
// structured logger and fans it out to the notification handler.
func (m *MatchManager) Logf(format string, args ...interface{}) {
	msg := Message{Text: fmt.Sprintf(format, args...), Timestamp: time.Now()}
	m.messages = append(m.messages, msg)
	m.logger.Info(msg.Text, zap.String("match_id", m.id))
	if m.notify != nil {
		m.notify(msg)
	}
}

// StartMatch assigns the players, builds the board and deals the first
// round. Player names must be unique and at least two players are
// required.
func (m *MatchManager) StartMatch(names []string) error {
	if m.state != StateSetup {
		return fmt.Errorf("cannot start match in state %s", m.state)
	}
	if len(names) < 2 {
		return fmt.Errorf("a match needs at least 2 players, got %d", len(names))
	}
	seen := make(map[string]bool, len(names))
	players := make([]*Player, 0, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("player name must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate player name %q", name)
		}
		seen[name] = true
		players = append(players, NewPlayer(name))
	}
	m.players = players
	m.board = NewBoard(players)
	m.logger.Info("match started",
		zap.String("match_id", m.id),
		zap.Int("players", len(players)),
		zap.Int("total_rounds", m.opts.TotalRounds),
	)
	m.beginRound()
	return nil
}

// beginRound advances the round counter, deals the round's cards and
// opens turn cycling with the first player.
func (m *MatchManager) beginRound() {
	m.round++
	m.turnIndex = 0
	m.endedTurn = make(map[string]bool)
	m.state = StateRoundInProgress

	deal := m.opts.RoundDealSize
	if m.round == 1 {
		deal = m.opts.OpeningHandSize
	}
	m.Logf("round %d begins, dealing %d card(s) to every player", m.round, deal)
	for _, p := range m.players {
		for i := 0; i < deal; i++ {
			// The draw source is unbounded; DrawFor only fails on a
			// broken catalog.
			if _, err := m.DrawFor(p); err != nil {
				m.logger.Error("deal failed", zap.String("player", p.Name), zap.Error(err))
			}
		}
	}
}

// DrawFor draws a uniformly random card from the catalog into the
// player's hand. The source is unbounded: there is no deck to deplete.
func (m *MatchManager) DrawFor(p *Player) (*Card, error) {
	number := m.dice.Intn(CatalogSize()) + 1
	card, err := NewCard(number)
	if err != nil {
		return nil, fmt.Errorf("draw for %s: %w", p.Name, err)
	}
	p.Hand.Add(card)
	m.Logf("%s draws %s", p.Name, card.Name)
	return card, nil
}

// MaterializeCard creates a fresh card instance for the given catalog
// number without placing it anywhere. Skills that duplicate cards use
// it.
func (m *MatchManager) MaterializeCard(number int) (*Card, error) {
	return NewCard(number)
}

// rollDie rolls the match die; every random outcome flows through the
// injected source so tests can script it.
func (m *MatchManager) rollDie() int {
	return dice.Roll(m.dice)
}

// pick returns a uniform index in [0, n).
func (m *MatchManager) pick(n int) int {
	return m.dice.Intn(n)
}

// CurrentPlayer returns the player whose turn it is, or nil outside a
// round.
func (m *MatchManager) CurrentPlayer() *Player {
	if m.state != StateRoundInProgress || len(m.players) == 0 {
		return nil
	}
	return m.players[m.turnIndex]
}

// PlayCard resolves one card play for the named player: the card must
// be in their hand, all targets must already be collected, and the
// player must hold the turn. Playing a card passes the turn.
func (m *MatchManager) PlayCard(playerName, cardID string, targetCardIDs []string, targetPlayerNames []string) error {
	player, err := m.turnHolder(playerName)
	if err != nil {
		return err
	}
	card := player.Hand.FindByID(cardID)
	if card == nil {
		return fmt.Errorf("%s does not hold card %s", playerName, cardID)
	}

	action := NewPlayAction(player, card, m.board, m)
	for _, id := range targetCardIDs {
		target := m.board.FindCardByID(id)
		if target == nil {
			return fmt.Errorf("target card %s not found", id)
		}
		action.AddTarget(target)
	}
	for _, name := range targetPlayerNames {
		target := m.board.PlayerByName(name)
		if target == nil {
			return fmt.Errorf("target player %q not found", name)
		}
		action.AddEnemy(target)
	}

	if err := card.Play(action); err != nil {
		return err
	}
	m.advanceTurn()
	return nil
}

// EndTurn marks the named player done for the round and passes the
// turn. When every player has ended their turn the round resolves.
func (m *MatchManager) EndTurn(playerName string) error {
	player, err := m.turnHolder(playerName)
	if err != nil {
		return err
	}
	m.endedTurn[player.Name] = true
	m.Logf("%s ends their turn", player.Name)
	if len(m.endedTurn) == len(m.players) {
		m.resolveRound()
		return nil
	}
	m.advanceTurn()
	return nil
}

// turnHolder resolves the named player and checks they hold the turn.
func (m *MatchManager) turnHolder(playerName string) (*Player, error) {
	if m.state != StateRoundInProgress {
		return nil, fmt.Errorf("no round in progress (state %s)", m.state)
	}
	player := m.board.PlayerByName(playerName)
	if player == nil {
		return nil, fmt.Errorf("unknown player %q", playerName)
	}
	if current := m.players[m.turnIndex]; current != player {
		return nil, fmt.Errorf("it is %s's turn, not %s's", current.Name, playerName)
	}
	if m.endedTurn[player.Name] {
		return nil, fmt.Errorf("%s has already ended their turn", playerName)
	}
	return player, nil
}

// advanceTurn moves the turn pointer to the next player who has not
// ended their turn, wrapping round-robin.
func (m *MatchManager) advanceTurn() {
	for i := 0; i < len(m.players); i++ {
		m.turnIndex = (m.turnIndex + 1) % len(m.players)
		if !m.endedTurn[m.players[m.turnIndex].Name] {
			return
		}
	}
}

// RoundScores returns every player's current round score. The score is
// a pure function of zone contents and the round bonus, so calling it
// repeatedly without intervening mutation yields identical values.
func (m *MatchManager) RoundScores() map[string]int {
	scores := make(map[string]int, len(m.players))
	for _, p := range m.players {
		scores[p.Name] = p.RoundScore()
	}
	return scores
}

// resolveRound scores the round, records the winner(s), resets the
// board zones and either begins the next round or ends the match.
func (m *MatchManager) resolveRound() {
	m.state = StateRoundResolving

	maxScore := m.players[0].RoundScore()
	for _, p := range m.players[1:] {
		if s := p.RoundScore(); s > maxScore {
			maxScore = s
		}
	}

	var winners []string
	for _, p := range m.players {
		won := p.RoundScore() == maxScore
		p.WonPreviousRound = won
		if won {
			p.Wins++
			winners = append(winners, p.Name)
		}
	}
	if len(winners) == 1 {
		m.Logf("round %d goes to %s with %d points", m.round, winners[0], maxScore)
	} else {
		m.Logf("round %d is a tie at %d points between %v", m.round, maxScore, winners)
	}

	// Hands persist; battlefield, isolated zone and bonus are cleared.
	for _, p := range m.players {
		p.ResetBoard()
	}

	if m.leaderWins() >= m.opts.WinsRequired {
		m.state = StateMatchOver
		m.Logf("match over, winner(s): %v", m.MatchWinners())
		return
	}
	m.beginRound()
}

// leaderWins returns the highest round-win count across players.
func (m *MatchManager) leaderWins() int {
	best := 0
	for _, p := range m.players {
		if p.Wins > best {
			best = p.Wins
		}
	}
	return best
}

// MatchWinners returns the players with the most round wins. Once the
// state is MATCH_OVER this is the final result; before that it reports
// the current leaders.
func (m *MatchManager) MatchWinners() []string {
	best := m.leaderWins()
	var winners []string
	for _, p := range m.players {
		if p.Wins == best {
			winners = append(winners, p.Name)
		}
	}
	return winners
}

// ResetMatch restarts the match in place with the same players and
// settings: all zones and counters cleared, round one dealt again.
func (m *MatchManager) ResetMatch() error {
	if len(m.players) == 0 {
		return fmt.Errorf("match has no players to reset")
	}
	for _, p := range m.players {
		p.ResetAll()
	}
	m.round = 0
	m.turnIndex = 0
	m.endedTurn = make(map[string]bool)
	m.Logf("match reset, starting over")
	m.beginRound()
	return nil
}
