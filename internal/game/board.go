package game

import "fmt"

// Board is the cross-player view over all zones. It owns no cards
// itself; it resolves players and zones and answers board-wide queries
// for skills like assist and destroy.
type Board struct {
	players []*Player
}

// NewBoard creates a board over the given players.
func NewBoard(players []*Player) *Board {
	return &Board{players: players}
}

// Players returns the player list in turn order.
func (b *Board) Players() []*Player {
	return b.players
}

// PlayerByName returns the player with the given name, or nil.
func (b *Board) PlayerByName(name string) *Player {
	for _, p := range b.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// ZoneFor returns the live, mutable zone of the given kind for the
// player. Fails with ErrUnknownZone for an invalid kind.
func (b *Board) ZoneFor(p *Player, kind ZoneKind) (*Zone, error) {
	switch kind {
	case ZoneHand:
		return p.Hand, nil
	case ZoneBattlefield:
		return p.Battlefield, nil
	case ZoneIsolated:
		return p.Isolated, nil
	default:
		return nil, fmt.Errorf("zone kind %d: %w", int(kind), ErrUnknownZone)
	}
}

// ScoringCards returns every battlefield and isolated card across all
// players, in player order. Callers that need a single player's cards
// filter explicitly; the board does not filter by player.
func (b *Board) ScoringCards() []*Card {
	var cards []*Card
	for _, p := range b.players {
		cards = append(cards, p.Battlefield.Cards()...)
		cards = append(cards, p.Isolated.Cards()...)
	}
	return cards
}

// FindOwner scans all players' zones of the given kind for the card and
// returns the owning player. Not finding the card is a normal query
// outcome, not an error — destroy and assist treat it as a no-op.
func (b *Board) FindOwner(c *Card, kind ZoneKind) (*Player, bool) {
	for _, p := range b.players {
		zone, err := b.ZoneFor(p, kind)
		if err != nil {
			return nil, false
		}
		if zone.Contains(c) {
			return p, true
		}
	}
	return nil, false
}

// FindCardByID searches every zone of every player for the card with
// the given instance ID.
func (b *Board) FindCardByID(id string) *Card {
	for _, p := range b.players {
		for _, zone := range []*Zone{p.Hand, p.Battlefield, p.Isolated} {
			if c := zone.FindByID(id); c != nil {
				return c
			}
		}
	}
	return nil
}
