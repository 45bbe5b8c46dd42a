package game

import "fmt"

// ZoneKind identifies one of the three per-player card zones.
type ZoneKind int

const (
	ZoneHand ZoneKind = iota
	ZoneBattlefield
	ZoneIsolated
)

var zoneNames = map[ZoneKind]string{
	ZoneHand:        "HAND",
	ZoneBattlefield: "BATTLEFIELD",
	ZoneIsolated:    "ISOLATED",
}

func (k ZoneKind) String() string {
	if name, ok := zoneNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ZONE_%d", int(k))
}

// Zone is an ordered sequence of cards; insertion order is play order.
// A card belongs to at most one zone system-wide at any time — movement
// between zones is always remove-then-add.
type Zone struct {
	cards []*Card
}

// NewZone creates an empty zone.
func NewZone() *Zone {
	return &Zone{cards: make([]*Card, 0)}
}

// Add appends a card to the zone.
func (z *Zone) Add(c *Card) {
	z.cards = append(z.cards, c)
}

// Remove removes the card from the zone, preserving order of the rest.
// Returns false if the card is not in the zone.
func (z *Zone) Remove(c *Card) bool {
	for i, existing := range z.cards {
		if existing == c {
			z.cards = append(z.cards[:i], z.cards[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt removes and returns the card at the given index.
func (z *Zone) RemoveAt(i int) *Card {
	c := z.cards[i]
	z.cards = append(z.cards[:i], z.cards[i+1:]...)
	return c
}

// Contains reports whether the card is in the zone.
func (z *Zone) Contains(c *Card) bool {
	for _, existing := range z.cards {
		if existing == c {
			return true
		}
	}
	return false
}

// Cards returns a copy of the zone's contents in order.
func (z *Zone) Cards() []*Card {
	out := make([]*Card, len(z.cards))
	copy(out, z.cards)
	return out
}

// At returns the card at the given index.
func (z *Zone) At(i int) *Card {
	return z.cards[i]
}

// Len returns the number of cards in the zone.
func (z *Zone) Len() int {
	return len(z.cards)
}

// Clear removes all cards from the zone.
func (z *Zone) Clear() {
	z.cards = z.cards[:0]
}

// Points returns the sum of the point values of all cards in the zone.
func (z *Zone) Points() int {
	total := 0
	for _, c := range z.cards {
		total += c.Points
	}
	return total
}

// FindByID returns the card with the given instance ID, or nil.
func (z *Zone) FindByID(id string) *Card {
	for _, c := range z.cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}
