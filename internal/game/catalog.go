package game

import "fmt"

// cardSpec is one catalog entry: the fixed shape every instance of a
// card number is created from. Skills are constructed per instance so
// configured skills never share state across cards.
type cardSpec struct {
	name     string
	points   int
	isolated bool
	skills   func() []Skill
}

// catalog maps card numbers to their fixed definitions. Numbers are
// contiguous from 1 so the draw operation can pick uniformly over
// [1, CatalogSize()].
var catalog = map[int]cardSpec{
	1:  {name: "Rallying Vanguard", points: 1, skills: func() []Skill { return []Skill{NewRally()} }},
	2:  {name: "Lone Wolf", points: -1, skills: func() []Skill { return []Skill{NewLoneWolf()} }},
	3:  {name: "Field Medic", points: 2, skills: func() []Skill { return []Skill{NewAssist()} }},
	4:  {name: "Standard Bearer", points: 0, skills: func() []Skill { return []Skill{NewVictorsSpoils()} }},
	5:  {name: "Old Comforter", points: 0, skills: func() []Skill { return []Skill{NewConsolation()} }},
	6:  {name: "Quartermaster", points: 0, skills: func() []Skill { return []Skill{NewDraw()} }},
	7:  {name: "Assassin", points: 5, skills: func() []Skill { return []Skill{NewPrecisionStrike()} }},
	8:  {name: "Kin Guard", points: 4, skills: func() []Skill { return []Skill{NewKinship()} }},
	9:  {name: "Gambler", points: 3, skills: func() []Skill { return []Skill{NewDiceDuel()} }},
	10: {name: "Wild Mystic", points: 2, skills: func() []Skill { return []Skill{NewWildSurge()} }},
	11: {name: "Tactician", points: 1, skills: func() []Skill { return []Skill{NewMulligan()} }},
	12: {name: "Forward Scout", points: 1, skills: func() []Skill { return []Skill{NewDoubleDraw()} }},
	13: {name: "War Drummer", points: 0, skills: func() []Skill { return []Skill{NewDoublingStrike()} }},
	14: {name: "Hoarder", points: 2, skills: func() []Skill { return []Skill{NewFullGrip()} }},
	15: {name: "Cutpurse", points: 3, skills: func() []Skill { return []Skill{NewPickpocket()} }},
	16: {name: "Opportunist", points: 2, skills: func() []Skill { return []Skill{NewUnderdog()} }},
	17: {name: "Hermit", points: 4, isolated: true, skills: func() []Skill { return []Skill{NewSeclusion()} }},
}

// CatalogSize returns the number of card definitions. Valid card
// numbers are 1 through CatalogSize.
func CatalogSize() int {
	return len(catalog)
}

// NewCard materializes a fresh card instance for the given catalog
// number. Fails with ErrUnknownCard for numbers outside the catalog;
// otherwise it is deterministic apart from the generated instance ID.
func NewCard(number int) (*Card, error) {
	spec, ok := catalog[number]
	if !ok {
		return nil, fmt.Errorf("card number %d: %w", number, ErrUnknownCard)
	}
	return newCard(number, spec.name, spec.points, spec.isolated, spec.skills()), nil
}
