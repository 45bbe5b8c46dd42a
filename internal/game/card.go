package game

import (
	"fmt"

	"github.com/google/uuid"
)

// TargetingSummary is the card-level aggregation of its skills'
// targeting requirements, computed once at construction. The UI reads
// it to decide which selection flow to run before building the action.
type TargetingSummary struct {
	RequiresCardTarget   bool
	RequiresPlayerTarget bool
	CardZone             TargetZone
	Side                 TargetSide
}

// Card is a named playable entity with a point value and zero or more
// skills. Points are mutable during play; name, isolation flag and
// skill list are fixed at creation. A card instance belongs to exactly
// one zone of exactly one player after being drawn.
type Card struct {
	// ID is the unique instance identifier; Number is the catalog
	// entry the instance was created from. Name is stable but not
	// unique across instances.
	ID     string
	Number int
	Name   string

	Points   int
	Isolated bool
	Skills   []Skill

	targeting TargetingSummary
}

// newCard builds a card instance and caches its targeting summary by
// scanning the skill list.
func newCard(number int, name string, points int, isolated bool, skills []Skill) *Card {
	c := &Card{
		ID:       uuid.New().String(),
		Number:   number,
		Name:     name,
		Points:   points,
		Isolated: isolated,
		Skills:   skills,
	}
	for _, skill := range skills {
		spec := skill.Spec()
		if spec.NeedsCardTarget() {
			c.targeting.RequiresCardTarget = true
			c.targeting.CardZone = spec.Zone
			c.targeting.Side = spec.Side
		}
		if spec.NeedsPlayerTarget() {
			c.targeting.RequiresPlayerTarget = true
			if !c.targeting.RequiresCardTarget {
				c.targeting.Side = spec.Side
			}
		}
	}
	return c
}

// Targeting returns the cached targeting summary.
func (c *Card) Targeting() TargetingSummary {
	return c.targeting
}

// Play resolves the card for the given action:
//
//  1. removes the card from the owner's hand if present (the caller
//     must guarantee it was in hand),
//  2. moves it onto the owner's battlefield, or into the isolated zone
//     for isolated cards,
//  3. applies each skill in declaration order. Skill order is part of
//     card design: a later skill sees the point total as mutated by
//     earlier ones.
//
// Contract violations from skills propagate to the caller; expected
// absences are logged by the skills themselves and do not surface here.
func (c *Card) Play(action *PlayAction) error {
	if action == nil || action.Owner == nil || action.Board == nil {
		return fmt.Errorf("play %s: incomplete play action", c.Name)
	}
	if action.Card != c {
		return fmt.Errorf("play %s: action is bound to a different card", c.Name)
	}

	owner := action.Owner
	owner.Hand.Remove(c)

	if c.Isolated {
		owner.Isolated.Add(c)
		action.logf("%s plays %s into the isolated zone", owner.Name, c.Name)
	} else {
		owner.Battlefield.Add(c)
		action.logf("%s plays %s onto the battlefield", owner.Name, c.Name)
	}

	for _, skill := range c.Skills {
		if err := skill.Apply(action); err != nil {
			return fmt.Errorf("play %s: skill %s: %w", c.Name, skill.Name(), err)
		}
	}
	return nil
}

func (c *Card) String() string {
	return fmt.Sprintf("Card(%s, points=%d, isolated=%t)", c.Name, c.Points, c.Isolated)
}
