package game

import "fmt"

// TargetSide constrains whose zone a card target may come from.
type TargetSide int

const (
	SideSelf TargetSide = iota
	SideOther
	SideAny
)

var sideNames = map[TargetSide]string{
	SideSelf:  "SELF",
	SideOther: "OTHER",
	SideAny:   "ANY",
}

func (s TargetSide) String() string {
	if name, ok := sideNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SIDE_%d", int(s))
}

// TargetZone identifies which zone a card target must reside in.
// Isolated cards can never be targeted.
type TargetZone int

const (
	TargetZoneNone TargetZone = iota
	TargetZoneHand
	TargetZoneBattlefield
)

var targetZoneNames = map[TargetZone]string{
	TargetZoneNone:        "NONE",
	TargetZoneHand:        "HAND",
	TargetZoneBattlefield: "BATTLEFIELD",
}

func (z TargetZone) String() string {
	if name, ok := targetZoneNames[z]; ok {
		return name
	}
	return fmt.Sprintf("TARGET_ZONE_%d", int(z))
}

// TargetSpec declares a skill's targeting requirements. The UI
// collaborator collects the declared number of targets before the
// engine ever applies the skill; the validation helpers re-check.
type TargetSpec struct {
	// CardTargets is the minimum number of card targets required.
	CardTargets int
	// PlayerTargets is the minimum number of player targets required.
	PlayerTargets int
	// Side constrains which player's zone a card target may come from.
	Side TargetSide
	// Zone is the zone a card target must reside in.
	Zone TargetZone
}

// NeedsCardTarget reports whether the skill requires at least one card target.
func (s TargetSpec) NeedsCardTarget() bool {
	return s.CardTargets > 0
}

// NeedsPlayerTarget reports whether the skill requires at least one player target.
func (s TargetSpec) NeedsPlayerTarget() bool {
	return s.PlayerTargets > 0
}

// Skill is a unit of game-logic behavior attached to a card and
// triggered when the card is played. Apply is the only behavior method;
// it receives the full play context and may mutate card points, zones,
// hands and bonus scores, or draw new cards through the manager.
type Skill interface {
	// Name returns the display name used in log lines.
	Name() string
	// Spec returns the skill's declared targeting requirements.
	Spec() TargetSpec
	// Apply resolves the skill against the given play action.
	Apply(action *PlayAction) error
}

// cardTargets validates the action's card targets against the spec and
// returns them. Fails with ErrInsufficientTargets without mutating any
// state — a violation means the caller skipped target collection.
func cardTargets(skill Skill, action *PlayAction) ([]*Card, error) {
	spec := skill.Spec()
	if spec.CardTargets == 0 {
		return nil, nil
	}
	if len(action.TargetCards) < spec.CardTargets {
		return nil, fmt.Errorf("%s needs %d card target(s), got %d: %w",
			skill.Name(), spec.CardTargets, len(action.TargetCards), ErrInsufficientTargets)
	}
	return action.TargetCards, nil
}

// playerTargets validates the action's player targets against the spec
// and returns them.
func playerTargets(skill Skill, action *PlayAction) ([]*Player, error) {
	spec := skill.Spec()
	if spec.PlayerTargets == 0 {
		return nil, nil
	}
	if len(action.TargetPlayers) < spec.PlayerTargets {
		return nil, fmt.Errorf("%s needs %d player target(s), got %d: %w",
			skill.Name(), spec.PlayerTargets, len(action.TargetPlayers), ErrInsufficientTargets)
	}
	return action.TargetPlayers, nil
}
