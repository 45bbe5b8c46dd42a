package game

// Concrete skills. Each one declares its targeting requirements through
// Spec and mutates state only through the play action. Skills with
// optional preconditions (missing target on the battlefield, empty
// hand) log and no-op; missing required targets fail the action.

// RallySkill adds one point to the played card for every card on the
// owner's battlefield, the played card included.
type RallySkill struct{}

func NewRally() *RallySkill { return &RallySkill{} }

func (s *RallySkill) Name() string     { return "Rally" }
func (s *RallySkill) Spec() TargetSpec { return TargetSpec{Side: SideSelf, Zone: TargetZoneNone} }

func (s *RallySkill) Apply(action *PlayAction) error {
	action.Card.Points += action.Owner.Battlefield.Len()
	action.logf("[%s] %s rises to %d points", s.Name(), action.Card.Name, action.Card.Points)
	return nil
}

// LoneWolfSkill grants a fixed bonus when the played card is the only
// card on the owner's battlefield.
type LoneWolfSkill struct {
	bonus int
}

func NewLoneWolf() *LoneWolfSkill { return &LoneWolfSkill{bonus: 5} }

func (s *LoneWolfSkill) Name() string     { return "Lone Wolf" }
func (s *LoneWolfSkill) Spec() TargetSpec { return TargetSpec{Side: SideSelf, Zone: TargetZoneNone} }

func (s *LoneWolfSkill) Apply(action *PlayAction) error {
	battlefield := action.Owner.Battlefield
	if battlefield.Len() == 1 && battlefield.At(0) == action.Card {
		action.Card.Points += s.bonus
		action.logf("[%s] %s stands alone and rises to %d points", s.Name(), action.Card.Name, action.Card.Points)
	}
	return nil
}

// AssistSkill adds two points to a chosen battlefield card on any side.
type AssistSkill struct{}

func NewAssist() *AssistSkill { return &AssistSkill{} }

func (s *AssistSkill) Name() string { return "Assist" }
func (s *AssistSkill) Spec() TargetSpec {
	return TargetSpec{CardTargets: 1, Side: SideAny, Zone: TargetZoneBattlefield}
}

func (s *AssistSkill) Apply(action *PlayAction) error {
	targets, err := cardTargets(s, action)
	if err != nil {
		return err
	}
	target := targets[0]
	owner, found := action.Board.FindOwner(target, ZoneBattlefield)
	if !found {
		action.logf("[%s] %s is not on any battlefield, nothing to assist", s.Name(), target.Name)
		return nil
	}
	target.Points += 2
	action.logf("[%s] %s's %s gains 2 points, now %d", s.Name(), owner.Name, target.Name, target.Points)
	return nil
}

// VictorsSpoilsSkill grants the owner a fixed round bonus when they won
// the previous round.
type VictorsSpoilsSkill struct {
	points int
}

func NewVictorsSpoils() *VictorsSpoilsSkill { return &VictorsSpoilsSkill{points: 3} }

func (s *VictorsSpoilsSkill) Name() string     { return "Victor's Spoils" }
func (s *VictorsSpoilsSkill) Spec() TargetSpec { return TargetSpec{Side: SideSelf} }

func (s *VictorsSpoilsSkill) Apply(action *PlayAction) error {
	if !action.Owner.WonPreviousRound {
		return nil
	}
	action.Owner.Bonus += s.points
	action.logf("[%s] %s gains +%d for winning the previous round", s.Name(), action.Owner.Name, s.points)
	return nil
}

// ConsolationSkill grants the owner +3 when they did not win the
// previous round.
type ConsolationSkill struct{}

func NewConsolation() *ConsolationSkill { return &ConsolationSkill{} }

func (s *ConsolationSkill) Name() string     { return "Consolation" }
func (s *ConsolationSkill) Spec() TargetSpec { return TargetSpec{Side: SideSelf} }

func (s *ConsolationSkill) Apply(action *PlayAction) error {
	if action.Owner.WonPreviousRound {
		return nil
	}
	action.Owner.Bonus += 3
	action.logf("[%s] %s lost the previous round and gains +3", s.Name(), action.Owner.Name)
	return nil
}

// DrawSkill draws one card into the owner's hand.
type DrawSkill struct{}

func NewDraw() *DrawSkill { return &DrawSkill{} }

func (s *DrawSkill) Name() string     { return "Draw" }
func (s *DrawSkill) Spec() TargetSpec { return TargetSpec{Side: SideSelf} }

func (s *DrawSkill) Apply(action *PlayAction) error {
	if action.Manager == nil {
		return ErrNoManager
	}
	_, err := action.Manager.DrawFor(action.Owner)
	return err
}

// PrecisionStrikeSkill destroys a chosen card on an opposing
// battlefield, removing it from whichever zone holds it.
type PrecisionStrikeSkill struct{}

func NewPrecisionStrike() *PrecisionStrikeSkill { return &PrecisionStrikeSkill{} }

func (s *PrecisionStrikeSkill) Name() string { return "Precision Strike" }
func (s *PrecisionStrikeSkill) Spec() TargetSpec {
	return TargetSpec{CardTargets: 1, Side: SideOther, Zone: TargetZoneBattlefield}
}

func (s *PrecisionStrikeSkill) Apply(action *PlayAction) error {
	targets, err := cardTargets(s, action)
	if err != nil {
		return err
	}
	target := targets[0]
	owner, found := action.Board.FindOwner(target, ZoneBattlefield)
	if !found {
		action.logf("[%s] %s is not on any battlefield, nothing to destroy", s.Name(), target.Name)
		return nil
	}
	owner.Battlefield.Remove(target)
	action.logf("[%s] destroyed %s's %s", s.Name(), owner.Name, target.Name)
	return nil
}

// KinshipSkill adds points for every other card on the owner's
// battlefield sharing the played card's name.
type KinshipSkill struct {
	perMatch int
}

func NewKinship() *KinshipSkill { return &KinshipSkill{perMatch: 3} }

func (s *KinshipSkill) Name() string     { return "Kinship" }
func (s *KinshipSkill) Spec() TargetSpec { return TargetSpec{Side: SideSelf, Zone: TargetZoneNone} }

func (s *KinshipSkill) Apply(action *PlayAction) error {
	count := 0
	for _, c := range action.Owner.Battlefield.Cards() {
		if c != action.Card && c.Name == action.Card.Name {
			count++
		}
	}
	if count == 0 {
		return nil
	}
	action.Card.Points += s.perMatch * count
	action.logf("[%s] %s finds %d kin and rises to %d points", s.Name(), action.Card.Name, count, action.Card.Points)
	return nil
}

// DiceDuelSkill pits the owner against a chosen opponent: both roll a
// die; the winner draws a card and the loser discards a uniformly
// random card from hand, if any. A tie does nothing.
type DiceDuelSkill struct{}

func NewDiceDuel() *DiceDuelSkill { return &DiceDuelSkill{} }

func (s *DiceDuelSkill) Name() string { return "Dice Duel" }
func (s *DiceDuelSkill) Spec() TargetSpec {
	return TargetSpec{PlayerTargets: 1, Side: SideOther}
}

func (s *DiceDuelSkill) Apply(action *PlayAction) error {
	enemies, err := playerTargets(s, action)
	if err != nil {
		return err
	}
	if action.Manager == nil {
		return ErrNoManager
	}
	target := enemies[0]

	ownerRoll := action.Manager.rollDie()
	targetRoll := action.Manager.rollDie()
	action.logf("[%s] %s rolls %d vs %s's %d", s.Name(), action.Owner.Name, ownerRoll, target.Name, targetRoll)

	switch {
	case ownerRoll > targetRoll:
		return s.settle(action, action.Owner, target)
	case ownerRoll < targetRoll:
		return s.settle(action, target, action.Owner)
	default:
		action.logf("[%s] a tie, nothing happens", s.Name())
		return nil
	}
}

// settle rewards the duel winner with a draw and makes the loser
// discard a random card when their hand is not empty.
func (s *DiceDuelSkill) settle(action *PlayAction, winner, loser *Player) error {
	if _, err := action.Manager.DrawFor(winner); err != nil {
		return err
	}
	if loser.Hand.Len() == 0 {
		action.logf("[%s] %s has no cards to discard", s.Name(), loser.Name)
		return nil
	}
	discarded := loser.Hand.RemoveAt(action.Manager.pick(loser.Hand.Len()))
	action.logf("[%s] %s discards %s", s.Name(), loser.Name, discarded.Name)
	return nil
}

// WildSurgeSkill adds a uniform 1-6 bonus to the played card.
type WildSurgeSkill struct{}

func NewWildSurge() *WildSurgeSkill { return &WildSurgeSkill{} }

func (s *WildSurgeSkill) Name() string     { return "Wild Surge" }
func (s *WildSurgeSkill) Spec() TargetSpec { return TargetSpec{Side: SideSelf} }

func (s *WildSurgeSkill) Apply(action *PlayAction) error {
	if action.Manager == nil {
		return ErrNoManager
	}
	roll := action.Manager.rollDie()
	action.Card.Points += roll
	action.logf("[%s] %s surges +%d to %d points", s.Name(), action.Card.Name, roll, action.Card.Points)
	return nil
}

// MulliganSkill discards the owner's entire hand and draws an
// equal-size replacement batch.
type MulliganSkill struct{}

func NewMulligan() *MulliganSkill { return &MulliganSkill{} }

func (s *MulliganSkill) Name() string     { return "Mulligan" }
func (s *MulliganSkill) Spec() TargetSpec { return TargetSpec{Side: SideSelf, Zone: TargetZoneHand} }

func (s *MulliganSkill) Apply(action *PlayAction) error {
	if action.Manager == nil {
		return ErrNoManager
	}
	size := action.Owner.Hand.Len()
	if size == 0 {
		action.logf("[%s] %s has no hand to redraw", s.Name(), action.Owner.Name)
		return nil
	}
	action.Owner.Hand.Clear()
	action.logf("[%s] %s throws away %d card(s)", s.Name(), action.Owner.Name, size)
	for i := 0; i < size; i++ {
		if _, err := action.Manager.DrawFor(action.Owner); err != nil {
			return err
		}
	}
	return nil
}

// DoubleDrawSkill draws two cards into the owner's hand.
type DoubleDrawSkill struct{}

func NewDoubleDraw() *DoubleDrawSkill { return &DoubleDrawSkill{} }

func (s *DoubleDrawSkill) Name() string     { return "Double Draw" }
func (s *DoubleDrawSkill) Spec() TargetSpec { return TargetSpec{Side: SideSelf} }

func (s *DoubleDrawSkill) Apply(action *PlayAction) error {
	if action.Manager == nil {
		return ErrNoManager
	}
	for i := 0; i < 2; i++ {
		if _, err := action.Manager.DrawFor(action.Owner); err != nil {
			return err
		}
	}
	return nil
}

// DoublingStrikeSkill doubles the points of a chosen battlefield card.
type DoublingStrikeSkill struct{}

func NewDoublingStrike() *DoublingStrikeSkill { return &DoublingStrikeSkill{} }

func (s *DoublingStrikeSkill) Name() string { return "Doubling Strike" }
func (s *DoublingStrikeSkill) Spec() TargetSpec {
	return TargetSpec{CardTargets: 1, Side: SideAny, Zone: TargetZoneBattlefield}
}

func (s *DoublingStrikeSkill) Apply(action *PlayAction) error {
	targets, err := cardTargets(s, action)
	if err != nil {
		return err
	}
	target := targets[0]
	owner, found := action.Board.FindOwner(target, ZoneBattlefield)
	if !found {
		action.logf("[%s] %s is not on any battlefield, nothing to double", s.Name(), target.Name)
		return nil
	}
	target.Points *= 2
	action.logf("[%s] %s's %s doubles to %d points", s.Name(), owner.Name, target.Name, target.Points)
	return nil
}

// FullGripSkill adds the owner's hand size, capped at five, to the
// played card.
type FullGripSkill struct {
	cap int
}

func NewFullGrip() *FullGripSkill { return &FullGripSkill{cap: 5} }

func (s *FullGripSkill) Name() string     { return "Full Grip" }
func (s *FullGripSkill) Spec() TargetSpec { return TargetSpec{Side: SideSelf} }

func (s *FullGripSkill) Apply(action *PlayAction) error {
	bonus := action.Owner.Hand.Len()
	if bonus > s.cap {
		bonus = s.cap
	}
	if bonus == 0 {
		return nil
	}
	action.Card.Points += bonus
	action.logf("[%s] %s gains +%d from a full hand, now %d points", s.Name(), action.Card.Name, bonus, action.Card.Points)
	return nil
}

// PickpocketSkill moves a uniformly random card from a chosen
// opponent's hand into the owner's hand.
type PickpocketSkill struct{}

func NewPickpocket() *PickpocketSkill { return &PickpocketSkill{} }

func (s *PickpocketSkill) Name() string { return "Pickpocket" }
func (s *PickpocketSkill) Spec() TargetSpec {
	return TargetSpec{PlayerTargets: 1, Side: SideOther}
}

func (s *PickpocketSkill) Apply(action *PlayAction) error {
	enemies, err := playerTargets(s, action)
	if err != nil {
		return err
	}
	if action.Manager == nil {
		return ErrNoManager
	}
	target := enemies[0]
	if target.Hand.Len() == 0 {
		action.logf("[%s] %s's hand is empty, nothing to steal", s.Name(), target.Name)
		return nil
	}
	stolen := target.Hand.RemoveAt(action.Manager.pick(target.Hand.Len()))
	action.Owner.Hand.Add(stolen)
	action.logf("[%s] %s steals %s from %s", s.Name(), action.Owner.Name, stolen.Name, target.Name)
	return nil
}

// UnderdogSkill grants +3 to a chosen card, but only while a chosen
// enemy's battlefield outnumbers the owner's.
type UnderdogSkill struct{}

func NewUnderdog() *UnderdogSkill { return &UnderdogSkill{} }

func (s *UnderdogSkill) Name() string { return "Underdog" }
func (s *UnderdogSkill) Spec() TargetSpec {
	return TargetSpec{CardTargets: 1, PlayerTargets: 1, Side: SideAny, Zone: TargetZoneBattlefield}
}

func (s *UnderdogSkill) Apply(action *PlayAction) error {
	targets, err := cardTargets(s, action)
	if err != nil {
		return err
	}
	enemies, err := playerTargets(s, action)
	if err != nil {
		return err
	}
	target, enemy := targets[0], enemies[0]
	if enemy.Battlefield.Len() <= action.Owner.Battlefield.Len() {
		action.logf("[%s] %s is not outnumbered by %s, no bonus", s.Name(), action.Owner.Name, enemy.Name)
		return nil
	}
	target.Points += 3
	action.logf("[%s] %s gains +3 against the odds, now %d points", s.Name(), target.Name, target.Points)
	return nil
}

// SeclusionSkill makes sure the played card sits in the isolated zone
// and grants the owner a fresh copy of it in hand.
type SeclusionSkill struct{}

func NewSeclusion() *SeclusionSkill { return &SeclusionSkill{} }

func (s *SeclusionSkill) Name() string     { return "Seclusion" }
func (s *SeclusionSkill) Spec() TargetSpec { return TargetSpec{Side: SideSelf} }

func (s *SeclusionSkill) Apply(action *PlayAction) error {
	if action.Manager == nil {
		return ErrNoManager
	}
	if action.Owner.Battlefield.Remove(action.Card) {
		action.Owner.Isolated.Add(action.Card)
		action.logf("[%s] %s withdraws into the isolated zone", s.Name(), action.Card.Name)
	}
	dup, err := action.Manager.MaterializeCard(action.Card.Number)
	if err != nil {
		return err
	}
	action.Owner.Hand.Add(dup)
	action.logf("[%s] %s gains a copy of %s in hand", s.Name(), action.Owner.Name, action.Card.Name)
	return nil
}
