package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintgame/quint-server-go/internal/game/dice"
)

func TestRally_CountsBattlefieldIncludingSelf(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")
	h.PlaceOnBattlefield(alice, 2)
	h.PlaceOnBattlefield(alice, 3)

	card := h.GiveCard(alice, 1) // Rallying Vanguard, 1 point
	require.NoError(t, card.Play(h.NewAction(alice, card)))

	// Two cards already down plus itself.
	assert.Equal(t, 1+3, card.Points)
}

func TestLoneWolf_BonusOnlyWhenAlone(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")

	alone := h.GiveCard(alice, 2) // Lone Wolf, -1 point
	require.NoError(t, alone.Play(h.NewAction(alice, alone)))
	assert.Equal(t, -1+5, alone.Points)

	// A second lone wolf arrives on a crowded battlefield: no bonus.
	crowded := h.GiveCard(alice, 2)
	require.NoError(t, crowded.Play(h.NewAction(alice, crowded)))
	assert.Equal(t, -1, crowded.Points)
}

func TestAssist_BoostsTargetOnAnySide(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice, bob := h.Player("Alice"), h.Player("Bob")
	target := h.PlaceOnBattlefield(bob, 7) // 5 points

	card := h.GiveCard(alice, 3)
	action := h.NewAction(alice, card)
	action.AddTarget(target)
	require.NoError(t, card.Play(action))

	assert.Equal(t, 7, target.Points)
}

func TestAssist_MissingTargetIsNoOp(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")

	stray, err := NewCard(7)
	require.NoError(t, err)

	card := h.GiveCard(alice, 3)
	action := h.NewAction(alice, card)
	action.AddTarget(stray)
	require.NoError(t, card.Play(action))

	assert.Equal(t, 5, stray.Points, "card outside every battlefield must not change")
}

func TestVictorsSpoils_RequiresPreviousRoundWin(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")

	card := h.GiveCard(alice, 4)
	require.NoError(t, card.Play(h.NewAction(alice, card)))
	assert.Equal(t, 0, alice.Bonus)

	alice.WonPreviousRound = true
	again := h.GiveCard(alice, 4)
	require.NoError(t, again.Play(h.NewAction(alice, again)))
	assert.Equal(t, 3, alice.Bonus)
}

func TestConsolation_AppliesOnlyAfterLoss(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")

	card := h.GiveCard(alice, 5)
	require.NoError(t, card.Play(h.NewAction(alice, card)))
	assert.Equal(t, 3, alice.Bonus)

	alice.WonPreviousRound = true
	again := h.GiveCard(alice, 5)
	require.NoError(t, again.Play(h.NewAction(alice, again)))
	assert.Equal(t, 3, alice.Bonus)
}

func TestDraw_AddsOneCardToHand(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")

	card := h.GiveCard(alice, 6)
	require.NoError(t, card.Play(h.NewAction(alice, card)))

	// The played card left the hand and one drawn card replaced it.
	assert.Equal(t, 1, alice.Hand.Len())
}

func TestDraw_WithoutManagerFails(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")

	card := h.GiveCard(alice, 6)
	action := &PlayAction{Owner: alice, Card: card, Board: h.Manager.Board()}
	err := NewDraw().Apply(action)
	assert.ErrorIs(t, err, ErrNoManager)
}

func TestPrecisionStrike_DestroysOpposingCard(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice, bob := h.Player("Alice"), h.Player("Bob")
	victim := h.PlaceOnBattlefield(bob, 1)

	card := h.GiveCard(alice, 7)
	action := h.NewAction(alice, card)
	action.AddTarget(victim)
	require.NoError(t, card.Play(action))

	assert.False(t, bob.Battlefield.Contains(victim))
	assert.Equal(t, 0, bob.Battlefield.Len())
}

func TestPrecisionStrike_MissingTargetIsNoOp(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice, bob := h.Player("Alice"), h.Player("Bob")
	bystander := h.PlaceOnBattlefield(bob, 1)

	ghost, err := NewCard(1)
	require.NoError(t, err)

	card := h.GiveCard(alice, 7)
	action := h.NewAction(alice, card)
	action.AddTarget(ghost)
	require.NoError(t, card.Play(action))

	assert.True(t, bob.Battlefield.Contains(bystander))
}

func TestKinship_CountsSameNameExcludingSelf(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")
	h.PlaceOnBattlefield(alice, 8)
	h.PlaceOnBattlefield(alice, 8)
	h.PlaceOnBattlefield(alice, 1) // different name, must not count

	card := h.GiveCard(alice, 8) // Kin Guard, 4 points
	require.NoError(t, card.Play(h.NewAction(alice, card)))

	assert.Equal(t, 4+3*2, card.Points)
}

func TestDiceDuel_OwnerWins(t *testing.T) {
	// Intn sequence: owner roll 6, target roll 2, drawn card number,
	// discard pick.
	src := dice.NewScripted(5, 1, 0, 0)
	h := NewSkillTestBed(t, src, "Alice", "Bob")
	alice, bob := h.Player("Alice"), h.Player("Bob")
	doomed := h.GiveCard(bob, 3)

	card := h.GiveCard(alice, 9)
	action := h.NewAction(alice, card)
	action.AddEnemy(bob)
	require.NoError(t, card.Play(action))

	// Alice played her only card and drew one back.
	assert.Equal(t, 1, alice.Hand.Len())
	assert.False(t, bob.Hand.Contains(doomed))
	assert.Equal(t, 0, bob.Hand.Len())
}

func TestDiceDuel_OwnerWinsAgainstEmptyHand(t *testing.T) {
	src := dice.NewScripted(5, 1, 0)
	h := NewSkillTestBed(t, src, "Alice", "Bob")
	alice, bob := h.Player("Alice"), h.Player("Bob")

	card := h.GiveCard(alice, 9)
	action := h.NewAction(alice, card)
	action.AddEnemy(bob)
	require.NoError(t, card.Play(action))

	// The draw still happens; there is just nothing to discard.
	assert.Equal(t, 1, alice.Hand.Len())
	assert.Equal(t, 0, bob.Hand.Len())
}

func TestDiceDuel_TargetWins(t *testing.T) {
	src := dice.NewScripted(0, 4, 0, 0)
	h := NewSkillTestBed(t, src, "Alice", "Bob")
	alice, bob := h.Player("Alice"), h.Player("Bob")
	spare := h.GiveCard(alice, 3)

	card := h.GiveCard(alice, 9)
	action := h.NewAction(alice, card)
	action.AddEnemy(bob)
	require.NoError(t, card.Play(action))

	assert.Equal(t, 1, bob.Hand.Len(), "winning target draws a card")
	assert.False(t, alice.Hand.Contains(spare), "losing owner discards")
	assert.Equal(t, 0, alice.Hand.Len())
}

func TestDiceDuel_TieDoesNothing(t *testing.T) {
	src := dice.NewScripted(2, 2)
	h := NewSkillTestBed(t, src, "Alice", "Bob")
	alice, bob := h.Player("Alice"), h.Player("Bob")
	kept := h.GiveCard(bob, 3)

	card := h.GiveCard(alice, 9)
	action := h.NewAction(alice, card)
	action.AddEnemy(bob)
	require.NoError(t, card.Play(action))

	assert.Equal(t, 0, alice.Hand.Len())
	assert.True(t, bob.Hand.Contains(kept))
}

func TestWildSurge_AddsScriptedRoll(t *testing.T) {
	src := dice.NewScripted(3) // roll of 4
	h := NewSkillTestBed(t, src, "Alice", "Bob")
	alice := h.Player("Alice")

	card := h.GiveCard(alice, 10) // Wild Mystic, 2 points
	require.NoError(t, card.Play(h.NewAction(alice, card)))

	assert.Equal(t, 2+4, card.Points)
}

func TestMulligan_RedrawsWholeHand(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(9), "Alice", "Bob")
	alice := h.Player("Alice")
	old := []*Card{h.GiveCard(alice, 1), h.GiveCard(alice, 2), h.GiveCard(alice, 3)}

	card, err := NewCard(11)
	require.NoError(t, err)
	alice.Battlefield.Add(card)
	require.NoError(t, NewMulligan().Apply(h.NewAction(alice, card)))

	assert.Equal(t, 3, alice.Hand.Len(), "replacement batch matches discarded size")
	for _, c := range old {
		assert.False(t, alice.Hand.Contains(c))
	}
}

func TestMulligan_EmptyHandIsNoOp(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(9), "Alice", "Bob")
	alice := h.Player("Alice")

	card, err := NewCard(11)
	require.NoError(t, err)
	alice.Battlefield.Add(card)
	require.NoError(t, NewMulligan().Apply(h.NewAction(alice, card)))
	assert.Equal(t, 0, alice.Hand.Len())
}

func TestDoubleDraw_DrawsTwo(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")

	card := h.GiveCard(alice, 12)
	require.NoError(t, card.Play(h.NewAction(alice, card)))

	assert.Equal(t, 2, alice.Hand.Len())
}

func TestDoublingStrike_DoublesTargetPoints(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")
	target := h.PlaceOnBattlefield(alice, 7) // 5 points

	card := h.GiveCard(alice, 13)
	action := h.NewAction(alice, card)
	action.AddTarget(target)
	require.NoError(t, card.Play(action))

	assert.Equal(t, 10, target.Points)
}

func TestFullGrip_CapsAtFive(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")
	for i := 0; i < 7; i++ {
		h.GiveCard(alice, 1)
	}

	card := h.GiveCard(alice, 14) // Hoarder, 2 points; hand holds 7 others
	require.NoError(t, card.Play(h.NewAction(alice, card)))

	assert.Equal(t, 2+5, card.Points)
}

func TestFullGrip_SmallHand(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")
	h.GiveCard(alice, 1)
	h.GiveCard(alice, 2)

	card := h.GiveCard(alice, 14)
	require.NoError(t, card.Play(h.NewAction(alice, card)))

	assert.Equal(t, 2+2, card.Points)
}

func TestPickpocket_StealsRandomCard(t *testing.T) {
	src := dice.NewScripted(1) // pick index 1
	h := NewSkillTestBed(t, src, "Alice", "Bob")
	alice, bob := h.Player("Alice"), h.Player("Bob")
	h.GiveCard(bob, 1)
	prize := h.GiveCard(bob, 7)

	card := h.GiveCard(alice, 15)
	action := h.NewAction(alice, card)
	action.AddEnemy(bob)
	require.NoError(t, card.Play(action))

	assert.True(t, alice.Hand.Contains(prize))
	assert.Equal(t, 1, bob.Hand.Len())
}

func TestPickpocket_EmptyHandIsNoOp(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice, bob := h.Player("Alice"), h.Player("Bob")

	card := h.GiveCard(alice, 15)
	action := h.NewAction(alice, card)
	action.AddEnemy(bob)
	require.NoError(t, card.Play(action))

	assert.Equal(t, 0, alice.Hand.Len())
	assert.Equal(t, 0, bob.Hand.Len())
}

func TestUnderdog_BonusOnlyWhenOutnumbered(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice, bob := h.Player("Alice"), h.Player("Bob")
	h.PlaceOnBattlefield(bob, 1)
	h.PlaceOnBattlefield(bob, 2)
	boosted := h.PlaceOnBattlefield(alice, 7) // 5 points

	card := h.GiveCard(alice, 16)
	action := h.NewAction(alice, card)
	action.AddTarget(boosted)
	action.AddEnemy(bob)
	require.NoError(t, card.Play(action))

	// Bob has 2 cards, Alice has 2 after playing: not outnumbered.
	assert.Equal(t, 5, boosted.Points)

	h.PlaceOnBattlefield(bob, 3)
	again := h.GiveCard(alice, 16)
	action = h.NewAction(alice, again)
	action.AddTarget(boosted)
	action.AddEnemy(bob)
	require.NoError(t, again.Play(action))

	// Bob now has 3 against Alice's 3... still not outnumbered.
	assert.Equal(t, 5, boosted.Points)

	h.PlaceOnBattlefield(bob, 4)
	direct := NewUnderdog()
	action = h.NewAction(alice, again)
	action.AddTarget(boosted)
	action.AddEnemy(bob)
	require.NoError(t, direct.Apply(action))
	assert.Equal(t, 8, boosted.Points)
}

func TestSeclusion_GrantsCopyInHand(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")

	card := h.GiveCard(alice, 17) // Hermit, isolated
	require.NoError(t, card.Play(h.NewAction(alice, card)))

	assert.True(t, alice.Isolated.Contains(card))
	require.Equal(t, 1, alice.Hand.Len())
	dup := alice.Hand.At(0)
	assert.Equal(t, card.Number, dup.Number)
	assert.NotEqual(t, card.ID, dup.ID)
}

func TestSeclusion_MovesMisplacedCardToIsolation(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice := h.Player("Alice")

	// A seclusion card built without the isolation flag lands on the
	// battlefield first; the skill corrects the placement.
	card := newCard(17, "Hermit", 4, false, []Skill{NewSeclusion()})
	alice.Hand.Add(card)
	require.NoError(t, card.Play(h.NewAction(alice, card)))

	assert.False(t, alice.Battlefield.Contains(card))
	assert.True(t, alice.Isolated.Contains(card))
}

func TestTargetedSkills_InsufficientTargets(t *testing.T) {
	h := NewSkillTestBed(t, dice.New(1), "Alice", "Bob")
	alice, bob := h.Player("Alice"), h.Player("Bob")
	bystander := h.PlaceOnBattlefield(bob, 7)

	skills := []Skill{
		NewAssist(),
		NewPrecisionStrike(),
		NewDiceDuel(),
		NewDoublingStrike(),
		NewPickpocket(),
		NewUnderdog(),
	}
	for _, skill := range skills {
		card := h.GiveCard(alice, 1)
		action := h.NewAction(alice, card)
		err := skill.Apply(action)
		assert.ErrorIs(t, err, ErrInsufficientTargets, "skill %s", skill.Name())
	}

	// Nothing changed while the errors fired.
	assert.Equal(t, 5, bystander.Points)
	assert.Equal(t, 1, bob.Battlefield.Len())
	assert.Equal(t, 0, bob.Hand.Len())
}
