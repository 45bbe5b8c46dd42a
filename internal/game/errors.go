package game

import "errors"

// Contract-violation errors. These indicate the caller (usually the UI
// gateway) failed to satisfy a precondition and are fatal to the
// operation that raised them; they are never swallowed by the engine.
var (
	// ErrUnknownCard is returned by the card factory for a catalog
	// number with no entry.
	ErrUnknownCard = errors.New("unknown card number")

	// ErrInsufficientTargets is returned when a skill is applied with
	// fewer card or player targets than it requires.
	ErrInsufficientTargets = errors.New("insufficient targets")

	// ErrUnknownZone is returned for a zone kind outside the hand,
	// battlefield and isolated zones.
	ErrUnknownZone = errors.New("unknown zone kind")

	// ErrNoManager is returned when a skill that draws or materializes
	// cards runs with a play action that carries no match manager.
	ErrNoManager = errors.New("play action has no match manager")
)
