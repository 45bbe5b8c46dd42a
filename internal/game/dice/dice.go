package dice

import (
	"math/rand"
	"time"
)

// Sides is the number of faces on the die used by duel and bonus skills.
const Sides = 6

// Source produces the random numbers the engine consumes. Draws, dice
// duels, random discards and random bonuses all go through a Source so
// tests can substitute a seeded or scripted implementation.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}

// Roll returns a uniform die roll in [1, Sides].
func Roll(src Source) int {
	return src.Intn(Sides) + 1
}

// Roller is the default Source backed by math/rand.
type Roller struct {
	rng *rand.Rand
}

// New creates a seeded Roller. The same seed always yields the same
// sequence of values.
func New(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// NewFromTime creates a Roller seeded from the current time.
func NewFromTime() *Roller {
	return New(time.Now().UnixNano())
}

// Intn returns a uniform value in [0, n).
func (r *Roller) Intn(n int) int {
	return r.rng.Intn(n)
}

// Scripted is a Source that replays a fixed sequence of values. It is
// used by tests that need exact roll outcomes. When the sequence is
// exhausted it falls back to returning 0.
type Scripted struct {
	values []int
	pos    int
}

// NewScripted creates a Scripted source returning the given values in order.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

// Intn returns the next scripted value clamped into [0, n).
func (s *Scripted) Intn(n int) int {
	if s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos]
	s.pos++
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
