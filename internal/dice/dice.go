// Package dice provides the step-count sources for a game.
package dice

import (
	"math/rand/v2"
	"sync"
	"time"
)

// DefaultSides is the number of faces on a standard die.
const DefaultSides = 6

// Roller produces step counts in 1..6.
type Roller interface {
	Roll() int
}

// Die is a fair die backed by a seeded PCG source.
type Die struct {
	sides int
	rng   *rand.Rand
}

// NewDie returns a die with the given number of sides. A zero seed picks a
// time-based one; the same non-zero seed always yields the same rolls.
func NewDie(sides int, seed uint64) *Die {
	if sides < 1 {
		sides = DefaultSides
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Die{
		sides: sides,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll returns a uniform value in 1..sides.
func (d *Die) Roll() int {
	return d.rng.IntN(d.sides) + 1
}

// Sides returns the number of faces.
func (d *Die) Sides() int {
	return d.sides
}

// Sequence replays a fixed list of rolls, starting over when it runs out.
// It is safe for concurrent use.
type Sequence struct {
	mu    sync.Mutex
	rolls []int
	next  int
}

// NewSequence returns a Sequence over rolls. It panics if rolls is empty.
func NewSequence(rolls ...int) *Sequence {
	if len(rolls) == 0 {
		panic("dice: empty sequence")
	}
	return &Sequence{rolls: append([]int(nil), rolls...)}
}

// Roll returns the next scripted value.
func (s *Sequence) Roll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.rolls[s.next]
	s.next = (s.next + 1) % len(s.rolls)
	return v
}

// Used returns how many rolls have been taken since the last wrap.
func (s *Sequence) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
