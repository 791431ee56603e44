package sim

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Source is the randomness used to pick spawn cells. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Apples is the set of food positions on the board.
type Apples struct {
	set mapset.Set[Position]
}

// NewApples returns a set holding the given positions.
func NewApples(positions ...Position) *Apples {
	a := &Apples{set: mapset.New[Position]()}
	for _, p := range positions {
		a.set.Put(p)
	}
	return a
}

// Contains reports whether an apple sits at p.
func (a *Apples) Contains(p Position) bool {
	return a.set.Has(p)
}

// Insert places an apple at p. Inserting an existing apple is a no-op.
func (a *Apples) Insert(p Position) {
	a.set.Put(p)
}

// Remove deletes the apple at p and reports whether one was there.
func (a *Apples) Remove(p Position) bool {
	if !a.set.Has(p) {
		return false
	}
	a.set.Remove(p)
	return true
}

// Len returns the number of apples.
func (a *Apples) Len() int {
	return a.set.Size()
}

// Empty reports whether no apples remain.
func (a *Apples) Empty() bool {
	return a.set.Size() == 0
}

// Positions returns the apples in row-major order.
func (a *Apples) Positions() []Position {
	out := make([]Position, 0, a.set.Size())
	a.set.Each(func(p Position) {
		out = append(out, p)
	})
	slices.SortFunc(out, comparePositions)
	return out
}

// Spawn places one apple on a uniformly chosen free cell and returns it. The
// second result is false when every cell is occupied.
func (a *Apples) Spawn(rng Source, confines Confines, occupied []Position) (Position, bool) {
	free := slices.Collect(AvailableSpaces(confines, occupied))
	if len(free) == 0 {
		return Position{}, false
	}
	p := free[rng.Intn(len(free))]
	a.set.Put(p)
	return p, true
}

func comparePositions(x, y Position) int {
	if c := cmp.Compare(x.Row, y.Row); c != 0 {
		return c
	}
	return cmp.Compare(x.Col, y.Col)
}
