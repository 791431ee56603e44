package sim

import (
	"math/rand"
	"slices"
	"testing"
)

func TestAvailableSpacesMiddleRowOccupied(t *testing.T) {
	// 3x3 grid (# = occupied)
	// . . .
	// # # #
	// . . .
	occupied := []Position{{1, 0}, {1, 1}, {1, 2}}
	got := slices.Collect(AvailableSpaces(Confines{Rows: 3, Cols: 3}, occupied))

	expected := []Position{{0, 0}, {0, 1}, {0, 2}, {2, 0}, {2, 1}, {2, 2}}
	if !equalBody(got, expected) {
		t.Errorf("AvailableSpaces() = %v, expected %v", got, expected)
	}
}

func TestAvailableSpacesStopsEarly(t *testing.T) {
	var first []Position
	for p := range AvailableSpaces(Confines{Rows: 4, Cols: 4}, nil) {
		first = append(first, p)
		if len(first) == 2 {
			break
		}
	}
	expected := []Position{{0, 0}, {0, 1}}
	if !equalBody(first, expected) {
		t.Errorf("first two spaces = %v, expected %v", first, expected)
	}
}

func TestAvailableSpacesFullBoard(t *testing.T) {
	occupied := []Position{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	got := slices.Collect(AvailableSpaces(Confines{Rows: 2, Cols: 2}, occupied))
	if len(got) != 0 {
		t.Errorf("AvailableSpaces() on a full board = %v, expected none", got)
	}
}

func TestApplesSetOperations(t *testing.T) {
	a := NewApples(Position{Row: 1, Col: 1}, Position{Row: 0, Col: 2}, Position{Row: 1, Col: 1})

	if a.Len() != 2 {
		t.Errorf("Len() = %d, expected 2 (duplicates collapse)", a.Len())
	}
	if !a.Contains(Position{Row: 0, Col: 2}) {
		t.Error("Contains((0,2)) should be true")
	}
	if a.Remove(Position{Row: 5, Col: 5}) {
		t.Error("Remove() of a missing apple should report false")
	}
	if !a.Remove(Position{Row: 1, Col: 1}) {
		t.Error("Remove((1,1)) should report true")
	}
	if a.Contains(Position{Row: 1, Col: 1}) {
		t.Error("Contains((1,1)) should be false after Remove")
	}

	a.Insert(Position{Row: 3, Col: 0})
	expected := []Position{{0, 2}, {3, 0}}
	if got := a.Positions(); !equalBody(got, expected) {
		t.Errorf("Positions() = %v, expected %v", got, expected)
	}
}

func TestSpawnNeverLandsOnOccupied(t *testing.T) {
	rng := rand.New(rand.NewSource(999))
	confines := Confines{Rows: 6, Cols: 6}
	occupied := StraightBody(Position{Row: 2, Col: 0}, Left, 6)

	for i := 0; i < 200; i++ {
		a := NewApples()
		p, ok := a.Spawn(rng, confines, occupied)
		if !ok {
			t.Fatal("Spawn() reported a full board")
		}
		if slices.Contains(occupied, p) {
			t.Fatalf("Spawn() placed an apple on the snake at %v", p)
		}
		if !confines.Contains(p) {
			t.Fatalf("Spawn() placed an apple outside the grid at %v", p)
		}
		if !a.Contains(p) {
			t.Fatalf("Spawn() did not record the apple at %v", p)
		}
	}
}

func TestSpawnCoversAllFreeCells(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	confines := Confines{Rows: 3, Cols: 3}
	occupied := []Position{{1, 0}, {1, 1}, {1, 2}}

	counts := make(map[Position]int)
	const rounds = 6000
	for i := 0; i < rounds; i++ {
		p, _ := NewApples().Spawn(rng, confines, occupied)
		counts[p]++
	}

	if len(counts) != 6 {
		t.Fatalf("Spawn() hit %d distinct cells, expected 6: %v", len(counts), counts)
	}
	// each of the six cells expects 1000 hits; allow a wide margin
	for p, n := range counts {
		if n < 800 || n > 1200 {
			t.Errorf("cell %v chosen %d times, expected about %d", p, n, rounds/6)
		}
	}
}

func TestSpawnFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := NewApples()
	_, ok := a.Spawn(rng, Confines{Rows: 1, Cols: 2}, []Position{{0, 0}, {0, 1}})
	if ok {
		t.Error("Spawn() on a full board should report false")
	}
	if !a.Empty() {
		t.Error("Spawn() on a full board should not add an apple")
	}
}
