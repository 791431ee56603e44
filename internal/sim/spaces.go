package sim

import (
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// AvailableSpaces yields every cell of the grid, in row-major order, that is
// not listed in occupied. The scan is lazy and visits Rows*Cols cells.
func AvailableSpaces(confines Confines, occupied []Position) iter.Seq[Position] {
	taken := mapset.New[Position]()
	for _, p := range occupied {
		taken.Put(p)
	}

	return func(yield func(Position) bool) {
		total := confines.Cells()
		for offset := 0; offset < total; offset++ {
			p := Position{Row: offset / confines.Cols, Col: offset % confines.Cols}
			if taken.Has(p) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}
