package domain

// Footprint cell indices. The order is fixed; indices 1..8 line up with the
// compass directions they anchor.
const (
	IdxCenter = iota
	IdxNW
	IdxW
	IdxSW
	IdxS
	IdxN
	IdxNE
	IdxE
	IdxSE
)

// FootprintSize is the number of cells in a piece.
const FootprintSize = 9

// offsets holds the (row, col) offset of each footprint index from the center.
var offsets = [FootprintSize][2]int{
	IdxCenter: {0, 0},
	IdxNW:     {-1, -1},
	IdxW:      {0, -1},
	IdxSW:     {1, -1},
	IdxS:      {1, 0},
	IdxN:      {-1, 0},
	IdxNE:     {-1, 1},
	IdxE:      {0, 1},
	IdxSE:     {1, 1},
}

// Footprint is the ordered 3x3 block of cells that forms one piece.
type Footprint [FootprintSize]Coord

// NewFootprint derives the nine cells around center. Cells may fall off the
// grid near the edge; InBounds reports that.
func NewFootprint(center Coord) Footprint {
	var f Footprint
	for i, off := range offsets {
		f[i] = center.Add(off[0], off[1])
	}
	return f
}

// Center returns the middle cell.
func (f Footprint) Center() Coord { return f[IdxCenter] }

// InBounds reports whether every cell lies on the grid.
func (f Footprint) InBounds() bool {
	for _, c := range f {
		if !c.InBounds() {
			return false
		}
	}
	return true
}

// Step returns the footprint one cell further along d.
func (f Footprint) Step(d Direction) Footprint {
	dr, dc := d.Delta()
	return NewFootprint(f.Center().Add(dr, dc))
}
