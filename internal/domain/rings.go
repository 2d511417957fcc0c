package domain

// RingCount returns how many rings p owns: empty cells fully surrounded by
// eight of p's stones. Candidates whose footprint leaves the grid are skipped.
func RingCount(v View, p Player) int {
	n := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if isRing(v, Coord{Row: r, Col: c}, p) {
				n++
			}
		}
	}
	return n
}

// HasRing reports whether p owns at least one ring.
func HasRing(v View, p Player) bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if isRing(v, Coord{Row: r, Col: c}, p) {
				return true
			}
		}
	}
	return false
}

func isRing(v View, center Coord, p Player) bool {
	f := NewFootprint(center)
	if !f.InBounds() {
		return false
	}
	cells, err := footprintCells(v, f)
	if err != nil || cells[IdxCenter] != Empty {
		return false
	}
	for _, cell := range cells[IdxCenter+1:] {
		if cell != p.Stone() {
			return false
		}
	}
	return true
}
