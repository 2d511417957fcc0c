package domain

// Direction is one of the eight compass rays a footprint can slide along.
type Direction uint8

const (
	NoDirection Direction = iota
	NorthWest
	West
	SouthWest
	South
	North
	NorthEast
	East
	SouthEast
)

// Directions lists the eight compass directions in footprint index order.
var Directions = [8]Direction{NorthWest, West, SouthWest, South, North, NorthEast, East, SouthEast}

var directionNames = [...]string{
	NoDirection: "none",
	NorthWest:   "northwest",
	West:        "west",
	SouthWest:   "southwest",
	South:       "south",
	North:       "north",
	NorthEast:   "northeast",
	East:        "east",
	SouthEast:   "southeast",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

// Delta returns the unit (row, col) step of d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case NorthWest:
		return -1, -1
	case West:
		return 0, -1
	case SouthWest:
		return 1, -1
	case South:
		return 1, 0
	case North:
		return -1, 0
	case NorthEast:
		return -1, 1
	case East:
		return 0, 1
	case SouthEast:
		return 1, 1
	}
	return 0, 0
}

// anchorIndex maps a direction to the footprint cell whose own stone allows
// movement that way.
var anchorIndex = map[Direction]int{
	NorthWest: IdxNW,
	West:      IdxW,
	SouthWest: IdxSW,
	South:     IdxS,
	North:     IdxN,
	NorthEast: IdxNE,
	East:      IdxE,
	SouthEast: IdxSE,
}

// leadingEdge lists the footprint cells newly entered after one step in a direction.
var leadingEdge = map[Direction][]int{
	North:     {IdxNW, IdxN, IdxNE},
	South:     {IdxSW, IdxS, IdxSE},
	West:      {IdxNW, IdxW, IdxSW},
	East:      {IdxNE, IdxE, IdxSE},
	NorthEast: {IdxNW, IdxN, IdxNE, IdxE, IdxSE},
	NorthWest: {IdxNW, IdxW, IdxSW, IdxN, IdxNE},
	SouthEast: {IdxSW, IdxS, IdxNE, IdxE, IdxSE},
	SouthWest: {IdxNW, IdxW, IdxSW, IdxS, IdxSE},
}

// directionBetween derives the straight-line direction from one center to
// another. Moves that are not along one of the eight rays yield NoDirection.
func directionBetween(from, to Coord) Direction {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	switch {
	case dr == 0 && dc == 0:
		// zero-length moves report ErrInvalidDirection, not ErrDirectionNotSupported
		return NoDirection
	case dr == 0 && dc < 0:
		return West
	case dr == 0 && dc > 0:
		return East
	case dc == 0 && dr < 0:
		return North
	case dc == 0 && dr > 0:
		return South
	case abs(dr) != abs(dc):
		return NoDirection
	case dr < 0 && dc < 0:
		return NorthWest
	case dr < 0 && dc > 0:
		return NorthEast
	case dr > 0 && dc < 0:
		return SouthWest
	default:
		return SouthEast
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
