package domain

import "fmt"

// Distance limits, counted in rows or columns between centers.
const (
	AnchoredReach   = 17
	UnanchoredReach = 3
)

// Move is a legality-checked relocation of a footprint.
type Move struct {
	From Footprint
	To   Footprint
	Dir  Direction
}

// CheckMove decides whether mover may slide the piece centered at from to the
// center at to. Checks run cheapest first and the first failure is returned;
// the board is never modified.
func CheckMove(v View, mover Player, from, to string) (Move, error) {
	start, err := ParseCoord(from)
	if err != nil {
		return Move{}, err
	}
	dest, err := ParseCoord(to)
	if err != nil {
		return Move{}, err
	}
	src := NewFootprint(start)

	cells, err := footprintCells(v, src)
	if err != nil {
		return Move{}, err
	}
	if err := checkOwnership(cells, mover); err != nil {
		return Move{}, err
	}
	if err := checkReach(cells, mover, start, dest); err != nil {
		return Move{}, err
	}

	dir := directionBetween(start, dest)
	if dir == NoDirection {
		return Move{}, fmt.Errorf("%w: %s to %s is not a straight line", ErrInvalidDirection, from, to)
	}
	if cells[anchorIndex[dir]] != mover.Stone() {
		return Move{}, fmt.Errorf("%w: no %s stone anchoring %v", ErrDirectionNotSupported, mover, dir)
	}
	if err := walkPath(v, src, dir, dest); err != nil {
		return Move{}, err
	}
	return Move{From: src, To: NewFootprint(dest), Dir: dir}, nil
}

func footprintCells(v View, f Footprint) ([FootprintSize]Cell, error) {
	var cells [FootprintSize]Cell
	for i, c := range f {
		cell, err := v.At(c)
		if err != nil {
			return cells, fmt.Errorf("footprint at %v: %w", f.Center(), err)
		}
		cells[i] = cell
	}
	return cells, nil
}

func checkOwnership(cells [FootprintSize]Cell, mover Player) error {
	own := 0
	for _, cell := range cells {
		switch cell {
		case mover.Opponent().Stone():
			return ErrContainsOpponentStone
		case mover.Stone():
			own++
		}
	}
	if own == 0 {
		return ErrEmptyFootprint
	}
	return nil
}

func checkReach(cells [FootprintSize]Cell, mover Player, start, dest Coord) error {
	allowed := UnanchoredReach
	if cells[IdxCenter] == mover.Stone() {
		allowed = AnchoredReach
	}
	dr := abs(dest.Row - start.Row)
	dc := abs(dest.Col - start.Col)
	if dr > allowed || dc > allowed {
		return fmt.Errorf("%w: %d rows, %d cols, limit %d", ErrTooFar, dr, dc, allowed)
	}
	return nil
}
