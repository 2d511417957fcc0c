package domain

import (
	"fmt"
	"strconv"
)

// BoardSize is the number of ranks and files on the grid.
const BoardSize = 20

// Coord is a zero-based grid position. Row 0 is rank 20, Col 0 is file "a".
type Coord struct {
	Row int
	Col int
}

// ParseCoord decodes human notation such as "c3" into a grid coordinate.
func ParseCoord(s string) (Coord, error) {
	if len(s) < 2 || len(s) > 3 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	file := s[0]
	if file < 'a' || file >= 'a'+BoardSize {
		return Coord{}, fmt.Errorf("%w: bad file in %q", ErrInvalidCoordinate, s)
	}
	digits := s[1:]
	if digits[0] < '1' || digits[0] > '9' {
		// no sign, space or leading zero
		return Coord{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCoordinate, s)
	}
	rank, err := strconv.Atoi(digits)
	if err != nil || rank < 1 || rank > BoardSize {
		return Coord{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCoordinate, s)
	}
	return Coord{Row: BoardSize - rank, Col: int(file - 'a')}, nil
}

// String encodes the coordinate back to human notation. Off-grid
// coordinates are printed as a raw pair since they have no notation.
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string(rune('a'+c.Col)) + strconv.Itoa(BoardSize-c.Row)
}

// InBounds reports whether c lies on the grid.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Add returns c shifted by dr rows and dc columns.
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}
