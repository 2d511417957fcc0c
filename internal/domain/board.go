package domain

import "fmt"

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return "E"
	}
}

// Board is the fixed 20x20 grid stored row-major, row 0 on top.
type Board [BoardSize][BoardSize]Cell

// View is read-only access to a board.
type View interface {
	At(c Coord) (Cell, error)
}

// At returns the cell at c.
func (b *Board) At(c Coord) (Cell, error) {
	if !c.InBounds() {
		return Empty, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return b[c.Row][c.Col], nil
}

// Set writes v at c.
func (b *Board) Set(c Coord, v Cell) error {
	if !c.InBounds() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	b[c.Row][c.Col] = v
	return nil
}

// Count returns how many cells hold v.
func (b *Board) Count(v Cell) int {
	n := 0
	for r := range b {
		for c := range b[r] {
			if b[r][c] == v {
				n++
			}
		}
	}
	return n
}

// standardSetup is the opening position, rank 20 first.
var standardSetup = [BoardSize]string{
	"....................", // 20
	"..W.W.WWWWWWWW.W.W..", // 19
	".WWW.W.WWWW.W.W.WWW.", // 18
	"..W.W.WWWWWWWW.W.W..", // 17
	"....................", // 16
	"....................", // 15
	"..W..W..W..W..W..W..", // 14
	"....................", // 13
	"....................", // 12
	"....................", // 11
	"....................", // 10
	"....................", // 9
	"....................", // 8
	"..B..B..B..B..B..B..", // 7
	"....................", // 6
	"....................", // 5
	"..B.B.BBBBBBBB.B.B..", // 4
	".BBB.B.BBBB.B.B.BBB.", // 3
	"..B.B.BBBBBBBB.B.B..", // 2
	"....................", // 1
}

// NewStandardBoard returns the opening position with 43 stones per side.
func NewStandardBoard() Board {
	var b Board
	for r, row := range standardSetup {
		for c := 0; c < BoardSize; c++ {
			switch row[c] {
			case 'B':
				b[r][c] = Black
			case 'W':
				b[r][c] = White
			}
		}
	}
	return b
}
