package domain

// Player identifies a side.
type Player uint8

const (
	PlayerBlack Player = iota
	PlayerWhite
)

func (p Player) String() string {
	if p == PlayerWhite {
		return "white"
	}
	return "black"
}

// Stone returns the cell value p's stones occupy.
func (p Player) Stone() Cell {
	if p == PlayerWhite {
		return White
	}
	return Black
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == PlayerWhite {
		return PlayerBlack
	}
	return PlayerWhite
}

// Status is the lifecycle state of a game. Once it leaves InProgress it
// never changes again.
type Status uint8

const (
	InProgress Status = iota
	BlackWon
	WhiteWon
)

func (s Status) String() string {
	switch s {
	case BlackWon:
		return "BLACK_WON"
	case WhiteWon:
		return "WHITE_WON"
	default:
		return "UNFINISHED"
	}
}

// Over reports whether s is terminal.
func (s Status) Over() bool { return s != InProgress }

// Winner returns the winning side of a terminal status.
func (s Status) Winner() (Player, bool) {
	switch s {
	case BlackWon:
		return PlayerBlack, true
	case WhiteWon:
		return PlayerWhite, true
	}
	return 0, false
}

func wonBy(p Player) Status {
	if p == PlayerWhite {
		return WhiteWon
	}
	return BlackWon
}

// Game holds the current state of a Gess match. It is a plain value: copying
// a Game copies its board.
type Game struct {
	board    Board
	current  Player
	status   Status
	moves    int
	last     Move
	hasLast  bool
	resigned bool
}

// New returns a new game in the opening position with Black to move.
func New() Game {
	return Game{board: NewStandardBoard(), current: PlayerBlack}
}

// NewFromBoard starts a game from an arbitrary position with p to move.
func NewFromBoard(b Board, p Player) Game {
	return Game{board: b, current: p}
}

// MakeMove checks and plays one move for the current player. On success the
// direction travelled is returned; on error nothing about the game changes.
func (g *Game) MakeMove(from, to string) (Direction, error) {
	if g.status.Over() {
		return NoDirection, ErrGameOver
	}
	m, err := CheckMove(&g.board, g.current, from, to)
	if err != nil {
		return NoDirection, err
	}
	g.board.apply(m)
	g.moves++
	g.last, g.hasLast = m, true

	// the mover's opponent must still own a ring
	if !HasRing(&g.board, g.current.Opponent()) {
		g.status = wonBy(g.current)
		return m.Dir, nil
	}
	g.current = g.current.Opponent()
	return m.Dir, nil
}

// Resign concedes the game for the current player.
func (g *Game) Resign() error {
	if g.status.Over() {
		return ErrGameOver
	}
	g.status = wonBy(g.current.Opponent())
	g.resigned = true
	return nil
}

// Current returns the player to move.
func (g *Game) Current() Player { return g.current }

// Waiting returns the player awaiting the current move.
func (g *Game) Waiting() Player { return g.current.Opponent() }

// Status returns the game status.
func (g *Game) Status() Status { return g.status }

// Resigned reports whether the game ended by resignation.
func (g *Game) Resigned() bool { return g.resigned }

// Moves returns the number of moves played.
func (g *Game) Moves() int { return g.moves }

// LastMove returns the most recent accepted move.
func (g *Game) LastMove() (Move, bool) { return g.last, g.hasLast }

// Cell returns the contents of one cell.
func (g *Game) Cell(c Coord) (Cell, error) { return g.board.At(c) }

// Board returns a copy of the grid.
func (g *Game) Board() Board { return g.board }
