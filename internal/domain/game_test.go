package domain

import (
	"errors"
	"testing"
)

// helper to apply a sequence of moves
func playMoves(t *testing.T, g *Game, moves [][2]string) {
	t.Helper()
	for i, m := range moves {
		if _, err := g.MakeMove(m[0], m[1]); err != nil {
			t.Fatalf("move %d (%v) failed: %v", i, m, err)
		}
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := New()
	if g.Current() != PlayerBlack || g.Waiting() != PlayerWhite {
		t.Fatalf("expected black to move first, got current=%v waiting=%v", g.Current(), g.Waiting())
	}
	if g.Status() != InProgress {
		t.Fatalf("expected game in progress, got %v", g.Status())
	}
	if g.Moves() != 0 {
		t.Fatalf("expected 0 moves, got %d", g.Moves())
	}
	if _, ok := g.LastMove(); ok {
		t.Fatalf("expected no last move")
	}
	b := g.Board()
	if n := b.Count(Black); n != 43 {
		t.Fatalf("expected 43 black stones, got %d", n)
	}
	if n := b.Count(White); n != 43 {
		t.Fatalf("expected 43 white stones, got %d", n)
	}
}

func TestFirstMoveSwapsTurn(t *testing.T) {
	g := New()
	dir, err := g.MakeMove("c3", "c6")
	if err != nil {
		t.Fatalf("c3-c6 failed: %v", err)
	}
	if dir != North {
		t.Fatalf("expected north, got %v", dir)
	}
	if g.Current() != PlayerWhite || g.Waiting() != PlayerBlack {
		t.Fatalf("expected white to move, got %v", g.Current())
	}
	if g.Status() != InProgress || g.Moves() != 1 {
		t.Fatalf("unexpected state status=%v moves=%d", g.Status(), g.Moves())
	}
}

func TestTwoMovesAlternateBack(t *testing.T) {
	g := New()
	playMoves(t, &g, [][2]string{{"c3", "c6"}, {"c15", "c12"}})
	if g.Status() != InProgress {
		t.Fatalf("expected in progress, got %v", g.Status())
	}
	if g.Current() != PlayerBlack {
		t.Fatalf("expected black to move again, got %v", g.Current())
	}
}

func TestMoveRelocatesFootprint(t *testing.T) {
	for _, tc := range [][2]string{{"c3", "c6"}, {"c3", "c4"}} {
		g := New()
		before := g.Board()
		from := NewFootprint(mustCoord(t, tc[0]))
		to := NewFootprint(mustCoord(t, tc[1]))
		if _, err := g.MakeMove(tc[0], tc[1]); err != nil {
			t.Fatalf("%v failed: %v", tc, err)
		}
		after := g.Board()
		dest := map[Coord]bool{}
		for i, c := range to {
			dest[c] = true
			if after[c.Row][c.Col] != before[from[i].Row][from[i].Col] {
				t.Fatalf("%v: index %d at %v = %v, want %v", tc, i, c, after[c.Row][c.Col], before[from[i].Row][from[i].Col])
			}
		}
		for _, c := range from {
			if !dest[c] && after[c.Row][c.Col] != Empty {
				t.Fatalf("%v: vacated cell %v not empty", tc, c)
			}
		}
		last, ok := g.LastMove()
		if !ok || last.From != from || last.To != to {
			t.Fatalf("%v: unexpected last move %+v", tc, last)
		}
	}
}

func TestRejectedMoveChangesNothing(t *testing.T) {
	bad := [][2]string{
		{"x6", "c6"},
		{"c5", "f9"},
		{"h3", "k3"},
		{"c17", "c14"},
		{"j10", "j11"},
		{"c3", "d5"},
		{"c3", "f6"},
		{"a3", "a6"},
	}
	for _, m := range bad {
		g := New()
		snap := g
		if _, err := g.MakeMove(m[0], m[1]); err == nil {
			t.Fatalf("expected %v to be rejected", m)
		}
		if g != snap {
			t.Fatalf("rejected move %v modified the game", m)
		}
	}
}

func TestInvalidCoordinateRejected(t *testing.T) {
	g := New()
	if _, err := g.MakeMove("x6", "c6"); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
	if g.Board() != NewStandardBoard() {
		t.Fatalf("board changed after invalid coordinate")
	}
}

func TestResign(t *testing.T) {
	g := New()
	if err := g.Resign(); err != nil {
		t.Fatalf("resign failed: %v", err)
	}
	if g.Status() != WhiteWon {
		t.Fatalf("expected WHITE_WON after black resigns, got %v", g.Status())
	}
	if !g.Resigned() {
		t.Fatalf("expected resignation to be recorded")
	}
	if err := g.Resign(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver on second resign, got %v", err)
	}

	g = New()
	playMoves(t, &g, [][2]string{{"c3", "c6"}})
	if err := g.Resign(); err != nil {
		t.Fatalf("resign failed: %v", err)
	}
	if g.Status() != BlackWon {
		t.Fatalf("expected BLACK_WON after white resigns, got %v", g.Status())
	}
}

func TestDestroyingLastRingWins(t *testing.T) {
	b := Board{}
	ring(t, &b, "j10", White)
	place(t, &b, Black, "f10", "g10")
	g := NewFromBoard(b, PlayerBlack)

	if _, err := g.MakeMove("f10", "h10"); err != nil {
		t.Fatalf("winning move failed: %v", err)
	}
	if g.Status() != BlackWon {
		t.Fatalf("expected BLACK_WON, got %v", g.Status())
	}
	if w, ok := g.Status().Winner(); !ok || w != PlayerBlack {
		t.Fatalf("expected black winner, got %v %v", w, ok)
	}
	if g.Current() != PlayerBlack {
		t.Fatalf("turn must not swap on a winning move")
	}
	if c, _ := g.Cell(mustCoord(t, "i10")); c != Black {
		t.Fatalf("expected captured ring cell i10 to hold black, got %v", c)
	}

	snap := g
	if _, err := g.MakeMove("h10", "h13"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if g != snap {
		t.Fatalf("game changed after terminal move attempt")
	}
}

func TestWhiteWinsByBreakingBlackRing(t *testing.T) {
	b := Board{}
	ring(t, &b, "j10", Black)
	place(t, &b, White, "n10", "m10")
	g := NewFromBoard(b, PlayerWhite)

	if _, err := g.MakeMove("n10", "l10"); err != nil {
		t.Fatalf("winning move failed: %v", err)
	}
	if g.Status() != WhiteWon {
		t.Fatalf("expected WHITE_WON, got %v", g.Status())
	}
}

func TestMoveKeepsGameWhenRingSurvives(t *testing.T) {
	b := Board{}
	ring(t, &b, "j10", White)
	ring(t, &b, "q17", White)
	place(t, &b, Black, "f10", "g10")
	g := NewFromBoard(b, PlayerBlack)

	if _, err := g.MakeMove("f10", "h10"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if g.Status() != InProgress || g.Current() != PlayerWhite {
		t.Fatalf("expected game to continue with white, got %v %v", g.Status(), g.Current())
	}
}

func TestStatusStrings(t *testing.T) {
	if InProgress.String() != "UNFINISHED" || BlackWon.String() != "BLACK_WON" || WhiteWon.String() != "WHITE_WON" {
		t.Fatalf("unexpected status strings")
	}
	if _, ok := InProgress.Winner(); ok {
		t.Fatalf("in-progress game has no winner")
	}
}
