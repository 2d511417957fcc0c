package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/jaminalder/codex-gess/internal/domain"
	"github.com/jaminalder/codex-gess/internal/msgcat"
	"go.uber.org/zap/zaptest"
)

func newSession(t *testing.T, input string) (*session, *strings.Builder) {
	t.Helper()
	var out strings.Builder
	return &session{
		game:  domain.New(),
		cat:   msgcat.Default(),
		glyph: ".",
		in:    bufio.NewScanner(strings.NewReader(input)),
		out:   &out,
		log:   zaptest.NewLogger(t),
	}, &out
}

func TestSessionMoveAndView(t *testing.T) {
	s, out := newSession(t, "m\nc3\nc6\nv\n")
	if err := s.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "black moved c3 to c6 (north).") {
		t.Fatalf("expected move confirmation, got %q", got)
	}
	if !strings.Contains(got, "It is the white player's turn.") {
		t.Fatalf("expected turn to pass to white, got %q", got)
	}
	if !strings.Contains(got, "   a b c d e f g h i j k l m n o p q r s t") {
		t.Fatalf("expected board on view, got %q", got)
	}
	if s.game.Moves() != 1 {
		t.Fatalf("expected one move, got %d", s.game.Moves())
	}
}

func TestSessionRejectsIllegalMove(t *testing.T) {
	s, out := newSession(t, "m\nc5\nf9\nm\nx6\nc6\n")
	if err := s.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "You are trying to move too many spaces.") {
		t.Fatalf("expected too-far message, got %q", got)
	}
	if !strings.Contains(got, "Bad input!") {
		t.Fatalf("expected bad coordinate message, got %q", got)
	}
	if s.game.Current() != domain.PlayerBlack || s.game.Moves() != 0 {
		t.Fatalf("rejected moves must not change the game")
	}
}

func TestSessionInvalidKey(t *testing.T) {
	s, out := newSession(t, "z\n")
	if err := s.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Invalid input!") {
		t.Fatalf("expected invalid key message, got %q", out.String())
	}
}

func TestSessionResign(t *testing.T) {
	s, out := newSession(t, "q\nn\nm\nc3\nc6\nq\ny\n")
	if err := s.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "white resigned.") || !strings.Contains(got, "Black wins!") {
		t.Fatalf("expected white to resign and black to win, got %q", got)
	}
	if st := s.game.Status(); st != domain.BlackWon {
		t.Fatalf("expected BLACK_WON, got %v", st)
	}
}
