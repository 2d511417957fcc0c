package msgcat

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jaminalder/codex-gess/internal/domain"
)

var moveErrors = []error{
	domain.ErrInvalidCoordinate,
	domain.ErrOutOfBounds,
	domain.ErrContainsOpponentStone,
	domain.ErrEmptyFootprint,
	domain.ErrTooFar,
	domain.ErrInvalidDirection,
	domain.ErrDirectionNotSupported,
	domain.ErrPathObstructed,
	domain.ErrGameOver,
}

func TestEmbeddedHasEveryRejection(t *testing.T) {
	c := Default()
	unknown := c.Text("move.rejected.unknown", nil)
	for _, e := range moveErrors {
		wrapped := fmt.Errorf("context: %w", e)
		got := c.Rejection(wrapped)
		if got == unknown || strings.HasPrefix(got, "move.rejected.") {
			t.Fatalf("no message for %v, got %q", e, got)
		}
	}
	if got := c.Rejection(errors.New("boom")); got != unknown {
		t.Fatalf("foreign error should map to the unknown message, got %q", got)
	}
}

func TestStatusAndRings(t *testing.T) {
	c := Default()
	g := domain.New()
	if got := c.Status(&g); got != "It is the black player's turn." {
		t.Fatalf("unexpected status %q", got)
	}
	if err := g.Resign(); err != nil {
		t.Fatalf("Resign: %v", err)
	}
	if got := c.Status(&g); got != "black resigned. White wins!" {
		t.Fatalf("unexpected status %q", got)
	}
	b := g.Board()
	if got := c.Rings(&b); got != "Rings: black 1, white 1." {
		t.Fatalf("unexpected rings %q", got)
	}
}

func TestRenderWithData(t *testing.T) {
	c := Default()
	got, err := c.Render("game.turn", map[string]any{"Player": "BLACK"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "It is the BLACK player's turn." {
		t.Fatalf("unexpected text %q", got)
	}
	if _, err := c.Render("game.turn", map[string]any{}); err == nil {
		t.Fatalf("expected missing data key to fail")
	}
	if _, err := c.Render("no.such.key", nil); err == nil {
		t.Fatalf("expected unknown key to fail")
	}
	if got := c.Text("no.such.key", nil); got != "no.such.key" {
		t.Fatalf("Text should fall back to the key, got %q", got)
	}
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte("move:\n  rejected:\n    too_far: \"Too far!\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Rejection(domain.ErrTooFar); got != "Too far!" {
		t.Fatalf("override not applied, got %q", got)
	}
	if got := c.Rejection(domain.ErrPathObstructed); !strings.Contains(got, "obstructed") {
		t.Fatalf("embedded default lost, got %q", got)
	}
}

func TestOverrideDuplicateKeys(t *testing.T) {
	dir := t.TempDir()
	body := []byte("app:\n  title: \"X\"\n")
	for _, n := range []string{"a.yaml", "b.yml"} {
		if err := os.WriteFile(filepath.Join(dir, n), body, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := New(dir); err == nil || !strings.Contains(err.Error(), "duplicate override key") {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestOverrideRejectsNonStrings(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("app:\n  title: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(dir); err == nil {
		t.Fatalf("expected error for non-string leaf")
	}
}

func TestOverrideRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "typo.yaml"), []byte("move:\n  rejected:\n    to_far: \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(dir); err == nil || !strings.Contains(err.Error(), "unknown message key") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestOverrideRejectsBrokenTemplate(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("game:\n  turn: \"{{.Player\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(dir); err == nil {
		t.Fatalf("expected parse error for broken template")
	}
}
