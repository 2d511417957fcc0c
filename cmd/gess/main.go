// Command gess plays a hot-seat game of Gess in the terminal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	appcfg "github.com/jaminalder/codex-gess/internal/config"
	"github.com/jaminalder/codex-gess/internal/domain"
	"github.com/jaminalder/codex-gess/internal/msgcat"
	"github.com/jaminalder/codex-gess/internal/obslog"
	"github.com/jaminalder/codex-gess/internal/render"
	"go.uber.org/zap"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	// the board owns stdout; logs stay off the console unless asked for
	if os.Getenv("LOG_TO_CONSOLE") == "" {
		_ = os.Setenv("LOG_TO_CONSOLE", "false")
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = obslog.L().Sync() }()

	cat, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		log.Fatalf("message catalog: %v", err)
	}
	s := &session{
		game:  domain.New(),
		cat:   cat,
		glyph: cfg.EmptyGlyph,
		in:    bufio.NewScanner(os.Stdin),
		out:   os.Stdout,
		log:   obslog.L().Named("cli"),
	}
	if err := s.run(); err != nil {
		log.Fatal(err)
	}
}

type session struct {
	game  domain.Game
	cat   *msgcat.Catalog
	glyph string
	in    *bufio.Scanner
	out   io.Writer
	log   *zap.Logger
}

var errQuit = errors.New("input closed")

func (s *session) run() error {
	s.println(s.cat.Text("app.welcome", nil))
	for !s.game.Status().Over() {
		s.println(s.cat.Status(&s.game))
		s.println(s.cat.Text("cli.menu", nil))
		key, err := s.readLine("")
		if err != nil {
			return quiet(err)
		}
		switch strings.ToLower(key) {
		case "v":
			s.showBoard()
		case "m":
			if err := s.move(); err != nil {
				return quiet(err)
			}
		case "q":
			answer, err := s.readLine(s.cat.Text("cli.confirm_resign", nil))
			if err != nil {
				return quiet(err)
			}
			if strings.EqualFold(answer, "y") {
				loser := s.game.Current()
				if err := s.game.Resign(); err != nil {
					s.println(s.cat.Rejection(err))
					continue
				}
				s.log.Info("player resigned", zap.Stringer("player", loser))
			}
		default:
			s.println(s.cat.Text("cli.invalid_key", nil))
		}
	}
	s.showBoard()
	s.println(s.cat.Status(&s.game))
	return nil
}

func (s *session) move() error {
	from, err := s.readLine(s.cat.Text("cli.prompt_from", nil))
	if err != nil {
		return err
	}
	to, err := s.readLine(s.cat.Text("cli.prompt_to", nil))
	if err != nil {
		return err
	}
	mover := s.game.Current()
	dir, err := s.game.MakeMove(from, to)
	if err != nil {
		s.log.Debug("move rejected", zap.String("from", from), zap.String("to", to), zap.Error(err))
		s.println(s.cat.Rejection(err))
		return nil
	}
	s.println(s.cat.Text("game.moved", map[string]string{
		"Player":    mover.String(),
		"From":      strings.ToLower(from),
		"To":        strings.ToLower(to),
		"Direction": dir.String(),
	}))
	return nil
}

func (s *session) showBoard() {
	b := s.game.Board()
	fmt.Fprint(s.out, render.Text(b, s.glyph))
	s.println(s.cat.Rings(&b))
}

func (s *session) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(s.out, prompt)
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) println(line string) {
	fmt.Fprintln(s.out, line)
}

// quiet treats closed input as a normal exit.
func quiet(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
