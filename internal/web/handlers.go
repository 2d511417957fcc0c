package web

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jaminalder/codex-gess/internal/app"
	"github.com/jaminalder/codex-gess/internal/domain"
	"github.com/jaminalder/codex-gess/internal/msgcat"
	"github.com/jaminalder/codex-gess/internal/render"
	"go.uber.org/zap"
)

type handlers struct {
	svc       *app.Service
	tpl       *templates
	cat       *msgcat.Catalog
	log       *zap.Logger
	heartbeat time.Duration
	glyph     string
	cellPx    int
}

type cellView struct {
	Coord string
	Class string
	Stone string
}

type rowView struct {
	Rank  string
	Cells []cellView
}

type boardView struct {
	ID            string
	Files         []string
	Rows          []rowView
	Glyph         string
	Status        string
	LastMove      string
	Rings         string
	Error         string
	Over          bool
	ConfirmResign string
	CloseLabel    string
}

var files = func() []string {
	out := make([]string, domain.BoardSize)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}()

func (h *handlers) boardData(gs app.GameState, errMsg string) boardView {
	g := gs.Game
	b := g.Board()
	v := boardView{
		ID:            gs.ID,
		Files:         files,
		Glyph:         h.glyph,
		Error:         errMsg,
		Over:          g.Status().Over(),
		ConfirmResign: h.cat.Text("cli.confirm_resign", nil),
		CloseLabel:    h.cat.Text("app.close", nil),
		Status:        h.cat.Status(&g),
		Rings:         h.cat.Rings(&b),
	}

	highlight := map[domain.Coord]string{}
	if m, ok := g.LastMove(); ok {
		for _, c := range m.From {
			highlight[c] = "from"
		}
		for _, c := range m.To {
			highlight[c] = "to"
		}
		mover := g.Waiting()
		if g.Status().Over() && !g.Resigned() {
			mover = g.Current()
		}
		v.LastMove = h.cat.Text("game.moved", map[string]string{
			"Player":    mover.String(),
			"From":      m.From.Center().String(),
			"To":        m.To.Center().String(),
			"Direction": m.Dir.String(),
		})
	}

	v.Rows = make([]rowView, domain.BoardSize)
	for r := 0; r < domain.BoardSize; r++ {
		row := rowView{Rank: strconv.Itoa(domain.BoardSize - r), Cells: make([]cellView, domain.BoardSize)}
		for c := 0; c < domain.BoardSize; c++ {
			at := domain.Coord{Row: r, Col: c}
			cv := cellView{Coord: at.String(), Class: highlight[at]}
			if cv.Class == "" && (r == 0 || c == 0 || r == domain.BoardSize-1 || c == domain.BoardSize-1) {
				cv.Class = "edge"
			}
			switch b[r][c] {
			case domain.Black:
				cv.Stone = "b"
			case domain.White:
				cv.Stone = "w"
			}
			row.Cells[c] = cv
		}
		v.Rows[r] = row
	}
	return v
}

func (h *handlers) renderBoard(gs app.GameState, errMsg string) ([]byte, error) {
	return renderTemplate(h.tpl.board, h.boardData(gs, errMsg))
}

// broadcast is the service renderer: the board fragment pushed to SSE
// subscribers. A failed render is logged and pushes nothing.
func (h *handlers) broadcast(gs app.GameState) []byte {
	b, err := h.renderBoard(gs, "")
	if err != nil {
		h.log.Error("render board fragment failed", zap.String("game_id", gs.ID), zap.Error(err))
		return nil
	}
	return b
}

// writeHTML renders t into w with code, or answers 500 when rendering fails.
func (h *handlers) writeHTML(w http.ResponseWriter, code int, t *template.Template, data any) {
	body, err := renderTemplate(t, data)
	if err != nil {
		h.log.Error("render template failed", zap.String("template", t.Name()), zap.Error(err))
		http.Error(w, "failed to render", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	h.writeIndex(w, http.StatusOK, "")
}

func (h *handlers) writeIndex(w http.ResponseWriter, code int, errMsg string) {
	data := struct {
		Title, Welcome, Create, Error string
	}{
		Title:   h.cat.Text("app.title", nil),
		Welcome: h.cat.Text("app.welcome", nil),
		Create:  h.cat.Text("app.create", nil),
		Error:   errMsg,
	}
	h.writeHTML(w, code, h.tpl.index, data)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.CreateGame()
	if errors.Is(err, app.ErrTooManyGames) {
		h.writeIndex(w, http.StatusServiceUnavailable, h.cat.Text("app.too_many_games", nil))
		return
	}
	if err != nil {
		h.log.Error("create game failed", zap.Error(err))
		http.Error(w, "failed to create", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	gs, ok := h.svc.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	data := struct {
		ID    string
		Title string
		Board boardView
	}{ID: gs.ID, Title: h.cat.Text("app.title", nil), Board: h.boardData(*gs, "")}
	h.writeHTML(w, http.StatusOK, h.tpl.game, data)
}

func (h *handlers) move(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	_ = r.ParseForm()
	from := strings.TrimSpace(r.Form.Get("from"))
	to := strings.TrimSpace(r.Form.Get("to"))
	gs, _, err := h.svc.Play(id, from, to)
	h.writeResult(w, r, gs, err)
}

func (h *handlers) resign(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.Resign(chi.URLParam(r, "id"))
	h.writeResult(w, r, gs, err)
}

// writeResult answers a move or resignation with the board fragment. Rule
// violations are shown inline so htmx still swaps the fragment.
func (h *handlers) writeResult(w http.ResponseWriter, r *http.Request, gs *app.GameState, err error) {
	if errors.Is(err, app.ErrNotFound) || gs == nil {
		http.NotFound(w, r)
		return
	}
	var errMsg string
	if err != nil {
		errMsg = h.cat.Rejection(err)
	}
	h.writeHTML(w, http.StatusOK, h.tpl.board, h.boardData(*gs, errMsg))
}

func (h *handlers) remove(w http.ResponseWriter, r *http.Request) {
	if !h.svc.Delete(chi.URLParam(r, "id")) {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *handlers) boardPNG(w http.ResponseWriter, r *http.Request) {
	gs, ok := h.svc.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	opts := render.Options{CellPx: h.cellPx}
	if m, ok := gs.Game.LastMove(); ok {
		opts.Highlight = &m
	}
	data, err := render.PNG(r.Context(), gs.Game.Board(), opts)
	if err != nil {
		h.log.Warn("render png failed", zap.String("game_id", gs.ID), zap.Error(err))
		http.Error(w, "failed to render", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *handlers) boardText(w http.ResponseWriter, r *http.Request) {
	gs, ok := h.svc.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, render.Text(gs.Game.Board(), h.glyph))
	_, _ = io.WriteString(w, h.cat.Status(&gs.Game)+"\n")
}

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.svc.Get(id); !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	// non-EventSource requests only get the headers
	if r.Header.Get("Accept") != "text/event-stream" {
		w.WriteHeader(http.StatusOK)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx := r.Context()
	ch, unsub := h.svc.Subscribe(ctx, id)
	defer unsub()
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
	h.log.Debug("sse subscriber connected", zap.String("game_id", id))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case b, ok := <-ch:
			if !ok {
				return
			}
			if len(b) == 0 {
				continue
			}
			writeEvent(w, "board", b)
			flusher.Flush()
		}
	}
}

// writeEvent frames payload as one SSE event; each line needs its own data field.
func writeEvent(w io.Writer, name string, payload []byte) {
	_, _ = fmt.Fprintf(w, "event: %s\n", name)
	for _, line := range strings.Split(string(payload), "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = io.WriteString(w, "\n")
}
