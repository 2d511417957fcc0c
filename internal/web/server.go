package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jaminalder/codex-gess/internal/app"
	"github.com/jaminalder/codex-gess/internal/msgcat"
	"github.com/jaminalder/codex-gess/internal/obslog"
	"github.com/jaminalder/codex-gess/internal/render"
	"go.uber.org/zap"
)

// DefaultHeartbeat is the SSE keep-alive interval.
const DefaultHeartbeat = 15 * time.Second

// Options configures the web layer. Zero values pick defaults.
type Options struct {
	Catalog    *msgcat.Catalog
	Logger     *zap.Logger
	Heartbeat  time.Duration
	EmptyGlyph string
	CellPx     int
}

// NewServer wires routes and returns an http.Handler. It also installs the
// board fragment as the service's broadcast renderer.
func NewServer(s *app.Service, opts Options) http.Handler {
	h := newHandlers(s, opts)
	s.SetRenderer(h.broadcast)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.log))
	r.Get("/", h.index)
	r.Post("/game", h.create)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/move", h.move)
		r.Post("/resign", h.resign)
		r.Post("/delete", h.remove)
		r.Get("/events", h.events)
		r.Get("/board.png", h.boardPNG)
		r.Get("/board.txt", h.boardText)
	})
	return r
}

func newHandlers(s *app.Service, opts Options) *handlers {
	h := &handlers{
		svc:       s,
		tpl:       loadTemplates(),
		cat:       opts.Catalog,
		log:       opts.Logger,
		heartbeat: opts.Heartbeat,
		glyph:     opts.EmptyGlyph,
		cellPx:    opts.CellPx,
	}
	if h.cat == nil {
		h.cat = msgcat.Default()
	}
	if h.log == nil {
		h.log = obslog.L()
	}
	h.log = h.log.Named("web")
	if h.heartbeat <= 0 {
		h.heartbeat = DefaultHeartbeat
	}
	if h.glyph == "" {
		h.glyph = render.DefaultGlyph
	}
	if h.cellPx <= 0 {
		h.cellPx = render.DefaultCellPx
	}
	return h
}

func requestLogger(l *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			l.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
