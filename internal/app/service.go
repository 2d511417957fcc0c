package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jaminalder/codex-gess/internal/domain"
	"github.com/jaminalder/codex-gess/internal/obslog"
	"go.uber.org/zap"
)

// Errors exposed by the service layer.
var (
	ErrNotFound     = errors.New("game not found")
	ErrTooManyGames = errors.New("too many games")
)

// DefaultMaxGames caps the number of live games when no limit is configured.
const DefaultMaxGames = 200

// DefaultIdleTimeout is how long an unfinished game must sit untouched before
// it may be evicted to make room for a new one.
const DefaultIdleTimeout = time.Hour

// GameState is the in-memory state tracked per game.
type GameState struct {
	ID      string
	Game    domain.Game
	Created time.Time
	Updated time.Time
}

type subscriber struct {
	ch        chan []byte
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service manages games and subscribers. Every mutating call holds the
// service lock for the whole move, so each game sees one move at a time and
// readers only ever get copies of finished transactions.
type Service struct {
	mu       sync.Mutex
	games    map[string]*GameState
	subs     map[string]map[*subscriber]struct{}
	render   func(GameState) []byte
	log      *zap.Logger
	maxGames int
	idle     time.Duration
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger. The global obslog logger is used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxGames caps the number of games held in memory.
func WithMaxGames(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxGames = n
		}
	}
}

// WithIdleTimeout sets how long an unfinished game may go without a move
// before it becomes eligible for eviction.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.idle = d
		}
	}
}

// NewService creates a service with a default renderer (encodes nothing useful).
func NewService(opts ...Option) *Service {
	return NewServiceWithRenderer(func(gs GameState) []byte { return nil }, opts...)
}

// NewServiceWithRenderer allows injecting a renderer for broadcast payloads.
func NewServiceWithRenderer(renderer func(GameState) []byte, opts ...Option) *Service {
	if renderer == nil {
		renderer = func(gs GameState) []byte { return nil }
	}
	s := &Service{
		games:    make(map[string]*GameState),
		subs:     make(map[string]map[*subscriber]struct{}),
		render:   renderer,
		log:      obslog.L(),
		maxGames: DefaultMaxGames,
		idle:     DefaultIdleTimeout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named("app")
	return s
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(GameState) []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if renderer == nil {
		s.render = func(gs GameState) []byte { return nil }
		return
	}
	s.render = renderer
}

// CreateGame creates and registers a new game in the opening position. When
// the cap is reached a finished or idle game is evicted to make room.
func (s *Service) CreateGame() (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if len(s.games) >= s.maxGames && !s.evictLocked(now) {
		s.log.Warn("game limit reached", zap.Int("max_games", s.maxGames))
		return nil, ErrTooManyGames
	}
	id := uuid.NewString()
	gs := &GameState{ID: id, Game: domain.New(), Created: now, Updated: now}
	s.games[id] = gs
	s.log.Info("game created", zap.String("game_id", id))
	cp := *gs
	return &cp, nil
}

// evictLocked drops the least recently updated finished game or, when none
// is finished, the least recently updated game idle for at least s.idle.
func (s *Service) evictLocked(now time.Time) bool {
	var finished, idle *GameState
	for _, gs := range s.games {
		if gs.Game.Status().Over() {
			if finished == nil || gs.Updated.Before(finished.Updated) {
				finished = gs
			}
			continue
		}
		if now.Sub(gs.Updated) >= s.idle && (idle == nil || gs.Updated.Before(idle.Updated)) {
			idle = gs
		}
	}
	victim, reason := finished, "finished"
	if victim == nil {
		victim, reason = idle, "idle"
	}
	if victim == nil {
		return false
	}
	s.removeLocked(victim.ID)
	s.log.Info("game evicted",
		zap.String("game_id", victim.ID),
		zap.String("reason", reason),
		zap.Duration("since_update", now.Sub(victim.Updated)),
	)
	return true
}

// removeLocked forgets a game and closes its subscribers.
func (s *Service) removeLocked(id string) bool {
	_, ok := s.games[id]
	delete(s.games, id)
	for sub := range s.subs[id] {
		sub.close()
	}
	delete(s.subs, id)
	return ok
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, false
	}
	cp := *gs
	return &cp, true
}

// Delete drops a game and closes its subscribers.
func (s *Service) Delete(id string) bool {
	s.mu.Lock()
	ok := s.removeLocked(id)
	s.mu.Unlock()
	if ok {
		s.log.Info("game deleted", zap.String("game_id", id))
	}
	return ok
}

// Play applies a move for whoever is to move, updates timestamps, and
// broadcasts. A rejected move returns the unchanged state alongside the error.
func (s *Service) Play(id, from, to string) (*GameState, domain.Direction, error) {
	s.mu.Lock()
	gs, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.NoDirection, ErrNotFound
	}
	mover := gs.Game.Current()
	dir, err := gs.Game.MakeMove(from, to)
	if err != nil {
		cp := *gs
		s.mu.Unlock()
		s.log.Info("move rejected",
			zap.String("game_id", id),
			zap.Stringer("player", mover),
			zap.String("from", from),
			zap.String("to", to),
			zap.String("reason", domain.Reason(err)),
			zap.Error(err),
		)
		return &cp, domain.NoDirection, err
	}
	s.log.Debug("move played",
		zap.String("game_id", id),
		zap.Stringer("player", mover),
		zap.String("from", from),
		zap.String("to", to),
		zap.Stringer("direction", dir),
	)
	if st := gs.Game.Status(); st.Over() {
		s.log.Info("game won", zap.String("game_id", id), zap.Stringer("status", st), zap.Int("moves", gs.Game.Moves()))
	}
	cp := s.commitLocked(id, gs)
	return &cp, dir, nil
}

// Resign concedes the game for the player to move.
func (s *Service) Resign(id string) (*GameState, error) {
	s.mu.Lock()
	gs, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	loser := gs.Game.Current()
	if err := gs.Game.Resign(); err != nil {
		cp := *gs
		s.mu.Unlock()
		return &cp, err
	}
	s.log.Info("player resigned", zap.String("game_id", id), zap.Stringer("player", loser), zap.Stringer("status", gs.Game.Status()))
	cp := s.commitLocked(id, gs)
	return &cp, nil
}

// commitLocked stamps gs, fans the new state out to subscribers and releases
// the lock. Must be called with s.mu held. Sends never block: a subscriber
// whose buffer is still full is dropped.
func (s *Service) commitLocked(id string, gs *GameState) GameState {
	gs.Updated = s.now()
	cp := *gs
	payload := s.render(cp)
	dropped := 0
	for sub := range s.subs[id] {
		select {
		case sub.ch <- payload:
		default:
			delete(s.subs[id], sub)
			sub.close()
			dropped++
		}
	}
	s.mu.Unlock()
	if dropped > 0 {
		s.log.Debug("dropped slow subscribers", zap.String("game_id", id), zap.Int("count", dropped))
	}
	return cp
}

// Subscribe registers a subscriber for a game. Returns a channel and an unsubscribe func.
// Unknown games yield an already closed channel.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := &subscriber{ch: make(chan []byte, 1)}
	if _, ok := s.games[id]; !ok {
		sub.close()
		return sub.ch, func() {}
	}
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	set[sub] = struct{}{}

	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			s.mu.Lock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
			s.mu.Unlock()
			sub.close()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub
}
