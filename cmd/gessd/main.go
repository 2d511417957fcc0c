package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaminalder/codex-gess/internal/app"
	appcfg "github.com/jaminalder/codex-gess/internal/config"
	"github.com/jaminalder/codex-gess/internal/msgcat"
	"github.com/jaminalder/codex-gess/internal/obslog"
	"github.com/jaminalder/codex-gess/internal/web"
	"go.uber.org/zap"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger error: %v", err)
	}
	logger := obslog.L()
	defer func() { _ = logger.Sync() }()

	cat, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		logger.Fatal("message catalog", zap.String("dir", cfg.MessagesDir), zap.Error(err))
	}

	svc := app.NewService(
		app.WithLogger(logger),
		app.WithMaxGames(cfg.MaxGames),
		app.WithIdleTimeout(cfg.IdleTimeout),
	)
	handler := web.NewServer(svc, web.Options{
		Catalog:    cat,
		Logger:     logger,
		Heartbeat:  cfg.Heartbeat,
		EmptyGlyph: cfg.EmptyGlyph,
		CellPx:     cfg.CellPx,
	})

	// request contexts derive from base so open SSE streams end on shutdown
	base, stop := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
	srv.RegisterOnShutdown(stop)

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.Int("max_games", cfg.MaxGames))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for termination signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", zap.Stringer("signal", sig))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
		_ = srv.Close()
	}
}
