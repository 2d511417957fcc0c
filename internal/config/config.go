package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	Addr        string
	MaxGames    int
	IdleTimeout time.Duration
	MessagesDir string

	EmptyGlyph string
	CellPx     int

	Heartbeat time.Duration
}

const (
	minCellPx = 12
	maxCellPx = 64
)

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Addr:        ":8080",
		MaxGames:    200,
		IdleTimeout: time.Hour,
		EmptyGlyph:  "·",
		CellPx:      28,
		Heartbeat:   15 * time.Second,
	}

	if v := strings.TrimSpace(os.Getenv("GESS_ADDR")); v != "" {
		cfg.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("GESS_MAX_GAMES")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxGames = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("GESS_IDLE_MIN")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.IdleTimeout = time.Duration(n) * time.Minute
		}
	}
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("GESS_MESSAGES_DIR"))

	// the glyph may legitimately be a single space, so no trimming here
	if v := os.Getenv("GESS_EMPTY_GLYPH"); v != "" {
		cfg.EmptyGlyph = v
	}
	if v := strings.TrimSpace(os.Getenv("GESS_CELL_PX")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= minCellPx && n <= maxCellPx {
			cfg.CellPx = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("GESS_HEARTBEAT_SEC")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Heartbeat = time.Duration(n) * time.Second
		}
	}

	if cfg.EmptyGlyph == "B" || cfg.EmptyGlyph == "W" {
		return nil, errors.New("GESS_EMPTY_GLYPH must not look like a stone")
	}

	return cfg, nil
}
