package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/config"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/database"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/router"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Log.Level)

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Error("init database", "err", err)
		os.Exit(1)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Error("migrate database", "err", err)
		os.Exit(1)
	}

	st := store.NewGormStore(db)
	r := router.Setup(cfg, st, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Info("listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
