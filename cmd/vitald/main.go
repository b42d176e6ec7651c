package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/vitald/internal/scheduler"
	"github.com/sandeepkv93/vitald/internal/storage"
	"github.com/sandeepkv93/vitald/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vitald failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := storage.MigrateUp(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		return err
	}

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	refreshEvery := time.Duration(cfg.RefreshSeconds) * time.Second
	now := time.Now().UTC()
	if err := engine.Schedule(scheduler.TickEvent{
		ID:        "refresh-loop",
		Kind:      "refresh",
		TriggerAt: now.Add(refreshEvery),
		Every:     refreshEvery,
	}); err != nil {
		return fmt.Errorf("schedule refresh tick: %w", err)
	}
	if err := engine.Schedule(scheduler.TickEvent{
		ID:        "prune-loop",
		Kind:      "prune",
		TriggerAt: now.Add(time.Hour),
		Every:     24 * time.Hour,
	}); err != nil {
		return fmt.Errorf("schedule prune tick: %w", err)
	}

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	program := tea.NewProgram(update.NewModelWithConfig(engine, notifier, repo, nil, cfg))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
