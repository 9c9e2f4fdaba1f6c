// Package bootstrap wires the simulation, persistence, event fan-out and HTTP
// surface together and owns the startup/shutdown order.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dagwood-games/hotdog-tycoon/internal/announce"
	"github.com/dagwood-games/hotdog-tycoon/internal/balance"
	"github.com/dagwood-games/hotdog-tycoon/internal/config"
	"github.com/dagwood-games/hotdog-tycoon/internal/database"
	"github.com/dagwood-games/hotdog-tycoon/internal/database/postgres"
	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
	"github.com/dagwood-games/hotdog-tycoon/internal/event"
	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
	"github.com/dagwood-games/hotdog-tycoon/internal/metrics"
	"github.com/dagwood-games/hotdog-tycoon/internal/repository"
	"github.com/dagwood-games/hotdog-tycoon/internal/scheduler"
	"github.com/dagwood-games/hotdog-tycoon/internal/server"
	"github.com/dagwood-games/hotdog-tycoon/internal/sse"
	"github.com/dagwood-games/hotdog-tycoon/internal/stand"
	"github.com/dagwood-games/hotdog-tycoon/internal/worker"
)

// App holds every long-lived component in startup order
type App struct {
	Config     *config.Config
	Bus        *event.MemoryBus
	DeadLetter *event.DeadLetterWriter
	Stand      stand.Service
	Snapshots  repository.Snapshot
	Hub        *sse.Hub
	Workers    *worker.Pool
	Scheduler  *scheduler.Scheduler
	Server     *server.Server
	Announcer  *announce.Announcer

	dbPool *pgxpool.Pool
}

// New wires the application. Persistence and the announcer are optional:
// a failed database connection degrades to in-memory play, and the announcer
// only starts when both Discord settings are present.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	app := &App{Config: cfg}

	// Event system
	dlPath := filepath.Join(cfg.LogDir, DeadLetterFileName)
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	dlw, err := event.NewDeadLetterWriter(dlPath)
	if err != nil {
		return nil, fmt.Errorf("create dead-letter writer: %w", err)
	}
	app.DeadLetter = dlw
	app.Bus = event.NewMemoryBus(event.WithQueuing(), event.WithDeadLetter(dlw))

	// Balance config
	balanceCfg, err := loadBalance(ctx, cfg.BalanceConfigPath)
	if err != nil {
		return nil, err
	}

	// Simulation core
	app.Stand, err = stand.NewService(balanceCfg, app.Bus)
	if err != nil {
		return nil, fmt.Errorf("create stand service: %w", err)
	}

	// Persistence (optional)
	app.dbPool, err = database.NewPool(cfg.GetDBConnString(), database.DefaultMaxConnections, time.Minute, time.Hour)
	if err != nil {
		log.Warn(LogMsgPersistenceDisabled, "error", err)
	} else {
		log.Info(LogMsgDatabaseConnected, "host", cfg.DBHost, "database", cfg.DBName)
		app.Snapshots = postgres.NewSnapshotRepository(app.dbPool)
		if err := restoreLatest(ctx, app.Stand, app.Snapshots); err != nil {
			return nil, err
		}
	}

	// Observability fan-out
	if err := metrics.NewEventMetricsCollector().Register(app.Bus); err != nil {
		return nil, fmt.Errorf("register metrics collector: %w", err)
	}

	app.Hub = sse.NewHub()
	sse.NewSubscriber(app.Hub, app.Bus).Subscribe()

	// Announcer (optional)
	if cfg.AnnouncerEnabled() {
		app.Announcer, err = announce.New(cfg.DiscordToken, cfg.DiscordChannelID, app.Bus)
		if err != nil {
			return nil, fmt.Errorf("create announcer: %w", err)
		}
	} else {
		log.Info(LogMsgAnnouncerDisabled)
	}

	// Background work
	app.Workers = worker.NewPool(WorkerCount, WorkerQueueSize)
	app.Scheduler = scheduler.New(app.Workers)

	// HTTP surface
	var dbPool database.Pool
	if app.dbPool != nil {
		dbPool = app.dbPool
	}
	app.Server = server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool, app.Stand, app.Snapshots, app.Bus, app.Hub)

	return app, nil
}

// Start launches the background components. The HTTP server is started by the
// caller so it can own the ListenAndServe error.
func (a *App) Start(ctx context.Context) error {
	a.Hub.Start()
	a.Workers.Start()

	a.Scheduler.Schedule(a.Config.TickInterval, worker.NewTickJob(a.Stand))
	if a.Snapshots != nil {
		a.Scheduler.Schedule(a.Config.AutosaveInterval, worker.NewAutosaveJob(a.Stand, a.Snapshots))
	}

	if a.Announcer != nil {
		if err := a.Announcer.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown stops components in reverse dependency order and takes a final
// snapshot so a clean restart resumes where play stopped.
func (a *App) Shutdown(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShutdownStarted)

	a.Scheduler.Stop()
	a.Workers.Stop()

	if a.Snapshots != nil {
		if err := a.Snapshots.Save(ctx, a.Stand.Snapshot(ctx)); err != nil {
			log.Error(LogMsgFinalSaveFailed, "error", err)
		}
	}

	if a.Announcer != nil {
		a.Announcer.Stop(ctx)
	}
	a.Hub.Stop()

	if a.dbPool != nil {
		a.dbPool.Close()
	}
	if err := a.DeadLetter.Close(); err != nil {
		log.Warn("Dead-letter close failed", "error", err)
	}

	log.Info(LogMsgShutdownComplete)
}

// loadBalance reads the balance YAML, falling back to built-in defaults when
// the file does not exist. A present but invalid file is a hard error.
func loadBalance(ctx context.Context, path string) (*balance.Config, error) {
	log := logger.FromContext(ctx)

	cfg, err := balance.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn(LogMsgBalanceDefaults, "path", path)
			return balance.Default(), nil
		}
		return nil, err
	}

	log.Info(LogMsgBalanceLoaded, "path", path, "version", cfg.Version)
	return cfg, nil
}

// restoreLatest rehydrates the stand from the newest saved snapshot, if any
func restoreLatest(ctx context.Context, svc stand.Service, repo repository.Snapshot) error {
	log := logger.FromContext(ctx)

	snap, err := repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			log.Info(LogMsgNoSnapshotFound)
			return nil
		}
		return fmt.Errorf("load latest snapshot: %w", err)
	}

	if err := svc.Restore(ctx, snap); err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	log.Info(LogMsgStateRestored, "taken_at", snap.TakenAt, "balance", snap.Balance)
	return nil
}
