package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"virtual-pet/internal/adapters/storage/file"
	mem "virtual-pet/internal/adapters/storage/memory"
	pg "virtual-pet/internal/adapters/storage/postgres"
	"virtual-pet/internal/adapters/storage/sqlite"
	"virtual-pet/internal/domain/activity"
	"virtual-pet/internal/domain/pets"
	"virtual-pet/internal/platform/config"
	"virtual-pet/internal/platform/logger"
	"virtual-pet/internal/router"
)

// @title virtual-pet API
// @version 1.0
// @description Shell HTTP de la mascota virtual: acciones, estado derivado e historial de la sesión.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	repo, closeRepo, err := openSnapshotRepo(cfg)
	if err != nil {
		// Sin storage no hay persistencia, pero la mascota sigue funcionando.
		log.Error("snapshot storage unavailable, using memory", map[string]any{
			"storage": string(cfg.Storage()),
			"error":   err.Error(),
		})
		repo, closeRepo = mem.NewSnapshotRepo(), func() {}
	}
	defer closeRepo()

	activitySvc := activity.NewService(mem.NewActivityRepo(cfg.ActivityCapacity), log)
	petsSvc := pets.NewService(repo, activitySvc, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	petsSvc.Restore(ctx)

	autosaveDone := make(chan struct{})
	autosaveCtx, stopAutosave := context.WithCancel(context.Background())
	go func() {
		defer close(autosaveDone)
		_ = petsSvc.Autosave(autosaveCtx, cfg.AutosaveInterval)
	}()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Pets:     petsSvc,
			Activity: activitySvc,
			Logger:   log,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{
		"addr":    cfg.Addr(),
		"storage": string(cfg.Storage()),
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
	}

	// Guardado final después de cortar el tráfico.
	stopAutosave()
	<-autosaveDone
	log.Info("server stopped", nil)
}

// openSnapshotRepo elige el storage según config. El closer nunca es nil.
func openSnapshotRepo(cfg config.Config) (pets.Repository, func(), error) {
	switch cfg.Storage() {
	case config.StoragePostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg.NewSnapshotRepo(db), func() { _ = db.Close() }, nil

	case config.StorageSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	case config.StorageFile:
		repo, err := file.NewSnapshotRepo(cfg.SnapshotFile)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil

	default:
		return mem.NewSnapshotRepo(), func() {}, nil
	}
}
