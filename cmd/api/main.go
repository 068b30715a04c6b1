package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/priyanshuroy/rover-security-api/internal/config"
	"github.com/priyanshuroy/rover-security-api/internal/httpserver"
	"github.com/priyanshuroy/rover-security-api/internal/logging"
	"github.com/priyanshuroy/rover-security-api/internal/store"
)

// main boots the service: config → logger → store → schema → HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log)

	st, err := newStore(cfg)
	if err != nil {
		logger.Error("init store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpserver.NewRouter(st),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server started", "addr", srv.Addr, "store", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("server stopped")
}

// newStore selects the persistence driver. Postgres is the default; the
// in-memory store loses all state on restart and must be asked for explicitly.
func newStore(cfg config.Config) (store.Store, error) {
	switch cfg.Database.Driver {
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		pg, err := store.NewPostgresStore(cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		// Ensure required tables/indexes exist so `docker compose up --build` is enough.
		if err := pg.EnsureSchema(); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	}
}
