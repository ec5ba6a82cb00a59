package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/agents"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/config"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/dataflows"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/debug"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/logger"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/server"
)

func runServe(cfg *config.Config) error {
	ctx := context.Background()

	if err := debug.InitIfEnabled(ctx, cfg); err != nil {
		logger.Warn("eino debug init failed", map[string]interface{}{"error": err.Error()})
	}

	flows := dataflows.NewClient(cfg)

	// A missing credential is not fatal; the server starts and reports the
	// misconfiguration on the query endpoints.
	var team server.TeamRunner
	if t, err := agents.NewTeam(cfg, flows); err != nil {
		logger.Warn("analysis team unavailable", map[string]interface{}{"error": err.Error()})
	} else {
		team = t
	}

	srv := server.New(cfg, team)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", map[string]interface{}{"port": cfg.Port})
		errCh <- httpServer.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-sigCh:
		logger.Warn("shutdown signal received", map[string]interface{}{"signal": sig.String()})
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}
