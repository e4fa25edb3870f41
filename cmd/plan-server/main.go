// cmd/plan-server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bizplan-engine/internal/api"
	"bizplan-engine/internal/common/config"
	"bizplan-engine/internal/common/logger"
	"bizplan-engine/internal/common/observability"
	"bizplan-engine/internal/engine"
	"bizplan-engine/internal/registry"
	"bizplan-engine/internal/store"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting plan server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Reinitialize with the configured level and format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Persistence ---
	// The server keeps running without Redis: built-in templates and
	// calculations work, user templates and scenarios do not persist.
	var st store.Store
	redisStore := store.NewRedis(cfg.Redis)
	if err := redisStore.Ping(ctx); err != nil {
		log.WithError(err).Warn("redis unavailable, running without persistence", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		_ = redisStore.Close()
	} else {
		st = redisStore
		defer redisStore.Close()
		log.Info("redis connected", map[string]interface{}{"address": cfg.Redis.Address})
	}

	// --- Domain wiring ---
	reg := registry.New(log, st)
	eng := engine.New(log, reg, obs)
	server := api.New(log, reg, eng, st)

	// --- Serve ---
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(cfg.Server.Addr())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	case sig := <-stop:
		log.Info("shutting down", map[string]interface{}{"signal": sig.String()})
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown incomplete", nil)
		}
	}

	zapLog.Info("Plan server stopped")
}
