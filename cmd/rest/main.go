package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"swadesh-ai-be/internal/bootstrap"
	"swadesh-ai-be/internal/config"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/internal/server"
	"swadesh-ai-be/internal/tracer"
	"swadesh-ai-be/pkg/database"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 2. Tracing
	shutdownTracer := tracer.InitTracer(ctx, cfg.Tracing, sysLogger)
	defer shutdownTracer(context.Background())

	// 3. Database (optional)
	var gormDB *gorm.DB
	if cfg.HasDatabase() {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, !cfg.IsProduction())
		if err != nil {
			sysLogger.Error("BOOT", "Unable to connect to database, continuing without storage", map[string]interface{}{"error": err.Error()})
		} else {
			gormDB = db
		}
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(ctx, gormDB, cfg, sysLogger)
	defer container.Close()

	srv := server.New(cfg, container)

	// 5. Run server and background consumer until a signal arrives
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return container.ActivityConsumer.Consume(gctx)
	})

	g.Go(func() error {
		return srv.Run()
	})

	g.Go(func() error {
		<-gctx.Done()
		sysLogger.Info("SERVER", "Shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("server stopped: %v", err)
	}
}
