// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hackfest/teams/internal/auth"
	"github.com/hackfest/teams/internal/config"
	"github.com/hackfest/teams/internal/database"
	"github.com/hackfest/teams/internal/database/migrate"
	"github.com/hackfest/teams/internal/database/pool"
	eventRouter "github.com/hackfest/teams/internal/event/router"
	"github.com/hackfest/teams/internal/health"
	membershipRouter "github.com/hackfest/teams/internal/membership/router"
	"github.com/hackfest/teams/internal/middleware"
	registrationRouter "github.com/hackfest/teams/internal/registration/router"
	teamRouter "github.com/hackfest/teams/internal/team/router"
	"github.com/hackfest/teams/pkg/logger"
)

func main() {
	// .env is optional; real deployments inject environment directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.New(ctx)
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}

	if err := pool.SetupConnectionPool(db, pool.LoadConfigFromEnv()); err != nil {
		appLogger.Fatalw("failed to configure connection pool", "error", err)
	}

	if err := migrate.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	authCfg := auth.LoadConfigFromEnv()
	if err := authCfg.Validate(); err != nil {
		appLogger.Fatalw("invalid auth configuration", "error", err)
	}

	r := gin.New()
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.Recovery(appLogger))

	healthHandler := health.New(db, appLogger)
	r.GET("/health", healthHandler.Check)

	// Event catalog is readable without authentication.
	eventRouter.RegisterRoutes(r, db, appLogger)

	authed := r.Group("/")
	authed.Use(middleware.Auth(authCfg, appLogger))
	teamRouter.RegisterRoutes(authed, db, cfg.Team, appLogger)
	membershipRouter.RegisterRoutes(authed, db, cfg.Team, appLogger)
	registrationRouter.RegisterRoutes(authed, db, appLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Infow("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Infow("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorw("forced shutdown", "error", err)
	}

	appLogger.Infow("server stopped")
}
