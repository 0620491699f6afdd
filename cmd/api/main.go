// Artha API server: a personal financial ledger with derived dashboard
// metrics, a calculator toolbox, and an advisory surface.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"artha/internal/advisory"
	"artha/internal/config"
	"artha/internal/database"
	"artha/internal/handlers"
	"artha/internal/logger"
)

// @title Artha API
// @version 1.0
// @description Personal financial ledger with derived metrics, calculators, and advisory tools.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger.Init(cfg.Env)
	defer logger.Sync()
	log := logger.Get()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		log.Fatalw("failed to load database configuration", "error", err)
	}
	manager, err := database.NewManager(dbConfig)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	if err := manager.RunMigrations(); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	router := handlers.NewRouter(manager.DB(), advisory.NewRuleBased())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("forced shutdown", "error", err)
	}
	log.Info("server stopped")
}
