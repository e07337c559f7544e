package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/handler"
	"github.com/sweetbliss/internal/router"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serve starts the public and admin JSON API on the configured address
(default :8080). The configured admin account is created when missing. The
server shuts down cleanly on SIGTERM or SIGINT.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.Init(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}

	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		created, err := db.EnsureUser(gdb, cfg.Admin.Username, cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("ensuring admin user: %w", err)
		}
		if created {
			logger.Info("created admin user", zap.String("username", cfg.Admin.Username))
		}
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return fmt.Errorf("creating upload dir: %w", err)
	}

	gin.SetMode(cfg.Server.GinMode)
	api := handler.NewAPI(gdb, handler.Options{
		UploadDir:   cfg.Upload.Dir,
		UploadURL:   cfg.Upload.URLPath,
		SearchLimit: cfg.Catalogue.SearchLimit,
		PageSize:    cfg.Catalogue.PageSize,
		Logger:      logger,
	})
	engine := router.SetupRouter(api, router.Options{
		SessionSecret: cfg.Server.SessionSecret,
		UploadDir:     cfg.Upload.Dir,
		UploadURLPath: cfg.Upload.URLPath,
		Logger:        logger,
	})

	srv := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped cleanly")
	return nil
}
