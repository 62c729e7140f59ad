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

	"github.com/spf13/cobra"

	"github.com/mwaters/ec-api/internal/config"
	"github.com/mwaters/ec-api/internal/database"
	"github.com/mwaters/ec-api/internal/handler"
	"github.com/mwaters/ec-api/internal/logger"
	"github.com/mwaters/ec-api/internal/middleware"
	"github.com/mwaters/ec-api/internal/repository"
	"github.com/mwaters/ec-api/internal/router"
	"github.com/mwaters/ec-api/internal/server"
	"github.com/mwaters/ec-api/internal/service"
)

const shutdownTimeout = 5 * time.Second

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "Apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger service: %w", err)
	}
	defer loggerService.Shutdown()

	log := logger.New(cfg, loggerService)

	// Migration stays an explicit step; this flag is for deployments
	// that want a single command anyway.
	if serveMigrate {
		if err := database.Migrate(ctx, log, cfg); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewServices(srv, repos)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}
