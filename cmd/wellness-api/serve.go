package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/wellness/backend/internal/apierror"
	"github.com/JonnyWalker81/wellness/backend/internal/handlers"
	"github.com/JonnyWalker81/wellness/backend/internal/logger"
	"github.com/JonnyWalker81/wellness/backend/internal/middleware"
	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/service"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if port != "" {
		cfg.Server.Port = port
	}

	logger.Info("starting wellness API server",
		logger.String("env", cfg.Server.Env),
		logger.String("storage", cfg.Storage.Driver),
	)

	repos, err := openRepositories(cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.close(); err != nil {
			logger.Warn("failed to close storage", logger.Err(err))
		}
	}()

	logService := service.NewDailyLogService(repos.logs)
	profileService := service.NewProfileService(repos.profiles)
	analyticsService := service.NewAnalyticsService(repos.logs, repos.profiles)
	reportService := service.NewReportService(repos.logs, time.Now)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	apierror.UseJSONFieldNames()

	router := gin.New()
	router.Use(middleware.Logger(logger.Default()))
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))

	router.GET("/health", handlers.Health(cfg.Storage.Driver))
	handlers.Handlers{
		DailyLogs: handlers.NewDailyLogHandler(logService),
		Profile:   handlers.NewProfileHandler(profileService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService),
		Reports:   handlers.NewReportHandler(reportService, models.ReportPeriod(cfg.Report.DefaultPeriod)),
	}.Register(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", logger.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
