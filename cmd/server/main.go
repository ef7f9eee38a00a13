package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "ndagen/docs"
	"ndagen/internal/config"
	"ndagen/internal/handler"
	"ndagen/internal/logging"
	"ndagen/internal/port"
	"ndagen/internal/repository/memory"
	"ndagen/internal/resolver"
	"ndagen/internal/router"
	"ndagen/internal/service"
	s3storage "ndagen/internal/storage/s3"
)

// @title ndagen API
// @version 1.0
// @description Fills the agreement template with a company name and registered address.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	var storage port.ObjectStorage
	if cfg.S3.Enabled(&cfg.Template) {
		storage, err = s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// The form is useless without a valid template, so refuse to start.
	templateSvc, err := service.LoadTemplateService(ctx, &cfg.Template, &cfg.S3, storage)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}
	status := templateSvc.Status()
	logger.Info("template loaded",
		zap.String("source", status.Source),
		zap.Float64("size_kb", status.SizeKB))

	chain, dir, err := resolver.Build(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build address resolver: %w", err)
	}

	sessionRepo := memory.NewSessionRepo(cfg.Flow.SessionTTL, cfg.Flow.SweepInterval, memory.WithLogger(logger))
	defer sessionRepo.Close()

	// Initialize services
	sessionSvc := service.NewSessionService(sessionRepo, templateSvc, chain, cfg, logger)

	// Initialize handlers
	var lister handler.CompanyLister
	if dir != nil {
		lister = dir
	}
	r := router.Setup(router.Handlers{
		Session:   handler.NewSessionHandler(sessionSvc),
		Template:  handler.NewTemplateHandler(templateSvc),
		Directory: handler.NewDirectoryHandler(lister),
		Health:    handler.NewHealthHandler(templateSvc),
	}, cfg.CORS.AllowedOrigins, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("address_mode", string(cfg.Flow.AddressMode)),
			zap.Strings("resolvers", chain.Names()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	stop()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
