package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kwameadu/doc-studio-api/internal/config"
	"github.com/kwameadu/doc-studio-api/internal/db"
	"github.com/kwameadu/doc-studio-api/internal/imagegen"
	"github.com/kwameadu/doc-studio-api/internal/llm"
	"github.com/kwameadu/doc-studio-api/internal/outline"
	"github.com/kwameadu/doc-studio-api/internal/router"
	"github.com/kwameadu/doc-studio-api/internal/services"
	"github.com/kwameadu/doc-studio-api/internal/session"
	"github.com/kwameadu/doc-studio-api/internal/storage"
	"github.com/kwameadu/doc-studio-api/internal/summarizer"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Initialize session database
	database, err := db.Open(cfg.SessionDBFile)
	if err != nil {
		logger.Fatal("Failed to open session database", "error", err)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	sessions := session.NewStore(database)

	// Staged file storage: S3-compatible bucket when configured,
	// local disk otherwise.
	var staging storage.Storage
	if cfg.S3Enabled {
		staging, err = storage.NewS3Storage(context.Background(), storage.S3Config{
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			BucketName:      cfg.S3BucketName,
			UseSSL:          cfg.S3UseSSL,
		})
		if err != nil {
			logger.Fatal("Failed to initialize S3 storage", "error", err)
		}
	} else {
		staging, err = storage.NewLocalStorage(cfg.StagingDir)
		if err != nil {
			logger.Fatal("Failed to initialize local storage", "error", err)
		}
	}

	// Completion provider and services
	completer := llm.NewMistralClient(cfg.MistralAPIKey, cfg.MistralModel, cfg.MistralBaseURL)

	docService := services.NewDocumentService(summarizer.New(completer), sessions, logger)
	outlineService := services.NewOutlineService(outline.NewGenerator(completer), sessions, logger)
	fileService := services.NewFileService(sessions, staging, logger)
	chatService := services.NewChatService(completer, sessions, logger)
	imageService := services.NewImageService(logger,
		imagegen.NewStabilityClient(cfg.StabilityAPIKey),
		imagegen.NewSegmindClient(cfg.SegmindAPIKey),
	)

	// Setup HTTP router
	handler := router.NewRouter(router.Deps{
		Documents:   docService,
		Outlines:    outlineService,
		Files:       fileService,
		Chat:        chatService,
		Images:      imageService,
		Logger:      logger,
		Model:       completer.Model(),
		MaxFileSize: cfg.MaxFileSize,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "model", completer.Model())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
