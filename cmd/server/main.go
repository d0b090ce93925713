package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-jobs/internal/cache"
	"gin-jobs/internal/config"
	"gin-jobs/internal/database"
	"gin-jobs/internal/geocode"
	"gin-jobs/internal/handler"
	"gin-jobs/internal/mailer"
	"gin-jobs/internal/queue"
	"gin-jobs/internal/repository"
	"gin-jobs/internal/router"
	"gin-jobs/internal/service"
	"gin-jobs/internal/storage"
	"gin-jobs/internal/validator"
	"gin-jobs/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Jobs API
// @version         1.0
// @description     A REST API for publishing and searching job postings, built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage for resume uploads
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// Geocoder for radius search
	geocoder := geocode.NewHTTPGeocoder(cfg.GeocoderURL, cfg.GeocoderAPIKey)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	jobRepo := repository.NewJobRepository(mongoDB.Database)

	// Mail queue and processor
	mailQueue := queue.NewMemoryQueue(cfg.MailQueueSize)
	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	} else {
		mail = mailer.NewLogMailer()
	}
	mailProcessor := queue.NewProcessor(mailQueue, mail, cfg.MailQueueWorkers)

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager, mailQueue, cfg.AppURL)
	userService := service.NewUserService(userRepo)
	jobService := service.NewJobService(jobRepo, geocoder, redisCache, s3Client)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(jobService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler: authHandler,
		UserHandler: userHandler,
		JobHandler:  jobHandler,
		JWTManager:  jwtManager,
		UserLoader:  userService,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start mail processor
	mailProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop mail processor (waits for workers)
	log.Println("Stopping mail processor...")
	mailProcessor.Stop()

	log.Println("Server shutdown complete")
}
