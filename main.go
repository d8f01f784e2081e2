package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omkarRanu3625/Blog-application/internal/api"
	"github.com/omkarRanu3625/Blog-application/internal/auth"
	"github.com/omkarRanu3625/Blog-application/internal/config"
	"github.com/omkarRanu3625/Blog-application/internal/database"
	"github.com/omkarRanu3625/Blog-application/internal/email"
	"github.com/omkarRanu3625/Blog-application/internal/logger"
	"github.com/omkarRanu3625/Blog-application/internal/services"
	"github.com/omkarRanu3625/Blog-application/internal/store/sqlite"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel)

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	st := sqlite.New(db)

	// Set up the email transport
	var mailer email.Sender
	if cfg.EmailFrom != "" {
		mailer, err = email.NewSESSender(cfg.EmailFrom)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize email transport")
		}
	} else {
		mailer = email.Disabled{}
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Set up services
	userService := services.NewUserService(st, mailer)
	postService := services.NewPostService(st)
	commentService := services.NewCommentService(st, st)

	// Set up router
	router := api.NewRouter(tokens, userService, postService, commentService, cfg.CORSOrigin)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
