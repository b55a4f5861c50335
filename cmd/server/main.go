package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/studyflash/studyflash/internal/api"
	"github.com/studyflash/studyflash/internal/config"
	"github.com/studyflash/studyflash/internal/db"
	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/repository/sqlite"
	"github.com/studyflash/studyflash/internal/services"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("StudyFlash server starting")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories
	flashcardRepo := sqlite.NewFlashcardRepository(database.DB)
	materialRepo := sqlite.NewMaterialRepository(database.DB)
	reviewRepo := sqlite.NewReviewRepository(database.DB)
	sessionRepo := sqlite.NewSessionRepository(database.DB)
	userRepo := sqlite.NewUserRepository(database.DB)
	quizRepo := sqlite.NewQuizRepository(database.DB)
	atomic := sqlite.NewAtomic(database.DB)

	// Services
	reviewService := services.NewReviewService(flashcardRepo, materialRepo, reviewRepo, sessionRepo, atomic)
	materialService := services.NewMaterialService(materialRepo, flashcardRepo, quizRepo, atomic)
	quizService := services.NewQuizService(quizRepo, materialRepo, sessionRepo)
	statsService := services.NewStatsService(reviewRepo, sessionRepo)

	srv := &api.Server{
		DB:              database,
		Users:           userRepo,
		ReviewService:   reviewService,
		MaterialService: materialService,
		QuizService:     quizService,
		StatsService:    statsService,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeoutSec) * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownSec)*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("StudyFlash server stopped")
}
