package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/returnlens/Annualized-Return-Backend/internal/api"
	"github.com/returnlens/Annualized-Return-Backend/internal/config"
	"github.com/returnlens/Annualized-Return-Backend/internal/repository"
	"github.com/returnlens/Annualized-Return-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create repositories
	sessionRepo := repository.NewSessionRepository()

	// Create services
	systemService := service.NewSystemService()
	calculationService := service.NewCalculationService()
	chartService := service.NewChartService(cfg.Chart.Width, cfg.Chart.Height)
	sessionService := service.NewSessionService(sessionRepo)

	// Create router
	router := api.NewRouter(systemService, calculationService, chartService, sessionService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
