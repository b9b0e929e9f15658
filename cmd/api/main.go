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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/oguardiao/guardiao-api/internal/api"
	"github.com/oguardiao/guardiao-api/internal/config"
	"github.com/oguardiao/guardiao-api/internal/logger"
	"github.com/oguardiao/guardiao-api/internal/services"
	"github.com/sirupsen/logrus"
)

// @title O Guardião API
// @version 1.0.0
// @description Validação de CNPJ, máscaras de entrada e painel de certificados digitais.

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logger.New(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting O Guardião API server...")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	serviceContainer, err := services.NewContainer(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize services: %v", err)
	}
	defer serviceContainer.Close()

	server, err := api.NewServer(cfg, logger, serviceContainer)
	if err != nil {
		logger.Fatalf("Failed to initialize server: %v", err)
	}
	defer server.Close()

	timeouts := cfg.Timeouts()
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Router,
		ReadTimeout:  timeouts.ServerReadTimeout,
		WriteTimeout: timeouts.ServerWriteTimeout,
		IdleTimeout:  timeouts.ServerIdleTimeout,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":        cfg.Server.Port,
			"environment": cfg.Server.Environment,
		}).Info("Server starting...")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	server.Drain()

	ctx, cancel := context.WithTimeout(context.Background(), timeouts.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
