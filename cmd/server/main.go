package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lvargas/catalogos-backend/config"
	"github.com/lvargas/catalogos-backend/internal/app/controller"
	"github.com/lvargas/catalogos-backend/internal/app/repository"
	"github.com/lvargas/catalogos-backend/internal/app/service"
	"github.com/lvargas/catalogos-backend/internal/db"
	"github.com/lvargas/catalogos-backend/internal/metrics"
	"github.com/lvargas/catalogos-backend/internal/router"
	"github.com/lvargas/catalogos-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	logFormat := "json"
	if cfg.Server.Environment == "local" {
		logLevel = "debug"
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      logFormat,
		EnableColor: logFormat == "console",
	})

	logger.Info("Starting Catalogos API", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize metrics collector (logs locally when no AWS credentials)
	collector := metrics.New(&cfg.CloudWatch, cfg.Server.Environment)

	// Initialize repositories
	clienteRepo := repository.NewClienteRepository(db.GetDB())
	domicilioRepo := repository.NewDomicilioRepository(db.GetDB())
	productoRepo := repository.NewProductoRepository(db.GetDB())

	// Initialize services
	clienteService := service.NewClienteService(clienteRepo)
	domicilioService := service.NewDomicilioService(domicilioRepo, clienteRepo)
	productoService := service.NewProductoService(productoRepo)

	// Initialize controllers
	clienteController := controller.NewClienteController(clienteService)
	domicilioController := controller.NewDomicilioController(domicilioService)
	productoController := controller.NewProductoController(productoService)

	// Setup router
	r := router.NewRouter(
		clienteController,
		domicilioController,
		productoController,
		collector,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
