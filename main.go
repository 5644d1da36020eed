// Package main is the entry point for the blog API
package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/qmshan/blogapi/config"
	"github.com/qmshan/blogapi/database"
	"github.com/qmshan/blogapi/services"
	"github.com/qmshan/blogapi/shared/middleware"
	"github.com/qmshan/blogapi/shared/zaplogger"
)

func main() {
	// Setup logger
	defer zaplogger.Sync()

	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Blog API")

	// Load configuration
	cfg, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zaplogger.SetLogLevel(cfg.ServerLogLevel)
	zaplogger.Info("  * configuration loaded")

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware
	middleware.SetupLoggerMiddleware(e)
	middleware.SetupCORSMiddleware(e, cfg.FrontendURL)

	// Connect to Postgres
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	// Connect Redis
	redisClient, err := database.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Setup routes
	setupRoutes(e, cfg, db, redisClient)

	// Setup and start cron jobs
	cronService := services.NewCronService(db)
	cronService.Start()

	// Start the server
	startServer(e, cfg)
}

// startServer starts the Echo server on the specified port
func startServer(e *echo.Echo, cfg *config.Config) {
	port := cfg.ServerPort
	if port == "" {
		port = "3000"
	}
	startupMessage := fmt.Sprintf("%s %s Server [:%s] started", cfg.APIName, cfg.APIVersion, port)

	zaplogger.Info(config.SingleLine)
	zaplogger.Info(startupMessage)
	zaplogger.Info(config.SingleLine)
	e.Logger.Fatal(e.Start(":" + port))
}
