package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Alexander2005-rgb/Quiz-application/config"
	"github.com/Alexander2005-rgb/Quiz-application/middleware"
	"github.com/Alexander2005-rgb/Quiz-application/routes"
	"github.com/Alexander2005-rgb/Quiz-application/storage"
	"github.com/Alexander2005-rgb/Quiz-application/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, storage.NewGormStorage(db), cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
