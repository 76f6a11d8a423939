package main

import (
	"log"

	"skillcompass/backend/config"
	"skillcompass/backend/middleware"
	"skillcompass/backend/routes"
	"skillcompass/backend/services"
	"skillcompass/backend/storage"
	"skillcompass/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
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

	// Initialize store and seed the career-path catalog
	store := storage.NewGormStore(db)
	if err := store.SeedCareerPaths(); err != nil {
		log.Fatalf("Error seeding career paths: %v", err)
	}

	// Generation oracle
	oracle := services.NewChatOracle(cfg, logger)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, store, oracle, cfg, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
