package routes

import (
	"log"

	"skillcompass/backend/config"
	"skillcompass/backend/controllers"
	"skillcompass/backend/middleware"
	"skillcompass/backend/services"
	"skillcompass/backend/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, store storage.Store, oracle services.Oracle, cfg *config.Config, logger *log.Logger) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)

	// Roadmap routes
	roadmapService := services.NewRoadmapService(store, oracle, logger)
	gate := services.NewAccessGate(store)

	roadmapController := controllers.NewRoadmapController(roadmapService, gate, store, cfg)
	roadmaps := app.Group("/api/roadmaps", authMiddleware)
	roadmaps.Post("/generate", roadmapController.Generate)
	roadmaps.Get("/", roadmapController.List)
	roadmaps.Get("/:id/progress", roadmapController.GetProgress)
	roadmaps.Get("/:id", roadmapController.Get)
	roadmaps.Delete("/:id", roadmapController.Delete)

	// Skill routes
	skillController := controllers.NewSkillController(gate, store, cfg)
	app.Patch("/api/skills/:id/status", authMiddleware, skillController.UpdateStatus)

	// Career path catalog, readable without a session
	careerPathController := controllers.NewCareerPathController(store)
	app.Get("/api/career-paths", careerPathController.List)

	// Progress routes
	progressController := controllers.NewProgressController(store, cfg)
	app.Get("/api/progress/overview", authMiddleware, progressController.GetOverview)
}
