package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"floorplan-api/internal/common/config"
	"floorplan-api/internal/common/middleware"
	"floorplan-api/internal/plans/handlers"
	"floorplan-api/internal/plans/repository"
	"floorplan-api/internal/plans/service"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Plans Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3002"
	}

	dbPath := config.Getenv("PLANS_DB_PATH", "data/db/plans.db")
	db, err := repository.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init("migrations/001_init_plans.sql"); err != nil {
		log.Fatalf("init db: %v", err)
	}

	fileStorage := service.NewFileStorage(config.Getenv("PLANS_STORAGE_ROOT", "data/projects"))
	engineURL := config.Getenv("ENGINE_URL", "http://localhost:3001")
	plansHandler := handlers.NewPlansHandler(repo, fileStorage, engineURL)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Plans Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Plans Routes
	// ============================================================

	app.Post("/projects", plansHandler.CreateProject)
	app.Get("/projects", plansHandler.ListProjects)
	app.Get("/projects/:id", plansHandler.GetProject)
	app.Delete("/projects/:id", plansHandler.DeleteProject)

	app.Post("/projects/:id/versions", plansHandler.SaveVersion)
	app.Get("/projects/:id/versions", plansHandler.ListVersions)
	app.Get("/projects/:id/versions/:vid", plansHandler.GetVersion)
	app.Get("/projects/:id/plan", plansHandler.GetPlan)

	app.Get("/projects/:id/settings", plansHandler.GetSettings)
	app.Put("/projects/:id/settings", plansHandler.PutSettings)

	app.Post("/projects/:id/import", plansHandler.ImportPlan)
	app.Get("/projects/:id/export", plansHandler.ExportPlan)
	app.Get("/projects/:id/budget", plansHandler.GetBudget)
	app.Get("/projects/:id/budget/xlsx", plansHandler.GetBudgetXLSX)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Plans Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
