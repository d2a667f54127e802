package main

import (
	"fmt"
	"log"
	"time"

	"floorplan-api/internal/common/config"
	"floorplan-api/internal/common/middleware"
	"floorplan-api/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "API Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.CORS())
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
	// API Routes
	// ============================================================

	api := app.Group("/api/v1")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Floorplan API v1",
			"status":  "ok",
		})
	})

	// ============================================================
	// Service Routes (Proxy)
	// ============================================================

	// Engine Service: геометрия, валидация, смета
	engineURL := config.Getenv("ENGINE_URL", "http://localhost:3001")
	api.Post("/geometry", proxy.ProxyTo(engineURL+"/geometry"))
	api.Post("/validate", proxy.ProxyTo(engineURL+"/validate"))
	api.Post("/stats", proxy.ProxyTo(engineURL+"/stats"))
	api.Post("/stats/export", proxy.ProxyTo(engineURL+"/stats/export"))

	// Plans Service: проекты, версии, настройки, импорт/экспорт
	plansURL := config.Getenv("PLANS_URL", "http://localhost:3002")
	api.Post("/projects", proxy.ProxyTo(plansURL+"/projects"))
	api.Get("/projects", proxy.ProxyTo(plansURL+"/projects"))
	api.Get("/projects/:id", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s", plansURL, c.Params("id")))
	})
	api.Delete("/projects/:id", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s", plansURL, c.Params("id")))
	})
	api.Post("/projects/:id/versions", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s/versions", plansURL, c.Params("id")))
	})
	api.Get("/projects/:id/versions", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s/versions", plansURL, c.Params("id")))
	})
	api.Get("/projects/:id/versions/:vid", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s/versions/%s", plansURL, c.Params("id"), c.Params("vid")))
	})
	api.Get("/projects/:id/plan", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s/plan", plansURL, c.Params("id")))
	})
	api.Get("/projects/:id/settings", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s/settings", plansURL, c.Params("id")))
	})
	api.Put("/projects/:id/settings", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s/settings", plansURL, c.Params("id")))
	})
	api.Post("/projects/:id/import", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s/import", plansURL, c.Params("id")))
	})
	api.Get("/projects/:id/export", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s/export", plansURL, c.Params("id")))
	})
	api.Get("/projects/:id/budget", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s/budget", plansURL, c.Params("id")))
	})
	api.Get("/projects/:id/budget/xlsx", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/projects/%s/budget/xlsx", plansURL, c.Params("id")))
	})

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting API Gateway on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Proxying engine to %s, plans to %s", engineURL, plansURL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
