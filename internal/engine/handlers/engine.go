package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v3"

	"floorplan-api/internal/engine/estimate"
	"floorplan-api/internal/engine/export"
	"floorplan-api/internal/engine/geometry"
	"floorplan-api/internal/engine/models"
	"floorplan-api/internal/engine/validation"
)

// ============================================================
// Engine Handlers
// ============================================================

// Движок сам по себе не падает: единственная ошибка на этом слое —
// кривой JSON на входе.

// CalculateGeometry считает геометрию плана для 2D/3D рендеров.
func CalculateGeometry(c fiber.Ctx) error {
	plan, err := parsePlan(c.Body())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid floor plan json"})
	}

	return c.JSON(geometry.Calculate(plan))
}

// ValidatePlan возвращает список проблем плана.
func ValidatePlan(c fiber.Ctx) error {
	plan, err := parsePlan(c.Body())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid floor plan json"})
	}

	issues := validation.Validate(plan)
	log.Printf("[ENGINE] Validated plan %q: %d issues", plan.Name, len(issues))

	return c.JSON(fiber.Map{"issues": issues})
}

type statsRequest struct {
	Plan   models.FloorPlan `json:"plan"`
	Config *estimate.Config `json:"config,omitempty"`
}

// CalculateStats считает статистику, материалы и смету.
// Config в теле опционален, без него берутся коэффициенты по умолчанию.
func CalculateStats(c fiber.Ctx) error {
	req, err := parseStatsRequest(c.Body())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid stats request json"})
	}

	return c.JSON(estimate.CalculateStats(&req.Plan, req.Config))
}

// ExportBudgetXLSX отдает смету плана как xlsx вложение.
func ExportBudgetXLSX(c fiber.Ctx) error {
	req, err := parseStatsRequest(c.Body())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid stats request json"})
	}

	stats := estimate.CalculateStats(&req.Plan, req.Config)

	data, err := export.BudgetXLSX(stats)
	if err != nil {
		log.Printf("[ENGINE] xlsx export error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to build xlsx"})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="orcamento.xlsx"`)
	return c.Send(data)
}

func parsePlan(body []byte) (*models.FloorPlan, error) {
	var plan models.FloorPlan
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func parseStatsRequest(body []byte) (*statsRequest, error) {
	var req statsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
