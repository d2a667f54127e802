package estimate

import "math"

// ============================================================
// Budget
// ============================================================

const (
	CategoryMasonry    = "masonry"
	CategoryPaint      = "paint"
	CategoryFlooring   = "flooring"
	CategoryElectrical = "electrical"
	CategoryPlumbing   = "plumbing"
)

type BudgetItem struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type Budget struct {
	Items          []BudgetItem    `json:"items"`
	Subtotals      []CategoryTotal `json:"subtotals"`
	Total          float64         `json:"total"`
	PerSquareMeter float64         `json:"perSquareMeter"`
}

// calculateBudget переводит количества в закупочные единицы и расценивает
// построчно. Подытоги по категориям в фиксированном порядке.
func calculateBudget(stats *FloorPlanStats, cfg *Config) Budget {
	m := stats.Materials
	p := cfg.Prices

	items := []BudgetItem{
		line(CategoryMasonry, "Tijolo ceramico 9x19", float64(m.Masonry.Bricks), "un", p.Brick),

		line(CategoryPaint, "Tinta acrilica lata 18L", packs(float64(m.Paint.WallPaintLiters), 18), "un", p.PaintCan18L),
		line(CategoryPaint, "Tinta para teto lata 18L", packs(float64(m.Paint.CeilingPaintLiters), 18), "un", p.PaintCan18L),
		line(CategoryPaint, "Selador acrilico lata 18L", packs(float64(m.Paint.PrimerLiters), 18), "un", p.PrimerCan18L),
		line(CategoryPaint, "Massa corrida saco 25kg", packs(float64(m.Paint.PuttyKg), 25), "un", p.PuttySack25Kg),

		line(CategoryFlooring, "Piso ceramico", m.Flooring.TileArea, "m2", p.TilePerM2),
		line(CategoryFlooring, "Rejunte", float64(m.Flooring.GroutKg), "kg", p.GroutPerKg),
		line(CategoryFlooring, "Argamassa colante saco 20kg", packs(float64(m.Flooring.AdhesiveKg), 20), "un", p.AdhesiveSack20Kg),

		line(CategoryElectrical, "Ponto eletrico", float64(m.Electrical.Points), "un", p.ElectricalPoint),
		line(CategoryElectrical, "Fio 2.5mm", m.Electrical.WireMeters, "m", p.WirePerMeter),

		line(CategoryPlumbing, "Ponto hidraulico", float64(m.Plumbing.Points), "un", p.PlumbingPoint),
		line(CategoryPlumbing, "Tubo PVC barra 6m", packs(m.Plumbing.PipeMeters, 6), "un", p.PipeBar6M),
	}

	budget := Budget{Items: items}

	order := []string{CategoryMasonry, CategoryPaint, CategoryFlooring, CategoryElectrical, CategoryPlumbing}
	byCategory := make(map[string]float64, len(order))
	for _, item := range items {
		byCategory[item.Category] += item.Total
	}
	for _, category := range order {
		budget.Subtotals = append(budget.Subtotals, CategoryTotal{Category: category, Total: byCategory[category]})
		budget.Total += byCategory[category]
	}

	// Защита от деления на ноль: пустой план дает 0, а не NaN.
	if stats.Totals.FloorArea > 0 {
		budget.PerSquareMeter = budget.Total / stats.Totals.FloorArea
	}

	return budget
}

func line(category, description string, quantity float64, unit string, unitPrice float64) BudgetItem {
	return BudgetItem{
		Category:    category,
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		UnitPrice:   unitPrice,
		Total:       quantity * unitPrice,
	}
}

// packs количество закупочных упаковок, округленное вверх.
func packs(amount, per float64) float64 {
	if amount <= 0 {
		return 0
	}
	return math.Ceil(amount / per)
}
