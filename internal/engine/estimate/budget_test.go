package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorplan-api/internal/engine/models"
)

func TestCalculateBudget_SingleRoom(t *testing.T) {
	stats := CalculateStats(planWith(rectRoom("r1", 400, 300)), nil)
	budget := stats.Budget

	require.Len(t, budget.Items, 12)
	require.Len(t, budget.Subtotals, 5)

	bricks := budget.Items[0]
	assert.Equal(t, CategoryMasonry, bricks.Category)
	assert.Equal(t, 2058.0, bricks.Quantity)
	assert.InDelta(t, 2058*1.2, bricks.Total, 1e-9)

	// 12 л краски → одно ведро 18 л
	wallPaint := budget.Items[1]
	assert.Equal(t, 1.0, wallPaint.Quantity)
	assert.InDelta(t, 320.0, wallPaint.Total, 1e-9)

	// 48 кг клея → три мешка по 20 кг
	adhesive := budget.Items[7]
	assert.Equal(t, 3.0, adhesive.Quantity)
	assert.InDelta(t, 84.0, adhesive.Total, 1e-9)

	assert.Equal(t, CategoryMasonry, budget.Subtotals[0].Category)
	assert.InDelta(t, 2058*1.2, budget.Subtotals[0].Total, 1e-9)

	var sum float64
	for _, s := range budget.Subtotals {
		sum += s.Total
	}
	assert.InDelta(t, sum, budget.Total, 1e-9)
	assert.InDelta(t, budget.Total/12.0, budget.PerSquareMeter, 1e-9)
}

// Пустой план: на м² должен быть 0, а не NaN/Inf.
func TestCalculateBudget_EmptyPlan(t *testing.T) {
	stats := CalculateStats(&models.FloorPlan{}, nil)

	assert.Equal(t, 0.0, stats.Budget.PerSquareMeter)
	assert.Equal(t, 0.0, stats.Budget.Total)
	assert.False(t, stats.Budget.PerSquareMeter != stats.Budget.PerSquareMeter) // не NaN
}

// Комната без воды не дает сантехнических позиций.
func TestCalculateBudget_NoPlumbingForDryRooms(t *testing.T) {
	stats := CalculateStats(planWith(rectRoom("quarto", 300, 300)), nil)

	assert.Equal(t, 0, stats.Materials.Plumbing.Points)
	assert.InDelta(t, 0.0, stats.Budget.Subtotals[4].Total, 1e-9)
}
