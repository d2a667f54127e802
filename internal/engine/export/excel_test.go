package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"floorplan-api/internal/engine/estimate"
	"floorplan-api/internal/engine/models"
)

func TestBudgetXLSX(t *testing.T) {
	plan := &models.FloorPlan{
		Scale: 1,
		Floor: models.Floor{
			Rooms: []models.Room{{
				ID: "sala",
				Walls: models.Walls{
					North: models.Wall{Length: ptr(400)},
					East:  models.Wall{Length: ptr(300)},
					South: models.Wall{Length: ptr(400)},
					West:  models.Wall{Length: ptr(300)},
				},
			}},
		},
	}
	stats := estimate.CalculateStats(plan, nil)

	data, err := BudgetXLSX(stats)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Orcamento"}, f.GetSheetList())

	header, err := f.GetCellValue("Orcamento", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Categoria", header)

	first, err := f.GetCellValue("Orcamento", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Tijolo ceramico 9x19", first)

	// Шапка + позиции + пустая строка, дальше подытоги и итог.
	totalRow := 2 + len(stats.Budget.Items) + 1 + len(stats.Budget.Subtotals)
	labelCell, _ := excelize.CoordinatesToCellName(1, totalRow)
	label, err := f.GetCellValue("Orcamento", labelCell)
	require.NoError(t, err)
	assert.Equal(t, "Total", label)
}

func TestBudgetXLSX_EmptyPlan(t *testing.T) {
	stats := estimate.CalculateStats(&models.FloorPlan{}, nil)

	data, err := BudgetXLSX(stats)
	require.NoError(t, err)

	_, err = excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
}

func ptr(v float64) *float64 { return &v }
