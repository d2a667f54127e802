package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"floorplan-api/internal/engine/estimate"
)

// ============================================================
// Budget XLSX Export
// ============================================================

var budgetHeader = []string{"Categoria", "Descricao", "Quantidade", "Unidade", "Preco unitario", "Total"}

// BudgetXLSX собирает смету в xlsx: позиции, подытоги по категориям,
// общий итог и цена за м².
func BudgetXLSX(stats *estimate.FloorPlanStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Orcamento"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, title := range budgetHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	row := 2
	for _, item := range stats.Budget.Items {
		values := []any{item.Category, item.Description, item.Quantity, item.Unit, item.UnitPrice, item.Total}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write item row: %w", err)
			}
		}
		row++
	}

	row++ // пустая строка перед итогами
	for _, subtotal := range stats.Budget.Subtotals {
		setRow(f, sheet, row, "Subtotal "+subtotal.Category, subtotal.Total)
		row++
	}
	setRow(f, sheet, row, "Total", stats.Budget.Total)
	setRow(f, sheet, row+1, "Total por m2", stats.Budget.PerSquareMeter)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, label string, value float64) {
	labelCell, _ := excelize.CoordinatesToCellName(1, row)
	valueCell, _ := excelize.CoordinatesToCellName(6, row)
	f.SetCellValue(sheet, labelCell, label)
	f.SetCellValue(sheet, valueCell, value)
}
