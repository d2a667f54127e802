package estimate

import (
	"math"
	"strings"

	"floorplan-api/internal/engine/defaults"
	"floorplan-api/internal/engine/geometry"
	"floorplan-api/internal/engine/models"
)

// ============================================================
// Statistics Engine
// ============================================================

// Площади считаются в см² и переводятся в м² делением на 10000.
// Перевод применяется независимо от заявленного unit плана — известное
// ограничение, план в метрах даст смету, сбитую на порядки.
const cm2PerM2 = 10000.0

// WallStats статистика одной стены. Для exists=false площади считаются,
// но кирпич равен нулю и в суммы стена не попадает.
type WallStats struct {
	Side                string  `json:"side"`
	Exists              bool    `json:"exists"`
	Area                float64 `json:"area"`                // м², брутто
	OpeningsArea        float64 `json:"openingsArea"`        // м²
	AreaWithoutOpenings float64 `json:"areaWithoutOpenings"` // м², нетто
	Bricks              int     `json:"bricks"`
}

type RoomStats struct {
	ID          string      `json:"id"`
	Name        string      `json:"name,omitempty"`
	Type        RoomType    `json:"type"`
	FloorArea   float64     `json:"floorArea"`   // м²
	Perimeter   float64     `json:"perimeter"`   // м
	WallArea    float64     `json:"wallArea"`    // м², только существующие стены
	WallAreaNet float64     `json:"wallAreaNet"` // м², за вычетом проемов
	Volume      float64     `json:"volume"`      // м³
	Doors       int         `json:"doors"`
	Windows     int         `json:"windows"`
	Bricks      int         `json:"bricks"`
	Walls       []WallStats `json:"walls"`
}

type Totals struct {
	Rooms       int     `json:"rooms"`
	FloorArea   float64 `json:"floorArea"`
	Perimeter   float64 `json:"perimeter"`
	WallArea    float64 `json:"wallArea"`
	WallAreaNet float64 `json:"wallAreaNet"`
	Volume      float64 `json:"volume"`
	Doors       int     `json:"doors"`
	Windows     int     `json:"windows"`
	Bricks      int     `json:"bricks"`
}

type FloorPlanStats struct {
	Rooms     []RoomStats `json:"rooms"`
	Totals    Totals      `json:"totals"`
	Materials Materials   `json:"materials"`
	Budget    Budget      `json:"budget"`
}

// CalculateStats считает статистику, материалы и смету по плану.
// Чистая функция: без состояния, повторный вызов дает идентичный результат.
// Кривые входные числа (NaN, отрицательные длины) не отбраковываются —
// вырожденные комнаты ловит движок валидации отдельным проходом.
func CalculateStats(plan *models.FloorPlan, cfg *Config) *FloorPlanStats {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	stats := &FloorPlanStats{
		Rooms: make([]RoomStats, 0, len(plan.Floor.Rooms)),
	}

	for _, room := range plan.Floor.Rooms {
		rs := calculateRoomStats(room, plan.Defaults, cfg)
		stats.Rooms = append(stats.Rooms, rs)

		stats.Totals.Rooms++
		stats.Totals.FloorArea += rs.FloorArea
		stats.Totals.Perimeter += rs.Perimeter
		stats.Totals.WallArea += rs.WallArea
		stats.Totals.WallAreaNet += rs.WallAreaNet
		stats.Totals.Volume += rs.Volume
		stats.Totals.Doors += rs.Doors
		stats.Totals.Windows += rs.Windows
		stats.Totals.Bricks += rs.Bricks
	}

	stats.Materials = calculateMaterials(stats, cfg)
	stats.Budget = calculateBudget(stats, cfg)
	return stats
}

func calculateRoomStats(room models.Room, d models.Defaults, cfg *Config) RoomStats {
	width, height := geometry.EffectiveSize(room, d)

	rs := RoomStats{
		ID:    room.ID,
		Name:  room.Name,
		Type:  InferRoomType(room.ID, room.Name),
		Walls: make([]WallStats, 0, 4),
	}

	if width > 0 && height > 0 {
		rs.FloorArea = width * height / cm2PerM2
	}

	var maxHeight float64

	for _, side := range models.Sides {
		resolved := defaults.ResolveWall(sideWall(room, side), d)
		ws := calculateWallStats(side, resolved, d, cfg)
		rs.Walls = append(rs.Walls, ws)

		rs.Perimeter += resolved.Length / 100
		if resolved.Height > maxHeight {
			maxHeight = resolved.Height
		}

		if resolved.Exists {
			rs.WallArea += ws.Area
			rs.WallAreaNet += ws.AreaWithoutOpenings
			rs.Bricks += ws.Bricks
		}

		for _, opening := range resolved.Openings {
			switch opening.Type {
			case "window":
				rs.Windows++
			default:
				rs.Doors++
			}
		}
	}

	rs.Volume = rs.FloorArea * maxHeight / 100
	return rs
}

func calculateWallStats(side string, w defaults.ResolvedWall, d models.Defaults, cfg *Config) WallStats {
	grossCm2 := w.Length * w.Height

	var openingsCm2 float64
	for _, opening := range w.Openings {
		ro := defaults.ResolveOpening(opening, d)
		openingsCm2 += ro.Width * ro.Height
	}

	netCm2 := grossCm2 - openingsCm2

	ws := WallStats{
		Side:                side,
		Exists:              w.Exists,
		Area:                grossCm2 / cm2PerM2,
		OpeningsArea:        openingsCm2 / cm2PerM2,
		AreaWithoutOpenings: netCm2 / cm2PerM2,
	}

	if w.Exists {
		ws.Bricks = brickCount(netCm2, cfg.Masonry)
	}

	return ws
}

// brickCount площадь нетто в см², деленная на площадь кирпича со швом,
// с двойным округлением вверх: сначала целые кирпичи, потом запас.
func brickCount(netCm2 float64, m MasonryConfig) int {
	unit := (m.BrickWidth + m.MortarThickness) * (m.BrickHeight + m.MortarThickness)
	if unit <= 0 || netCm2 <= 0 {
		return 0
	}
	bricks := math.Ceil(netCm2 / unit)
	return int(math.Ceil(bricks * m.WasteFactor))
}

// InferRoomType тип комнаты по подстроке в id, затем в name,
// без учета регистра. Эвристика, не настраивается на комнату.
func InferRoomType(id, name string) RoomType {
	for _, field := range []string{id, name} {
		lower := strings.ToLower(field)
		for _, kw := range roomTypeKeywords {
			if strings.Contains(lower, kw.keyword) {
				return kw.roomType
			}
		}
	}
	return RoomDefault
}

func sideWall(room models.Room, side string) models.Wall {
	switch side {
	case models.SideNorth:
		return room.Walls.North
	case models.SideEast:
		return room.Walls.East
	case models.SideSouth:
		return room.Walls.South
	default:
		return room.Walls.West
	}
}
