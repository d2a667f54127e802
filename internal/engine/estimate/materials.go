package estimate

import "math"

// ============================================================
// Materials Estimate
// ============================================================

// Фиксированный множитель окрашиваемой площади: внутренние перегородки
// красятся с двух сторон, а в сумме площадей стен комнат учтены один раз.
const paintableAreaFactor = 1.5

type Materials struct {
	Masonry    MasonryEstimate    `json:"masonry"`
	Paint      PaintEstimate      `json:"paint"`
	Flooring   FlooringEstimate   `json:"flooring"`
	Electrical ElectricalEstimate `json:"electrical"`
	Plumbing   PlumbingEstimate   `json:"plumbing"`
}

type MasonryEstimate struct {
	Bricks int `json:"bricks"`
}

type PaintEstimate struct {
	PaintableArea      float64 `json:"paintableArea"` // м²
	WallPaintLiters    int     `json:"wallPaintLiters"`
	CeilingArea        float64 `json:"ceilingArea"` // м²
	CeilingPaintLiters int     `json:"ceilingPaintLiters"`
	PrimerLiters       int     `json:"primerLiters"`
	PuttyKg            int     `json:"puttyKg"`
}

type FlooringEstimate struct {
	NetArea    float64 `json:"netArea"`  // м²
	TileArea   float64 `json:"tileArea"` // м² с запасом, дробное — плитку продают по площади
	GroutKg    int     `json:"groutKg"`
	AdhesiveKg int     `json:"adhesiveKg"`
}

type ElectricalEstimate struct {
	Points     int     `json:"points"`
	WireMeters float64 `json:"wireMeters"`
}

type PlumbingEstimate struct {
	Points     int     `json:"points"`
	PipeMeters float64 `json:"pipeMeters"`
}

func calculateMaterials(stats *FloorPlanStats, cfg *Config) Materials {
	var m Materials

	m.Masonry.Bricks = stats.Totals.Bricks

	// Краска: стены по нетто-площади с множителем 1.5, потолок — по
	// площади пола без множителя.
	paintable := stats.Totals.WallAreaNet * paintableAreaFactor
	m.Paint.PaintableArea = paintable
	m.Paint.WallPaintLiters = ceilDiv(paintable*float64(cfg.Paint.WallCoats), cfg.Paint.CoveragePerLiter)
	m.Paint.CeilingArea = stats.Totals.FloorArea
	m.Paint.CeilingPaintLiters = ceilDiv(stats.Totals.FloorArea*float64(cfg.Paint.CeilingCoats), cfg.Paint.CoveragePerLiter)
	m.Paint.PrimerLiters = ceilDiv(paintable*float64(cfg.Paint.PrimerCoats), cfg.Paint.PrimerCoverage)
	m.Paint.PuttyKg = int(math.Ceil(paintable * cfg.Paint.PuttyAreaShare * cfg.Paint.PuttyKgPerM2))

	// Плитка закупается дробными м², затирка и клей — целыми кг.
	m.Flooring.NetArea = stats.Totals.FloorArea
	m.Flooring.TileArea = stats.Totals.FloorArea * cfg.Flooring.WasteFactor
	m.Flooring.GroutKg = int(math.Ceil(stats.Totals.FloorArea * cfg.Flooring.GroutKgPerM2))
	m.Flooring.AdhesiveKg = int(math.Ceil(stats.Totals.FloorArea * cfg.Flooring.AdhesiveKgPerM2))

	// Точки по типу комнаты, длины — линейная эвристика метров на точку,
	// не трассировка.
	for _, room := range stats.Rooms {
		m.Electrical.Points += pointsFor(cfg.Electrical.PointsPerRoomType, room.Type)
		m.Plumbing.Points += pointsFor(cfg.Plumbing.PointsPerRoomType, room.Type)
	}
	m.Electrical.WireMeters = float64(m.Electrical.Points) * cfg.Electrical.WireMetersPerPoint
	m.Plumbing.PipeMeters = float64(m.Plumbing.Points) * cfg.Plumbing.PipeMetersPerPoint

	return m
}

func pointsFor(table map[RoomType]int, t RoomType) int {
	if n, ok := table[t]; ok {
		return n
	}
	return table[RoomDefault]
}

func ceilDiv(amount, per float64) int {
	if per <= 0 || amount <= 0 {
		return 0
	}
	return int(math.Ceil(amount / per))
}
