package geometry

import (
	"floorplan-api/internal/engine/defaults"
	"floorplan-api/internal/engine/models"
)

// ============================================================
// Geometry Calculator
// ============================================================

// Calculate превращает относительное описание комнат в абсолютные
// отрезки стен и позиции проемов, умноженные на scale плана.
// Чистая функция: план не мутируется, пустой план дает нулевой
// (но валидный) результат.
func Calculate(plan *models.FloorPlan) *models.FloorGeometry {
	scale := plan.Scale
	if scale <= 0 {
		scale = models.DefaultScale
	}

	geo := &models.FloorGeometry{
		Rooms: make([]models.RoomGeometry, 0, len(plan.Floor.Rooms)),
	}

	var maxX, maxY float64

	for _, room := range plan.Floor.Rooms {
		rg := calculateRoom(room, plan.Defaults, scale)
		geo.Rooms = append(geo.Rooms, rg)

		width, height := EffectiveSize(room, plan.Defaults)
		if right := room.Position.X + width; right > maxX {
			maxX = right
		}
		if bottom := room.Position.Y + height; bottom > maxY {
			maxY = bottom
		}
	}

	geo.Width = maxX * scale
	geo.Height = maxY * scale
	return geo
}

// EffectiveSize эффективный размер комнаты: ширина = max(north, south),
// высота = max(east, west). Рассинхрон длин переживается, рендер берет max.
func EffectiveSize(room models.Room, d models.Defaults) (width, height float64) {
	north := defaults.ResolveWall(room.Walls.North, d)
	east := defaults.ResolveWall(room.Walls.East, d)
	south := defaults.ResolveWall(room.Walls.South, d)
	west := defaults.ResolveWall(room.Walls.West, d)

	width = max(north.Length, south.Length)
	height = max(east.Length, west.Length)
	return width, height
}

// WallSegment отрезок стороны комнаты в единицах плана (без scale).
type WallSegment struct {
	X1, Y1, X2, Y2 float64
}

// SideSegment отрезок стороны: north — верхняя грань, south — нижняя,
// east — правая, west — левая.
func SideSegment(room models.Room, side string, width, height float64) WallSegment {
	x, y := room.Position.X, room.Position.Y

	switch side {
	case models.SideNorth:
		return WallSegment{X1: x, Y1: y, X2: x + width, Y2: y}
	case models.SideEast:
		return WallSegment{X1: x + width, Y1: y, X2: x + width, Y2: y + height}
	case models.SideSouth:
		return WallSegment{X1: x, Y1: y + height, X2: x + width, Y2: y + height}
	default: // west
		return WallSegment{X1: x, Y1: y, X2: x, Y2: y + height}
	}
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

func calculateRoom(room models.Room, d models.Defaults, scale float64) models.RoomGeometry {
	width, height := EffectiveSize(room, d)

	rg := models.RoomGeometry{
		ID:     room.ID,
		Name:   room.Name,
		X:      room.Position.X * scale,
		Y:      room.Position.Y * scale,
		Width:  width * scale,
		Height: height * scale,
		Walls:  make([]models.WallGeometry, 0, 4),
	}

	for _, side := range models.Sides {
		wall := sideWall(room, side)
		resolved := defaults.ResolveWall(wall, d)
		seg := SideSegment(room, side, width, height)

		wg := models.WallGeometry{
			Side:      side,
			X1:        seg.X1 * scale,
			Y1:        seg.Y1 * scale,
			X2:        seg.X2 * scale,
			Y2:        seg.Y2 * scale,
			Length:    resolved.Length * scale,
			Height:    resolved.Height,
			Thickness: resolved.Thickness * scale,
			Exists:    resolved.Exists,
			Openings:  make([]models.OpeningGeometry, 0, len(resolved.Openings)),
		}

		for _, opening := range resolved.Openings {
			ro := defaults.ResolveOpening(opening, d)
			og := models.OpeningGeometry{
				Type:      ro.Type,
				Width:     ro.Width * scale,
				Height:    ro.Height,
				FromFloor: ro.FromFloor,
				Direction: side,
				To:        ro.To,
			}

			// Смещение проецируется на ось стороны; выход за длину
			// стены не клиппится — это видно только на рендере.
			switch side {
			case models.SideNorth, models.SideSouth:
				og.X = (room.Position.X + ro.Offset) * scale
				og.Y = seg.Y1 * scale
			default:
				og.X = seg.X1 * scale
				og.Y = (room.Position.Y + ro.Offset) * scale
			}

			wg.Openings = append(wg.Openings, og)
		}

		rg.Walls = append(rg.Walls, wg)
	}

	return rg
}
