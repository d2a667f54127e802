package validation

import (
	"fmt"
	"math"

	"floorplan-api/internal/engine/defaults"
	"floorplan-api/internal/engine/geometry"
	"floorplan-api/internal/engine/models"
)

// ============================================================
// Validation Engine
// ============================================================

// Допуск в единицах плана: стены, которые просто касаются,
// не считаются пересечением или дублем.
const tolerance = 1.0

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type IssueType string

const (
	TypeInvalidDimension IssueType = "invalid-dimension"
	TypeOverlap          IssueType = "overlap"
	TypeDuplicateWall    IssueType = "duplicate-wall"
)

// Rect прямоугольник для подсветки проблемной зоны, в единицах плана.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Issue найденная проблема. ID детерминирован: одинаковый вход
// дает одинаковый набор и порядок проблем.
type Issue struct {
	ID       string    `json:"id"`
	Severity Severity  `json:"severity"`
	Type     IssueType `json:"type"`
	Message  string    `json:"message"`
	RoomIDs  []string  `json:"roomIds"`
	Detail   *Rect     `json:"detail,omitempty"`
}

// Validate проверяет план: вырожденные размеры, пересечения комнат,
// задвоенные стены. Порядок фиксированный — по категориям, внутри
// категории по порядку обхода комнат и пар.
func Validate(plan *models.FloorPlan) []Issue {
	issues := make([]Issue, 0)
	issues = append(issues, checkDimensions(plan)...)
	issues = append(issues, checkOverlaps(plan)...)
	issues = append(issues, checkDuplicateWalls(plan)...)
	return issues
}

// --- invalid-dimension ---

func checkDimensions(plan *models.FloorPlan) []Issue {
	var issues []Issue

	for _, room := range plan.Floor.Rooms {
		width, height := geometry.EffectiveSize(room, plan.Defaults)
		if width > 0 && height > 0 {
			continue
		}

		issues = append(issues, Issue{
			ID:       fmt.Sprintf("invalid-dimension:%s", room.ID),
			Severity: SeverityError,
			Type:     TypeInvalidDimension,
			Message:  fmt.Sprintf("room %q has invalid dimensions %.0fx%.0f", roomLabel(room), width, height),
			RoomIDs:  []string{room.ID},
		})
	}

	return issues
}

// --- overlap ---

// Грубая проверка по bounding box: комнаты с вырезами не моделируются,
// ложные срабатывания на касающихся стенах гасятся только допуском.
func checkOverlaps(plan *models.FloorPlan) []Issue {
	var issues []Issue
	rooms := plan.Floor.Rooms

	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			a, b := rooms[i], rooms[j]
			aw, ah := geometry.EffectiveSize(a, plan.Defaults)
			bw, bh := geometry.EffectiveSize(b, plan.Defaults)

			ix := math.Max(a.Position.X, b.Position.X)
			iy := math.Max(a.Position.Y, b.Position.Y)
			iw := math.Min(a.Position.X+aw, b.Position.X+bw) - ix
			ih := math.Min(a.Position.Y+ah, b.Position.Y+bh) - iy

			if iw <= tolerance || ih <= tolerance {
				continue
			}

			issues = append(issues, Issue{
				ID:       fmt.Sprintf("overlap:%s:%s", a.ID, b.ID),
				Severity: SeverityError,
				Type:     TypeOverlap,
				Message:  fmt.Sprintf("rooms %q and %q overlap", roomLabel(a), roomLabel(b)),
				RoomIDs:  []string{a.ID, b.ID},
				Detail:   &Rect{X: ix, Y: iy, Width: iw, Height: ih},
			})
		}
	}

	return issues
}

// --- duplicate-wall ---

type wallSegment struct {
	roomID     string
	side       string
	horizontal bool
	constant   float64 // фиксированная координата (y для горизонтальных)
	start, end float64 // диапазон по другой оси
}

// Виртуальные стены (exists=false) пропускаются: пометка exists=false —
// это явное решение пользователя про общую стену, предупреждать нечего.
func checkDuplicateWalls(plan *models.FloorPlan) []Issue {
	var segments []wallSegment

	for _, room := range plan.Floor.Rooms {
		width, height := geometry.EffectiveSize(room, plan.Defaults)

		for _, side := range models.Sides {
			resolved := defaults.ResolveWall(sideWall(room, side), plan.Defaults)
			if !resolved.Exists {
				continue
			}

			seg := geometry.SideSegment(room, side, width, height)
			horizontal := side == models.SideNorth || side == models.SideSouth

			ws := wallSegment{roomID: room.ID, side: side, horizontal: horizontal}
			if horizontal {
				ws.constant = seg.Y1
				ws.start, ws.end = seg.X1, seg.X2
			} else {
				ws.constant = seg.X1
				ws.start, ws.end = seg.Y1, seg.Y2
			}
			segments = append(segments, ws)
		}
	}

	var issues []Issue

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			a, b := segments[i], segments[j]
			if a.roomID == b.roomID || a.horizontal != b.horizontal {
				continue
			}
			if math.Abs(a.constant-b.constant) > tolerance {
				continue
			}

			overlap := math.Min(a.end, b.end) - math.Max(a.start, b.start)
			if overlap <= tolerance {
				continue
			}

			issues = append(issues, Issue{
				ID:       fmt.Sprintf("duplicate-wall:%s:%s:%s:%s", a.roomID, a.side, b.roomID, b.side),
				Severity: SeverityWarning,
				Type:     TypeDuplicateWall,
				Message: fmt.Sprintf("wall %s of room %q coincides with wall %s of room %q",
					a.side, a.roomID, b.side, b.roomID),
				RoomIDs: []string{a.roomID, b.roomID},
			})
		}
	}

	return issues
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

func roomLabel(room models.Room) string {
	if room.Name != "" {
		return room.Name
	}
	return room.ID
}
