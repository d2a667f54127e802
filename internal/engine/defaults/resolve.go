package defaults

import (
	"floorplan-api/internal/engine/models"
)

// ============================================================
// Defaults Resolver
// ============================================================

// Хардкод-константы последнего уровня, в единицах плана (обычно см).
const (
	WallHeight    = 280.0
	WallThickness = 15.0

	DoorWidth  = 80.0
	DoorHeight = 210.0

	WindowWidth  = 120.0
	WindowHeight = 120.0
	WindowSill   = 100.0
)

// ResolvedWall стена со всеми заполненными полями.
type ResolvedWall struct {
	Length    float64
	Height    float64
	Thickness float64
	Exists    bool
	Openings  []models.Opening
}

// ResolvedOpening проем со всеми заполненными полями.
type ResolvedOpening struct {
	Type      string
	Offset    float64
	Width     float64
	Height    float64
	FromFloor float64
	To        string
}

// ResolveWall добивает стену по цепочке: явное значение → defaults плана →
// константа. Длина без значения остается 0 (вырожденная стена),
// её ловит движок валидации. Geometry, validation и estimate обязаны
// звать именно эту функцию, чтобы не разойтись в размерах.
func ResolveWall(w models.Wall, d models.Defaults) ResolvedWall {
	r := ResolvedWall{
		Length:    0,
		Height:    WallHeight,
		Thickness: WallThickness,
		Exists:    true,
		Openings:  w.Openings,
	}

	if d.Wall != nil {
		if d.Wall.Height != nil {
			r.Height = *d.Wall.Height
		}
		if d.Wall.Thickness != nil {
			r.Thickness = *d.Wall.Thickness
		}
	}

	if w.Length != nil {
		r.Length = *w.Length
	}
	if w.Height != nil {
		r.Height = *w.Height
	}
	if w.Thickness != nil {
		r.Thickness = *w.Thickness
	}
	if w.Exists != nil {
		r.Exists = *w.Exists
	}

	return r
}

// ResolveOpening добивает проем по той же цепочке. Двери всегда от пола.
func ResolveOpening(o models.Opening, d models.Defaults) ResolvedOpening {
	r := ResolvedOpening{
		Type:   o.Type,
		Offset: o.Offset,
		To:     o.To,
	}

	switch o.Type {
	case "window":
		r.Width = WindowWidth
		r.Height = WindowHeight
		r.FromFloor = WindowSill
		if d.Window != nil {
			if d.Window.Width != nil {
				r.Width = *d.Window.Width
			}
			if d.Window.Height != nil {
				r.Height = *d.Window.Height
			}
			if d.Window.FromFloor != nil {
				r.FromFloor = *d.Window.FromFloor
			}
		}
	default: // door
		r.Width = DoorWidth
		r.Height = DoorHeight
		r.FromFloor = 0
		if d.Door != nil {
			if d.Door.Width != nil {
				r.Width = *d.Door.Width
			}
			if d.Door.Height != nil {
				r.Height = *d.Door.Height
			}
		}
	}

	if o.Width != nil {
		r.Width = *o.Width
	}
	if o.Height != nil {
		r.Height = *o.Height
	}
	if o.FromFloor != nil && o.Type != "door" {
		r.FromFloor = *o.FromFloor
	}

	return r
}
