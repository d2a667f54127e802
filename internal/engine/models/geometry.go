package models

// ============================================================
// Geometry output
// ============================================================

// Сторона комнаты, она же направление проема для рендеров.
const (
	SideNorth = "north"
	SideEast  = "east"
	SideSouth = "south"
	SideWest  = "west"
)

// Sides фиксированный порядок обхода стен комнаты.
var Sides = []string{SideNorth, SideEast, SideSouth, SideWest}

// FloorGeometry плоское дерево для 2D/3D рендеров, все координаты
// уже умножены на scale.
type FloorGeometry struct {
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Rooms  []RoomGeometry `json:"rooms"`
}

type RoomGeometry struct {
	ID     string         `json:"id"`
	Name   string         `json:"name,omitempty"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Walls  []WallGeometry `json:"walls"`
}

type WallGeometry struct {
	Side      string            `json:"side"`
	X1        float64           `json:"x1"`
	Y1        float64           `json:"y1"`
	X2        float64           `json:"x2"`
	Y2        float64           `json:"y2"`
	Length    float64           `json:"length"`
	Height    float64           `json:"height"`
	Thickness float64           `json:"thickness"`
	Exists    bool              `json:"exists"`
	Openings  []OpeningGeometry `json:"openings"`
}

// OpeningGeometry абсолютная позиция проема; Direction нужен рендерам,
// чтобы сориентировать створку двери и остекление.
type OpeningGeometry struct {
	Type      string  `json:"type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	FromFloor float64 `json:"fromFloor"`
	Direction string  `json:"direction"`
	To        string  `json:"to,omitempty"`
}
