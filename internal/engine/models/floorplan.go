package models

// ============================================================
// FloorPlan document
// ============================================================

// DefaultScale применяется, когда документ не задает масштаб.
const DefaultScale = 0.2

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FloorPlan корневой документ плана. Единица измерения (unit) —
// только подпись для UI, расчеты считают в сантиметрах.
type FloorPlan struct {
	Version  string   `json:"version"`
	Name     string   `json:"name"`
	Unit     string   `json:"unit"` // cm | mm | m
	Scale    float64  `json:"scale,omitempty"`
	Defaults Defaults `json:"defaults,omitempty"`
	Floor    Floor    `json:"floor"`
}

type Floor struct {
	Rooms     []Room      `json:"rooms"`
	Furniture []Furniture `json:"furniture,omitempty"`
	Elements  []Element   `json:"elements,omitempty"`
}

// Room четыре именованные стены. Эффективная ширина = max(north, south),
// высота = max(east, west) — рассинхрон длин допустим.
type Room struct {
	ID         string         `json:"id"`
	Name       string         `json:"name,omitempty"`
	Position   Point          `json:"position"`
	Walls      Walls          `json:"walls"`
	Materials  *RoomMaterials `json:"materials,omitempty"`
	HasFloor   *bool          `json:"hasFloor,omitempty"`
	HasCeiling *bool          `json:"hasCeiling,omitempty"`
}

type Walls struct {
	North Wall `json:"north"`
	East  Wall `json:"east"`
	South Wall `json:"south"`
	West  Wall `json:"west"`
}

// Wall опциональные размеры добиваются через defaults.Resolve*.
// Exists=false помечает виртуальную стену: логическая граница без
// физической кладки.
type Wall struct {
	Length    *float64  `json:"length,omitempty"`
	Height    *float64  `json:"height,omitempty"`
	Thickness *float64  `json:"thickness,omitempty"`
	Exists    *bool     `json:"exists,omitempty"`
	Openings  []Opening `json:"openings,omitempty"`
}

// Opening дверь или окно. Offset — расстояние от начала стены,
// выход за длину стены не проверяется.
type Opening struct {
	Type      string   `json:"type"` // door | window
	Offset    float64  `json:"offset"`
	Width     *float64 `json:"width,omitempty"`
	Height    *float64 `json:"height,omitempty"`
	FromFloor *float64 `json:"fromFloor,omitempty"`
	To        string   `json:"to,omitempty"`
}

// ============================================================
// Plan-level defaults
// ============================================================

type Defaults struct {
	Wall   *WallDefaults   `json:"wall,omitempty"`
	Door   *DoorDefaults   `json:"door,omitempty"`
	Window *WindowDefaults `json:"window,omitempty"`
}

type WallDefaults struct {
	Height    *float64 `json:"height,omitempty"`
	Thickness *float64 `json:"thickness,omitempty"`
}

type DoorDefaults struct {
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

type WindowDefaults struct {
	Width     *float64 `json:"width,omitempty"`
	Height    *float64 `json:"height,omitempty"`
	FromFloor *float64 `json:"fromFloor,omitempty"`
}

// ============================================================
// Render-only payloads (движок их не считает)
// ============================================================

type RoomMaterials struct {
	Floor   map[string]any `json:"floor,omitempty"`
	Walls   map[string]any `json:"walls,omitempty"`
	Ceiling map[string]any `json:"ceiling,omitempty"`
}

type Furniture struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Position Point          `json:"position"`
	Rotation float64        `json:"rotation,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
}

type Element struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Position Point          `json:"position"`
	Props    map[string]any `json:"props,omitempty"`
}
