package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorplan-api/internal/engine/models"
)

func f(v float64) *float64 { return &v }

func rectRoom(id string, x, y, w, h float64) models.Room {
	return models.Room{
		ID:       id,
		Position: models.Point{X: x, Y: y},
		Walls: models.Walls{
			North: models.Wall{Length: f(w)},
			East:  models.Wall{Length: f(h)},
			South: models.Wall{Length: f(w)},
			West:  models.Wall{Length: f(h)},
		},
	}
}

func TestCalculate_SingleRoom(t *testing.T) {
	plan := &models.FloorPlan{
		Scale: 1,
		Floor: models.Floor{Rooms: []models.Room{rectRoom("r1", 0, 0, 400, 300)}},
	}

	geo := Calculate(plan)

	assert.Equal(t, 400.0, geo.Width)
	assert.Equal(t, 300.0, geo.Height)
	require.Len(t, geo.Rooms, 1)

	room := geo.Rooms[0]
	assert.Equal(t, 400.0, room.Width)
	assert.Equal(t, 300.0, room.Height)
	require.Len(t, room.Walls, 4)

	north := room.Walls[0]
	assert.Equal(t, models.SideNorth, north.Side)
	assert.Equal(t, [4]float64{0, 0, 400, 0}, [4]float64{north.X1, north.Y1, north.X2, north.Y2})

	east := room.Walls[1]
	assert.Equal(t, [4]float64{400, 0, 400, 300}, [4]float64{east.X1, east.Y1, east.X2, east.Y2})

	south := room.Walls[2]
	assert.Equal(t, [4]float64{0, 300, 400, 300}, [4]float64{south.X1, south.Y1, south.X2, south.Y2})

	west := room.Walls[3]
	assert.Equal(t, [4]float64{0, 0, 0, 300}, [4]float64{west.X1, west.Y1, west.X2, west.Y2})
}

func TestCalculate_ScaleApplied(t *testing.T) {
	plan := &models.FloorPlan{
		Scale: 0.5,
		Floor: models.Floor{Rooms: []models.Room{rectRoom("r1", 100, 0, 400, 300)}},
	}

	geo := Calculate(plan)

	assert.Equal(t, 250.0, geo.Width) // (100+400)*0.5
	assert.Equal(t, 150.0, geo.Height)
	assert.Equal(t, 50.0, geo.Rooms[0].X)
	assert.Equal(t, 200.0, geo.Rooms[0].Width)
}

func TestCalculate_DefaultScale(t *testing.T) {
	plan := &models.FloorPlan{
		Floor: models.Floor{Rooms: []models.Room{rectRoom("r1", 0, 0, 1000, 1000)}},
	}

	geo := Calculate(plan)
	assert.Equal(t, 200.0, geo.Width) // scale 0.2 по умолчанию
}

func TestCalculate_Openings(t *testing.T) {
	room := rectRoom("r1", 0, 0, 400, 300)
	room.Walls.North.Openings = []models.Opening{
		{Type: "door", Offset: 50, Width: f(80)},
		{Type: "window", Offset: 200, Width: f(120)},
	}

	plan := &models.FloorPlan{
		Scale: 1,
		Floor: models.Floor{Rooms: []models.Room{room}},
	}

	geo := Calculate(plan)
	north := geo.Rooms[0].Walls[0]
	require.Len(t, north.Openings, 2)

	door := north.Openings[0]
	assert.Equal(t, 50.0, door.X)
	assert.Equal(t, 0.0, door.Y)
	assert.Equal(t, 80.0, door.Width)
	assert.Equal(t, models.SideNorth, door.Direction)
	assert.Equal(t, 0.0, door.FromFloor)

	window := north.Openings[1]
	assert.Equal(t, 200.0, window.X)
	assert.Equal(t, models.SideNorth, window.Direction)
	assert.Equal(t, 100.0, window.FromFloor) // подоконник по умолчанию
}

func TestCalculate_OpeningOnVerticalWall(t *testing.T) {
	room := rectRoom("r1", 100, 50, 400, 300)
	room.Walls.East.Openings = []models.Opening{{Type: "window", Offset: 120}}

	plan := &models.FloorPlan{
		Scale: 1,
		Floor: models.Floor{Rooms: []models.Room{room}},
	}

	geo := Calculate(plan)
	east := geo.Rooms[0].Walls[1]
	require.Len(t, east.Openings, 1)

	assert.Equal(t, 500.0, east.Openings[0].X) // правая грань
	assert.Equal(t, 170.0, east.Openings[0].Y) // position.y + offset
	assert.Equal(t, models.SideEast, east.Openings[0].Direction)
}

// Проем за пределами стены не клиппится и не считается ошибкой.
func TestCalculate_OpeningBeyondWallEnd(t *testing.T) {
	room := rectRoom("r1", 0, 0, 400, 300)
	room.Walls.North.Openings = []models.Opening{{Type: "door", Offset: 390}}

	plan := &models.FloorPlan{
		Scale: 1,
		Floor: models.Floor{Rooms: []models.Room{room}},
	}

	geo := Calculate(plan)
	assert.Equal(t, 390.0, geo.Rooms[0].Walls[0].Openings[0].X)
}

func TestCalculate_MismatchedWallLengths(t *testing.T) {
	room := rectRoom("r1", 0, 0, 400, 300)
	room.Walls.South.Length = f(380) // рассинхрон: берется max

	plan := &models.FloorPlan{
		Scale: 1,
		Floor: models.Floor{Rooms: []models.Room{room}},
	}

	geo := Calculate(plan)
	assert.Equal(t, 400.0, geo.Rooms[0].Width)
}

func TestCalculate_EmptyPlan(t *testing.T) {
	geo := Calculate(&models.FloorPlan{Scale: 1})

	assert.Equal(t, 0.0, geo.Width)
	assert.Equal(t, 0.0, geo.Height)
	assert.Empty(t, geo.Rooms)
}
