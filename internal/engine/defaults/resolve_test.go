package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"floorplan-api/internal/engine/models"
)

func f(v float64) *float64 { return &v }
func b(v bool) *bool       { return &v }

func TestResolveWall_HardcodedFallback(t *testing.T) {
	r := ResolveWall(models.Wall{}, models.Defaults{})

	assert.Equal(t, 0.0, r.Length)
	assert.Equal(t, 280.0, r.Height)
	assert.Equal(t, 15.0, r.Thickness)
	assert.True(t, r.Exists)
}

func TestResolveWall_PlanDefaults(t *testing.T) {
	d := models.Defaults{
		Wall: &models.WallDefaults{Height: f(300), Thickness: f(20)},
	}

	r := ResolveWall(models.Wall{Length: f(400)}, d)

	assert.Equal(t, 400.0, r.Length)
	assert.Equal(t, 300.0, r.Height)
	assert.Equal(t, 20.0, r.Thickness)
}

func TestResolveWall_ExplicitWinsOverDefaults(t *testing.T) {
	d := models.Defaults{
		Wall: &models.WallDefaults{Height: f(300), Thickness: f(20)},
	}
	w := models.Wall{Length: f(350), Height: f(260), Thickness: f(10), Exists: b(false)}

	r := ResolveWall(w, d)

	assert.Equal(t, 350.0, r.Length)
	assert.Equal(t, 260.0, r.Height)
	assert.Equal(t, 10.0, r.Thickness)
	assert.False(t, r.Exists)
}

// Повторное разрешение полностью заполненной стены ничего не меняет.
func TestResolveWall_Idempotent(t *testing.T) {
	w := models.Wall{Length: f(400), Height: f(280), Thickness: f(15), Exists: b(true)}

	first := ResolveWall(w, models.Defaults{})
	again := ResolveWall(models.Wall{
		Length:    f(first.Length),
		Height:    f(first.Height),
		Thickness: f(first.Thickness),
		Exists:    b(first.Exists),
	}, models.Defaults{})

	assert.Equal(t, first, again)
}

func TestResolveOpening_DoorDefaults(t *testing.T) {
	r := ResolveOpening(models.Opening{Type: "door", Offset: 50}, models.Defaults{})

	assert.Equal(t, 80.0, r.Width)
	assert.Equal(t, 210.0, r.Height)
	assert.Equal(t, 0.0, r.FromFloor)
	assert.Equal(t, 50.0, r.Offset)
}

func TestResolveOpening_WindowDefaults(t *testing.T) {
	r := ResolveOpening(models.Opening{Type: "window", Offset: 200}, models.Defaults{})

	assert.Equal(t, 120.0, r.Width)
	assert.Equal(t, 120.0, r.Height)
	assert.Equal(t, 100.0, r.FromFloor)
}

func TestResolveOpening_PlanDefaults(t *testing.T) {
	d := models.Defaults{
		Door:   &models.DoorDefaults{Width: f(90), Height: f(220)},
		Window: &models.WindowDefaults{Width: f(150), FromFloor: f(110)},
	}

	door := ResolveOpening(models.Opening{Type: "door"}, d)
	assert.Equal(t, 90.0, door.Width)
	assert.Equal(t, 220.0, door.Height)

	win := ResolveOpening(models.Opening{Type: "window"}, d)
	assert.Equal(t, 150.0, win.Width)
	assert.Equal(t, 120.0, win.Height) // высота окна не переопределена
	assert.Equal(t, 110.0, win.FromFloor)
}

// Дверь всегда начинается от пола, явный fromFloor игнорируется.
func TestResolveOpening_DoorPinnedToFloor(t *testing.T) {
	r := ResolveOpening(models.Opening{Type: "door", FromFloor: f(40)}, models.Defaults{})
	assert.Equal(t, 0.0, r.FromFloor)
}
