package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorplan-api/internal/engine/models"
)

func f(v float64) *float64 { return &v }
func b(v bool) *bool       { return &v }

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

func planWith(rooms ...models.Room) *models.FloorPlan {
	return &models.FloorPlan{Scale: 1, Floor: models.Floor{Rooms: rooms}}
}

func TestValidate_CleanPlan(t *testing.T) {
	issues := Validate(planWith(
		rectRoom("a", 0, 0, 300, 300),
		rectRoom("b", 400, 0, 300, 300),
	))
	assert.Empty(t, issues)
}

func TestValidate_InvalidDimension(t *testing.T) {
	room := rectRoom("a", 0, 0, 0, 300)

	issues := Validate(planWith(room))
	require.Len(t, issues, 1)

	assert.Equal(t, TypeInvalidDimension, issues[0].Type)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, []string{"a"}, issues[0].RoomIDs)
}

// Стена без длины резолвится в 0 — это тоже вырожденная комната, не паника.
func TestValidate_MissingLengths(t *testing.T) {
	room := models.Room{ID: "empty", Walls: models.Walls{}}

	issues := Validate(planWith(room))
	require.Len(t, issues, 1)
	assert.Equal(t, TypeInvalidDimension, issues[0].Type)
}

func TestValidate_Overlap(t *testing.T) {
	issues := Validate(planWith(
		rectRoom("a", 0, 0, 300, 300),
		rectRoom("b", 200, 0, 300, 300),
	))

	require.Len(t, issues, 1)
	issue := issues[0]

	assert.Equal(t, TypeOverlap, issue.Type)
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, []string{"a", "b"}, issue.RoomIDs)

	require.NotNil(t, issue.Detail)
	assert.Equal(t, Rect{X: 200, Y: 0, Width: 100, Height: 300}, *issue.Detail)
}

// Комнаты, которые только касаются стенами, пересечением не считаются.
func TestValidate_TouchingRoomsNotOverlap(t *testing.T) {
	issues := Validate(planWith(
		rectRoom("a", 0, 0, 300, 300),
		rectRoom("b", 300, 0, 300, 300),
	))

	for _, issue := range issues {
		assert.NotEqual(t, TypeOverlap, issue.Type)
	}
}

func TestValidate_DuplicateWall(t *testing.T) {
	issues := Validate(planWith(
		rectRoom("a", 0, 0, 300, 300),
		rectRoom("b", 300, 0, 300, 300),
	))

	require.Len(t, issues, 1)
	issue := issues[0]

	assert.Equal(t, TypeDuplicateWall, issue.Type)
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Equal(t, []string{"a", "b"}, issue.RoomIDs)
	assert.Equal(t, "duplicate-wall:a:east:b:west", issue.ID)
}

// Виртуальная стена гасит предупреждение о дубле.
func TestValidate_VirtualWallSuppressesDuplicate(t *testing.T) {
	a := rectRoom("a", 0, 0, 300, 300)
	a.Walls.East.Exists = b(false)

	issues := Validate(planWith(a, rectRoom("b", 300, 0, 300, 300)))
	assert.Empty(t, issues)
}

func TestValidate_Deterministic(t *testing.T) {
	plan := planWith(
		rectRoom("a", 0, 0, 0, 300),
		rectRoom("b", 0, 0, 300, 300),
		rectRoom("c", 200, 0, 300, 300),
	)

	first := Validate(plan)
	second := Validate(plan)
	assert.Equal(t, first, second)
}

// Категории идут по порядку: размеры, пересечения, дубли стен.
func TestValidate_CategoryOrder(t *testing.T) {
	bad := rectRoom("bad", 1000, 1000, 0, 0)
	issues := Validate(planWith(
		bad,
		rectRoom("a", 0, 0, 300, 300),
		rectRoom("b", 200, 0, 300, 300),
		rectRoom("c", 500, 0, 300, 300),
	))

	require.GreaterOrEqual(t, len(issues), 3)
	assert.Equal(t, TypeInvalidDimension, issues[0].Type)
	assert.Equal(t, TypeOverlap, issues[1].Type)
	assert.Equal(t, TypeDuplicateWall, issues[len(issues)-1].Type)
}
