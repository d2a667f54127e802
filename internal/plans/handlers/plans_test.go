package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorplan-api/internal/plans/repository"
	"floorplan-api/internal/plans/service"
)

func newTestHandler(t *testing.T) (*PlansHandler, *repository.Repository, *service.FileStorage) {
	t.Helper()

	db, err := repository.OpenSQLite(filepath.Join(t.TempDir(), "plans.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.New(db)
	require.NoError(t, repo.Init("../../../migrations/001_init_plans.sql"))

	storage := service.NewFileStorage(t.TempDir())
	return NewPlansHandler(repo, storage, ""), repo, storage
}

func newTestApp(h *PlansHandler) *fiber.App {
	app := fiber.New()
	app.Get("/projects/:id/export", h.ExportPlan)
	return app
}

// Выгрузка отдает документ вложением и кладет копию в exports/.
func TestExportPlan_KeepsCopyOnDisk(t *testing.T) {
	h, repo, storage := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateProject(ctx, "p1", "Casa terrea"))
	doc := []byte(`{"name":"casa","floor":{"rooms":[]}}`)
	require.NoError(t, repo.SaveVersion(ctx, "v1", "p1", doc))

	app := newTestApp(h)
	resp, err := app.Test(httptest.NewRequest("GET", "/projects/p1/export", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "p1.json")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.JSONEq(t, string(doc), string(body))

	saved, err := os.ReadFile(storage.ExportPath("p1", "p1.json"))
	require.NoError(t, err)
	assert.Equal(t, body, saved)
}

// Повторная выгрузка перезаписывает копию последней версией.
func TestExportPlan_CopyFollowsLatestVersion(t *testing.T) {
	h, repo, storage := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateProject(ctx, "p1", "Casa terrea"))
	require.NoError(t, repo.SaveVersion(ctx, "v1", "p1", []byte(`{"name":"old"}`)))

	app := newTestApp(h)
	resp, err := app.Test(httptest.NewRequest("GET", "/projects/p1/export", nil))
	require.NoError(t, err)
	resp.Body.Close()

	require.NoError(t, repo.SaveVersion(ctx, "v2", "p1", []byte(`{"name":"new"}`)))
	resp, err = app.Test(httptest.NewRequest("GET", "/projects/p1/export", nil))
	require.NoError(t, err)
	resp.Body.Close()

	saved, err := os.ReadFile(storage.ExportPath("p1", "p1.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"new"}`, string(saved))
}

func TestExportPlan_NoVersions(t *testing.T) {
	h, repo, storage := newTestHandler(t)
	require.NoError(t, repo.CreateProject(context.Background(), "p1", "Casa terrea"))

	app := newTestApp(h)
	resp, err := app.Test(httptest.NewRequest("GET", "/projects/p1/export", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 404, resp.StatusCode)
	_, err = os.Stat(storage.ExportsDir("p1"))
	assert.True(t, os.IsNotExist(err))
}
