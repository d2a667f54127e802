package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"floorplan-api/internal/engine/models"
	"floorplan-api/internal/plans/repository"
	"floorplan-api/internal/plans/service"
)

// ============================================================
// Plans Handler
// ============================================================

type PlansHandler struct {
	repo      *repository.Repository
	storage   *service.FileStorage
	engineURL string
}

func NewPlansHandler(repo *repository.Repository, storage *service.FileStorage, engineURL string) *PlansHandler {
	return &PlansHandler{
		repo:      repo,
		storage:   storage,
		engineURL: engineURL,
	}
}

type createProjectRequest struct {
	Name string `json:"name"`
}

// CreateProject создает пустой проект.
func (h *PlansHandler) CreateProject(c fiber.Ctx) error {
	var req createProjectRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name required"})
	}

	id := uuid.NewString()
	if err := h.repo.CreateProject(context.Background(), id, req.Name); err != nil {
		log.Printf("[PLANS] create project error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create project"})
	}

	project, err := h.repo.GetProject(context.Background(), id)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read project"})
	}

	return c.Status(http.StatusCreated).JSON(project)
}

// ListProjects список проектов, свежие сверху.
func (h *PlansHandler) ListProjects(c fiber.Ctx) error {
	projects, err := h.repo.ListProjects(context.Background())
	if err != nil {
		log.Printf("[PLANS] list projects error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list projects"})
	}
	return c.JSON(fiber.Map{"projects": projects})
}

// GetProject проект с метаданными версий.
func (h *PlansHandler) GetProject(c fiber.Ctx) error {
	project, err := h.repo.GetProject(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "project not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read project"})
	}

	versions, err := h.repo.ListVersions(context.Background(), project.ID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list versions"})
	}

	return c.JSON(fiber.Map{"project": project, "versions": versions})
}

// DeleteProject удаляет проект с версиями, настройками и файлами.
func (h *PlansHandler) DeleteProject(c fiber.Ctx) error {
	id := c.Params("id")

	if err := h.repo.DeleteProject(context.Background(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "project not found"})
		}
		log.Printf("[PLANS] delete project error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete project"})
	}

	if err := h.storage.RemoveProject(id); err != nil {
		log.Printf("[PLANS] remove project files error: %v", err)
	}

	return c.JSON(fiber.Map{"deleted": id})
}

// SaveVersion сохраняет новый снапшот документа. Документ заменяется
// целиком — частичных правок нет.
func (h *PlansHandler) SaveVersion(c fiber.Ctx) error {
	projectID := c.Params("id")

	if _, err := h.repo.GetProject(context.Background(), projectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "project not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read project"})
	}

	plan, err := parsePlanDocument(c.Body())
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid floor plan json"})
	}

	versionID := uuid.NewString()
	if err := h.repo.SaveVersion(context.Background(), versionID, projectID, plan); err != nil {
		log.Printf("[PLANS] save version error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save version"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": versionID})
}

// ListVersions метаданные версий без тел документов.
func (h *PlansHandler) ListVersions(c fiber.Ctx) error {
	versions, err := h.repo.ListVersions(context.Background(), c.Params("id"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list versions"})
	}
	return c.JSON(fiber.Map{"versions": versions})
}

// GetVersion документ конкретной версии.
func (h *PlansHandler) GetVersion(c fiber.Ctx) error {
	version, err := h.repo.GetVersion(context.Background(), c.Params("id"), c.Params("vid"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "version not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read version"})
	}

	c.Set("Content-Type", "application/json")
	return c.Send(version.Data)
}

// GetPlan документ последней версии.
func (h *PlansHandler) GetPlan(c fiber.Ctx) error {
	version, err := h.repo.LatestVersion(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "no saved versions"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read version"})
	}

	c.Set("Content-Type", "application/json")
	return c.Send(version.Data)
}

// GetSettings конфиг сметы проекта. Если не сохранен — 404,
// клиент живет на дефолтах движка.
func (h *PlansHandler) GetSettings(c fiber.Ctx) error {
	config, err := h.repo.GetSettings(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "settings not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read settings"})
	}

	c.Set("Content-Type", "application/json")
	return c.Send(config)
}

// PutSettings сохраняет конфиг сметы целиком.
func (h *PlansHandler) PutSettings(c fiber.Ctx) error {
	if !json.Valid(c.Body()) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	if err := h.repo.SaveSettings(context.Background(), c.Params("id"), c.Body()); err != nil {
		log.Printf("[PLANS] save settings error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save settings"})
	}

	return c.JSON(fiber.Map{"saved": true})
}

// ImportPlan принимает json файл плана, сохраняет оригинал в imports/
// и создает новую версию.
func (h *PlansHandler) ImportPlan(c fiber.Ctx) error {
	projectID := c.Params("id")

	if _, err := h.repo.GetProject(context.Background(), projectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "project not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read project"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "file required"})
	}
	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".json" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "only json allowed"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read file"})
	}

	plan, err := parsePlanDocument(data)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid floor plan json"})
	}

	if err := h.storage.EnsureImportsDir(projectID); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to prepare imports dir"})
	}
	path := h.storage.ImportPath(projectID, fileHeader.Filename)
	if err := h.storage.SaveFile(path, data); err != nil {
		log.Printf("[PLANS] save import error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save file"})
	}

	versionID := uuid.NewString()
	if err := h.repo.SaveVersion(context.Background(), versionID, projectID, plan); err != nil {
		log.Printf("[PLANS] save imported version error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save version"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":       versionID,
		"filename": fileHeader.Filename,
	})
}

// ExportPlan отдает последнюю версию документа как вложение и оставляет
// копию в exports/ проекта. Неудачная запись копии не роняет выгрузку.
func (h *PlansHandler) ExportPlan(c fiber.Ctx) error {
	projectID := c.Params("id")

	version, err := h.repo.LatestVersion(context.Background(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "no saved versions"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read version"})
	}

	filename := projectID + ".json"
	if err := h.storage.EnsureExportsDir(projectID); err != nil {
		log.Printf("[PLANS] prepare exports dir error: %v", err)
	} else if err := h.storage.SaveFile(h.storage.ExportPath(projectID, filename), version.Data); err != nil {
		log.Printf("[PLANS] save export copy error: %v", err)
	}

	c.Set("Content-Type", "application/json")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(version.Data)
}

// GetBudget считает смету последней версии через Engine Service,
// с сохраненными настройками проекта, если они есть.
func (h *PlansHandler) GetBudget(c fiber.Ctx) error {
	return h.budgetFromEngine(c, "/stats", "application/json")
}

// GetBudgetXLSX то же, но xlsx вложением.
func (h *PlansHandler) GetBudgetXLSX(c fiber.Ctx) error {
	return h.budgetFromEngine(c, "/stats/export",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// ============================================================
// Helpers
// ============================================================

func (h *PlansHandler) budgetFromEngine(c fiber.Ctx, path, contentType string) error {
	projectID := c.Params("id")

	version, err := h.repo.LatestVersion(context.Background(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "no saved versions"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read version"})
	}

	config, err := h.repo.GetSettings(context.Background(), projectID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read settings"})
	}

	body, err := h.callEngine(path, version.Data, config)
	if err != nil {
		log.Printf("[PLANS] engine call error: %v", err)
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "engine failed"})
	}

	c.Set("Content-Type", contentType)
	if contentType != "application/json" {
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-orcamento.xlsx"`, projectID))
	}
	return c.Send(body)
}

// callEngine отправляет {plan, config} в Engine Service и возвращает ответ.
func (h *PlansHandler) callEngine(path string, plan, config json.RawMessage) ([]byte, error) {
	if h.engineURL == "" {
		return nil, fmt.Errorf("engine url is empty")
	}

	payload := map[string]json.RawMessage{"plan": plan}
	if len(config) > 0 {
		payload["config"] = config
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, h.engineURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("engine status %d", resp.StatusCode)
	}

	return data, nil
}

// parsePlanDocument проверяет, что тело — структурно валидный документ
// плана, и возвращает его в каноничном виде. Семантически вырожденные
// планы не отбраковываются — их дело движка валидации.
func parsePlanDocument(data []byte) (json.RawMessage, error) {
	var plan models.FloorPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
