package service

import (
	"fmt"
	"os"
	"path/filepath"
)

// ============================================================
// File Storage
// ============================================================

// FileStorage файлы проекта на диске: оригиналы импортированных
// документов и сгенерированные выгрузки. Сами версии живут в БД.
type FileStorage struct {
	root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root}
}

func (s *FileStorage) ProjectDir(projectID string) string {
	return filepath.Join(s.root, projectID)
}

func (s *FileStorage) ImportsDir(projectID string) string {
	return filepath.Join(s.ProjectDir(projectID), "imports")
}

func (s *FileStorage) ImportPath(projectID, filename string) string {
	return filepath.Join(s.ImportsDir(projectID), filename)
}

func (s *FileStorage) ExportsDir(projectID string) string {
	return filepath.Join(s.ProjectDir(projectID), "exports")
}

func (s *FileStorage) ExportPath(projectID, filename string) string {
	return filepath.Join(s.ExportsDir(projectID), filename)
}

func (s *FileStorage) EnsureImportsDir(projectID string) error {
	if err := os.MkdirAll(s.ImportsDir(projectID), 0o755); err != nil {
		return fmt.Errorf("mkdir imports dir: %w", err)
	}
	return nil
}

func (s *FileStorage) EnsureExportsDir(projectID string) error {
	if err := os.MkdirAll(s.ExportsDir(projectID), 0o755); err != nil {
		return fmt.Errorf("mkdir exports dir: %w", err)
	}
	return nil
}

func (s *FileStorage) SaveFile(target string, data []byte) error {
	return os.WriteFile(target, data, 0o644)
}

func (s *FileStorage) RemoveProject(projectID string) error {
	return os.RemoveAll(s.ProjectDir(projectID))
}
