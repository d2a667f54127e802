package models

import "encoding/json"

// ============================================================
// Project Models
// ============================================================

// Project именованный проект плана. Сам документ хранится
// версиями-снапшотами: каждое сохранение — целый новый документ.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Version снапшот документа плана.
type Version struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	CreatedAt string          `json:"created_at"`
	Data      json.RawMessage `json:"data,omitempty"`
}
