package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"floorplan-api/internal/plans/models"
)

// ============================================================
// SQLite Repository
// ============================================================

var ErrNotFound = errors.New("not found")

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init запускает миграции.
func (r *Repository) Init(migrationsPath string) error {
	data, err := os.ReadFile(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := r.db.Exec(string(data)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// ============================================================
// Projects
// ============================================================

func (r *Repository) CreateProject(ctx context.Context, id, name string) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO projects (id, name)
        VALUES (?, ?)
    `, id, name)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *Repository) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, created_at, updated_at
        FROM projects
        ORDER BY updated_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *Repository) GetProject(ctx context.Context, id string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, created_at, updated_at
        FROM projects
        WHERE id = ?
    `, id)

	var p models.Project
	if err := row.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM versions WHERE project_id = ?`, id); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE project_id = ?`, id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================
// Versions
// ============================================================

// SaveVersion сохраняет снапшот документа и обновляет updated_at проекта.
func (r *Repository) SaveVersion(ctx context.Context, id, projectID string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO versions (id, project_id, data)
        VALUES (?, ?, ?)
    `, id, projectID, string(data))
	if err != nil {
		return fmt.Errorf("insert version: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
        UPDATE projects SET updated_at = CURRENT_TIMESTAMP WHERE id = ?
    `, projectID)
	return err
}

// ListVersions метаданные версий без тела документа, новые сверху.
func (r *Repository) ListVersions(ctx context.Context, projectID string) ([]models.Version, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, project_id, created_at
        FROM versions
        WHERE project_id = ?
        ORDER BY created_at DESC, rowid DESC
    `, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := make([]models.Version, 0)
	for rows.Next() {
		var v models.Version
		if err := rows.Scan(&v.ID, &v.ProjectID, &v.CreatedAt); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func (r *Repository) GetVersion(ctx context.Context, projectID, versionID string) (*models.Version, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, project_id, created_at, data
        FROM versions
        WHERE project_id = ? AND id = ?
    `, projectID, versionID)
	return scanVersion(row)
}

// LatestVersion последний сохраненный снапшот проекта.
func (r *Repository) LatestVersion(ctx context.Context, projectID string) (*models.Version, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, project_id, created_at, data
        FROM versions
        WHERE project_id = ?
        ORDER BY created_at DESC, rowid DESC
        LIMIT 1
    `, projectID)
	return scanVersion(row)
}

func scanVersion(row *sql.Row) (*models.Version, error) {
	var v models.Version
	var data string
	if err := row.Scan(&v.ID, &v.ProjectID, &v.CreatedAt, &data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v.Data = []byte(data)
	return &v, nil
}

// ============================================================
// Settings
// ============================================================

// SaveSettings хранит конфиг сметы проекта как JSON целиком.
func (r *Repository) SaveSettings(ctx context.Context, projectID string, config []byte) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO settings (project_id, estimate_config)
        VALUES (?, ?)
        ON CONFLICT(project_id) DO UPDATE SET estimate_config = excluded.estimate_config
    `, projectID, string(config))
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (r *Repository) GetSettings(ctx context.Context, projectID string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT estimate_config FROM settings WHERE project_id = ?
    `, projectID)

	var config string
	if err := row.Scan(&config); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(config), nil
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
