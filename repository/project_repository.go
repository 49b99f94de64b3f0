package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"electric-plan-tool/db"
	"electric-plan-tool/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// Ensure ProjectRepository implements ProjectRepositoryInterface
var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

const projectColumns = `id, name, type, notes, status, created_at::text, updated_at::text`

func scanProject(row *sql.Row) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Type,
		&project.Notes,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns all projects ordered by creation date, newest first
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ List: Error querying projects: %v", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Type,
			&project.Notes,
			&project.Status,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			log.Printf("❌ List: Error scanning project row: %v", err)
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	log.Printf("📦 Create: Creating project name=%s, type=%s", req.Name, req.Type)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusDraft
	}

	id := uuid.NewString()

	// Clients may supply their own creation timestamp (offline-created
	// projects); otherwise the database default applies.
	var query string
	var row *sql.Row
	if req.CreatedAt != "" {
		query = `
			INSERT INTO projects (id, name, type, notes, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6::timestamptz)
			RETURNING ` + projectColumns
		row = db.DB.QueryRowContext(ctx, query, id, req.Name, req.Type, req.Notes, status, req.CreatedAt)
	} else {
		query = `
			INSERT INTO projects (id, name, type, notes, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING ` + projectColumns
		row = db.DB.QueryRowContext(ctx, query, id, req.Name, req.Type, req.Notes, status)
	}

	project, err := scanProject(row)
	if err != nil {
		log.Printf("❌ Create: Error creating project: %v", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Printf("✅ Create: Successfully created project id=%s", project.ID)
	return project, nil
}

// GetByID returns one project by id
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found")
		}
		log.Printf("❌ GetByID: Error fetching project %s: %v", id, err)
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	return project, nil
}

// Update updates a project's metadata
func (r *ProjectRepository) Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error) {
	log.Printf("📦 Update: Updating project id=%s", id)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusDraft
	}

	query := `
		UPDATE projects
		SET name = $1, type = $2, notes = $3, status = $4, updated_at = now()
		WHERE id = $5
		RETURNING ` + projectColumns

	project, err := scanProject(db.DB.QueryRowContext(ctx, query, req.Name, req.Type, req.Notes, status, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found")
		}
		log.Printf("❌ Update: Error updating project %s: %v", id, err)
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	log.Printf("✅ Update: Successfully updated project id=%s", project.ID)
	return project, nil
}

// Delete removes a project and its stored design
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	log.Printf("📦 Delete: Deleting project id=%s", id)

	result, err := db.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Delete: Error deleting project %s: %v", id, err)
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project not found")
	}

	log.Printf("✅ Delete: Successfully deleted project id=%s", id)
	return nil
}

// GetDesign returns the stored design document for a project. A project
// that exists but has never been saved returns an empty design.
func (r *ProjectRepository) GetDesign(ctx context.Context, id string) (models.Design, error) {
	var raw []byte
	err := db.DB.QueryRowContext(ctx, `SELECT design FROM projects WHERE id = $1`, id).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Design{}, fmt.Errorf("project not found")
		}
		log.Printf("❌ GetDesign: Error fetching design for project %s: %v", id, err)
		return models.Design{}, fmt.Errorf("failed to fetch design: %w", err)
	}

	if len(raw) == 0 {
		return models.EmptyDesign(), nil
	}

	var design models.Design
	if err := json.Unmarshal(raw, &design); err != nil {
		log.Printf("⚠️ GetDesign: Stored design for project %s is not valid JSON, returning empty design: %v", id, err)
		return models.EmptyDesign(), nil
	}
	design.Normalize()

	return design, nil
}

// SaveDesign replaces the stored design document for a project
func (r *ProjectRepository) SaveDesign(ctx context.Context, id string, design *models.Design) error {
	raw, err := json.Marshal(design)
	if err != nil {
		return fmt.Errorf("failed to encode design: %w", err)
	}

	query := `UPDATE projects SET design = $1, updated_at = now() WHERE id = $2`
	result, err := db.DB.ExecContext(ctx, query, raw, id)
	if err != nil {
		log.Printf("❌ SaveDesign: Error saving design for project %s: %v", id, err)
		return fmt.Errorf("failed to save design: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check save result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project not found")
	}

	log.Printf("✅ SaveDesign: Saved design for project id=%s (%d boxes, %d cables, %d devices)",
		id, len(design.Boxes), len(design.Cables), len(design.Devices))
	return nil
}
