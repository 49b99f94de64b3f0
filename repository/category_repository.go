package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"electric-plan-tool/db"
	"electric-plan-tool/models"
)

// CategoryRepository handles database operations for catalog categories
type CategoryRepository struct{}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// Ensure CategoryRepository implements CategoryRepositoryInterface
var _ CategoryRepositoryInterface = (*CategoryRepository)(nil)

const categoryColumns = `id, name, description, created_at::text, updated_at::text`

// List returns all categories ordered by name
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name ASC`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ List: Error querying categories: %v", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	log.Printf("📦 Create: Creating category name=%s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	query := `
		INSERT INTO categories (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING ` + categoryColumns

	var category models.Category
	err := db.DB.QueryRowContext(ctx, query, uuid.NewString(), strings.TrimSpace(req.Name), req.Description).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		log.Printf("❌ Create: Error creating category: %v", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	log.Printf("✅ Create: Successfully created category id=%s", category.ID)
	return &category, nil
}

// Update updates a category
func (r *CategoryRepository) Update(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	log.Printf("📦 Update: Updating category id=%s", id)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	query := `
		UPDATE categories
		SET name = $1, description = $2, updated_at = now()
		WHERE id = $3
		RETURNING ` + categoryColumns

	var category models.Category
	err := db.DB.QueryRowContext(ctx, query, strings.TrimSpace(req.Name), req.Description, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category not found")
		}
		log.Printf("❌ Update: Error updating category %s: %v", id, err)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	log.Printf("✅ Update: Successfully updated category id=%s", category.ID)
	return &category, nil
}

// Delete removes a category and, via the foreign key cascade, its products
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	log.Printf("📦 Delete: Deleting category id=%s", id)

	result, err := db.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Delete: Error deleting category %s: %v", id, err)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category not found")
	}

	log.Printf("✅ Delete: Successfully deleted category id=%s", id)
	return nil
}
