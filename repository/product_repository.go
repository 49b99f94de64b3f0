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

// ProductRepository handles database operations for catalog products
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productColumns = `
	p.id, p.category_id, c.name, p.name, p.serial,
	p.distributor_price, p.discount_price, p.discount_percent,
	p.shipping_cost, p.lead_time, p.created_at::text, p.updated_at::text`

func scanProductRows(rows *sql.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(
			&product.ID,
			&product.CategoryID,
			&product.Category,
			&product.Name,
			&product.Serial,
			&product.DistributorPrice,
			&product.DiscountPrice,
			&product.DiscountPercent,
			&product.ShippingCost,
			&product.LeadTime,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

// List returns all products with their category names, ordered by
// category then product name
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		INNER JOIN categories c ON p.category_id = c.id
		ORDER BY c.name ASC, p.name ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ List: Error querying products: %v", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// ListByCategory returns the products of one category
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		INNER JOIN categories c ON p.category_id = c.id
		WHERE p.category_id = $1
		ORDER BY p.name ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, categoryID)
	if err != nil {
		log.Printf("❌ ListByCategory: Error querying products for category %s: %v", categoryID, err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	log.Printf("📦 Create: Creating product name=%s, category_id=%s", req.Name, req.CategoryID)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(req.CategoryID) == "" {
		return nil, fmt.Errorf("categoryId cannot be empty")
	}
	if req.DistributorPrice < 0 || req.DiscountPrice < 0 {
		return nil, fmt.Errorf("prices cannot be negative")
	}

	query := `
		INSERT INTO products (id, category_id, name, serial, distributor_price, discount_price, discount_percent, shipping_cost, lead_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	id := uuid.NewString()
	var inserted string
	err := db.DB.QueryRowContext(ctx, query,
		id,
		req.CategoryID,
		strings.TrimSpace(req.Name),
		req.Serial,
		req.DistributorPrice,
		req.DiscountPrice,
		req.DiscountPercent,
		req.ShippingCost,
		req.LeadTime,
	).Scan(&inserted)
	if err != nil {
		log.Printf("❌ Create: Error creating product: %v", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	product, err := r.getByID(ctx, inserted)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Create: Successfully created product id=%s", product.ID)
	return product, nil
}

// Update updates a product
func (r *ProductRepository) Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	log.Printf("📦 Update: Updating product id=%s", id)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(req.CategoryID) == "" {
		return nil, fmt.Errorf("categoryId cannot be empty")
	}
	if req.DistributorPrice < 0 || req.DiscountPrice < 0 {
		return nil, fmt.Errorf("prices cannot be negative")
	}

	query := `
		UPDATE products
		SET category_id = $1, name = $2, serial = $3, distributor_price = $4,
		    discount_price = $5, discount_percent = $6, shipping_cost = $7,
		    lead_time = $8, updated_at = now()
		WHERE id = $9
		RETURNING id
	`

	var updated string
	err := db.DB.QueryRowContext(ctx, query,
		req.CategoryID,
		strings.TrimSpace(req.Name),
		req.Serial,
		req.DistributorPrice,
		req.DiscountPrice,
		req.DiscountPercent,
		req.ShippingCost,
		req.LeadTime,
		id,
	).Scan(&updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product not found")
		}
		log.Printf("❌ Update: Error updating product %s: %v", id, err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	product, err := r.getByID(ctx, updated)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Update: Successfully updated product id=%s", product.ID)
	return product, nil
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	log.Printf("📦 Delete: Deleting product id=%s", id)

	result, err := db.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Delete: Error deleting product %s: %v", id, err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product not found")
	}

	log.Printf("✅ Delete: Successfully deleted product id=%s", id)
	return nil
}

// Entries returns the flattened catalog the editor consumes: one entry
// per product with the effective price, which is the discount price when
// set and the distributor price otherwise.
func (r *ProductRepository) Entries(ctx context.Context) ([]models.CatalogEntry, error) {
	query := `
		SELECT c.name, p.name,
		       CASE WHEN p.discount_price > 0 THEN p.discount_price ELSE p.distributor_price END,
		       p.discount_percent
		FROM products p
		INNER JOIN categories c ON p.category_id = c.id
		ORDER BY c.name ASC, p.name ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Entries: Error querying catalog entries: %v", err)
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}
	defer rows.Close()

	entries := []models.CatalogEntry{}
	for rows.Next() {
		var entry models.CatalogEntry
		if err := rows.Scan(&entry.Category, &entry.Name, &entry.Price, &entry.DiscountPercent); err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog entries: %w", err)
	}

	return entries, nil
}

func (r *ProductRepository) getByID(ctx context.Context, id string) (*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		INNER JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1
	`

	var product models.Product
	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.CategoryID,
		&product.Category,
		&product.Name,
		&product.Serial,
		&product.DistributorPrice,
		&product.DiscountPrice,
		&product.DiscountPercent,
		&product.ShippingCost,
		&product.LeadTime,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	return &product, nil
}
