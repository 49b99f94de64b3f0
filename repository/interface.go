package repository

import (
	"context"

	"electric-plan-tool/models"
)

// ProjectRepositoryInterface defines the contract for project repository operations
type ProjectRepositoryInterface interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id string) error
	GetDesign(ctx context.Context, id string) (models.Design, error)
	SaveDesign(ctx context.Context, id string, design *models.Design) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

// ProductRepositoryInterface defines the contract for product repository operations
type ProductRepositoryInterface interface {
	List(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	Entries(ctx context.Context) ([]models.CatalogEntry, error)
}
