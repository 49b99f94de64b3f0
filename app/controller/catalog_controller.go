package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"electric-plan-tool/models"
	"electric-plan-tool/repository"
)

// CatalogController handles HTTP requests for categories and products
type CatalogController struct {
	categories repository.CategoryRepositoryInterface
	products   repository.ProductRepositoryInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(categories repository.CategoryRepositoryInterface, products repository.ProductRepositoryInterface) *CatalogController {
	return &CatalogController{
		categories: categories,
		products:   products,
	}
}

// ListCategories handles GET /api/catalog/categories
func (c *CatalogController) ListCategories(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListCategories: Received %s request to %s", r.Method, r.URL.Path)

	categories, err := c.categories.List(context.Background())
	if err != nil {
		log.Printf("❌ ListCategories: Error listing categories: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list categories: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.CategoryListResponse{Items: categories})
}

// CreateCategory handles POST /api/catalog/categories
func (c *CatalogController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateCategory: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateCategory: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}

	category, err := c.categories.Create(context.Background(), &req)
	if err != nil {
		log.Printf("❌ CreateCategory: Error creating category: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create category: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/catalog/categories/:id
func (c *CatalogController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateCategory: Received %s request to %s", r.Method, r.URL.Path)

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/catalog/categories/"), "/")
	if id == "" {
		http.Error(w, "Category ID is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateCategory: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	category, err := c.categories.Update(context.Background(), id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ UpdateCategory: Error updating category: %v", err)
		http.Error(w, fmt.Sprintf("Failed to update category: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/catalog/categories/:id
func (c *CatalogController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteCategory: Received %s request to %s", r.Method, r.URL.Path)

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/catalog/categories/"), "/")
	if id == "" {
		http.Error(w, "Category ID is required", http.StatusBadRequest)
		return
	}

	if err := c.categories.Delete(context.Background(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ DeleteCategory: Error deleting category: %v", err)
		http.Error(w, fmt.Sprintf("Failed to delete category: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ListProducts handles GET /api/catalog/products with an optional
// ?categoryId= filter
func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListProducts: Received %s request to %s", r.Method, r.URL.Path)

	categoryID := r.URL.Query().Get("categoryId")

	var products []models.Product
	var err error
	if categoryID != "" {
		products, err = c.products.ListByCategory(context.Background(), categoryID)
	} else {
		products, err = c.products.List(context.Background())
	}
	if err != nil {
		log.Printf("❌ ListProducts: Error listing products: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list products: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.ProductListResponse{Items: products})
}

// CreateProduct handles POST /api/catalog/products
func (c *CatalogController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateProduct: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.CategoryID) == "" {
		http.Error(w, "categoryId cannot be empty", http.StatusBadRequest)
		return
	}

	product, err := c.products.Create(context.Background(), &req)
	if err != nil {
		log.Printf("❌ CreateProduct: Error creating product: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create product: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/catalog/products/:id
func (c *CatalogController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateProduct: Received %s request to %s", r.Method, r.URL.Path)

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/catalog/products/"), "/")
	if id == "" {
		http.Error(w, "Product ID is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	product, err := c.products.Update(context.Background(), id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ UpdateProduct: Error updating product: %v", err)
		http.Error(w, fmt.Sprintf("Failed to update product: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/catalog/products/:id
func (c *CatalogController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteProduct: Received %s request to %s", r.Method, r.URL.Path)

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/catalog/products/"), "/")
	if id == "" {
		http.Error(w, "Product ID is required", http.StatusBadRequest)
		return
	}

	if err := c.products.Delete(context.Background(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ DeleteProduct: Error deleting product: %v", err)
		http.Error(w, fmt.Sprintf("Failed to delete product: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Entries handles GET /api/catalog/entries. Returns the flattened catalog
// the editor consumes when adding components and devices.
func (c *CatalogController) Entries(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Entries: Received %s request to %s", r.Method, r.URL.Path)

	entries, err := c.products.Entries(context.Background())
	if err != nil {
		log.Printf("❌ Entries: Error listing catalog entries: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list catalog entries: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.CatalogEntryListResponse{Items: entries})
}
