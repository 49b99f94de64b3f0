package models

// Category represents a catalog category
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Product represents a catalog product with distributor/discount pricing
type Product struct {
	ID               string  `json:"id"`
	CategoryID       string  `json:"categoryId"`
	Category         string  `json:"category"` // category name, joined on read
	Name             string  `json:"name"`
	Serial           string  `json:"serial,omitempty"`
	DistributorPrice float64 `json:"distributorPrice"`
	DiscountPrice    float64 `json:"discountPrice"`
	DiscountPercent  float64 `json:"discountPercent"`
	ShippingCost     float64 `json:"shippingCost"`
	LeadTime         string  `json:"leadTime,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// CatalogEntry is the flattened shape the editor consumes when seeding a
// component or device line: the effective price is the discount price when
// one is set, otherwise the distributor price.
type CatalogEntry struct {
	Category        string  `json:"category"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discountPercent"`
}

// CreateCategoryRequest represents the request body for creating a category
// Example: {"name": "Cámaras", "description": "Cámaras IP y analógicas"}
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateCategoryRequest represents the request body for updating a category
type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateProductRequest represents the request body for creating a product
// Example: {"categoryId": "...", "name": "S7-1200", "distributorPrice": 450}
type CreateProductRequest struct {
	CategoryID       string  `json:"categoryId"`
	Name             string  `json:"name"`
	Serial           string  `json:"serial,omitempty"`
	DistributorPrice float64 `json:"distributorPrice"`
	DiscountPrice    float64 `json:"discountPrice"`
	DiscountPercent  float64 `json:"discountPercent"`
	ShippingCost     float64 `json:"shippingCost"`
	LeadTime         string  `json:"leadTime,omitempty"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	CategoryID       string  `json:"categoryId"`
	Name             string  `json:"name"`
	Serial           string  `json:"serial,omitempty"`
	DistributorPrice float64 `json:"distributorPrice"`
	DiscountPrice    float64 `json:"discountPrice"`
	DiscountPercent  float64 `json:"discountPercent"`
	ShippingCost     float64 `json:"shippingCost"`
	LeadTime         string  `json:"leadTime,omitempty"`
}

// CategoryListResponse wraps a list of categories
type CategoryListResponse struct {
	Items []Category `json:"items"`
}

// ProductListResponse wraps a list of products
type ProductListResponse struct {
	Items []Product `json:"items"`
}

// CatalogEntryListResponse wraps the flattened catalog entries
type CatalogEntryListResponse struct {
	Items []CatalogEntry `json:"items"`
}
