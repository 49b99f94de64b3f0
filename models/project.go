package models

// Project status values
const (
	ProjectStatusDraft     = "draft"
	ProjectStatusConfirmed = "confirmed"
	ProjectStatusPublished = "published"
	ProjectStatusArchived  = "archived"
)

// Project represents a design project in the database
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status"` // draft, confirmed, published, archived
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateProjectRequest represents the request body for creating a project
// Example: {"name": "Nave industrial", "type": "CCTV", "notes": "", "status": "draft"}
type CreateProjectRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"` // optional client-supplied timestamp
}

// UpdateProjectRequest represents the request body for updating a project
type UpdateProjectRequest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Notes  string `json:"notes,omitempty"`
	Status string `json:"status,omitempty"`
}

// ProjectListResponse wraps a list of projects
type ProjectListResponse struct {
	Items []Project `json:"items"`
}

// DesignResponse wraps a project's stored design document
type DesignResponse struct {
	Design Design `json:"design"`
}

// SaveDesignRequest represents the request body for storing a design.
// Design is a pointer so a missing body can be rejected explicitly.
type SaveDesignRequest struct {
	Design *Design `json:"design"`
}
