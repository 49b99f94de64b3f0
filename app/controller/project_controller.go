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

// ProjectController handles HTTP requests for projects and their designs
type ProjectController struct {
	repository repository.ProjectRepositoryInterface
}

// NewProjectController creates a new ProjectController
func NewProjectController(repo repository.ProjectRepositoryInterface) *ProjectController {
	return &ProjectController{
		repository: repo,
	}
}

// projectIDFromPath extracts the project id from a path like
// /api/projects/:id or /api/projects/:id/design
func projectIDFromPath(path string) string {
	id := strings.TrimPrefix(path, "/api/projects/")
	id = strings.TrimSuffix(id, "/design")
	return strings.Trim(id, "/")
}

// ListProjects handles GET /api/projects
func (c *ProjectController) ListProjects(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListProjects: Received %s request to %s", r.Method, r.URL.Path)

	projects, err := c.repository.List(context.Background())
	if err != nil {
		log.Printf("❌ ListProjects: Error listing projects: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list projects: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.ProjectListResponse{Items: projects})
}

// CreateProject handles POST /api/projects
func (c *ProjectController) CreateProject(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateProject: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateProject: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		log.Printf("❌ CreateProject: name cannot be empty")
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}

	project, err := c.repository.Create(context.Background(), &req)
	if err != nil {
		log.Printf("❌ CreateProject: Error creating project: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create project: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// GetProject handles GET /api/projects/:id
func (c *ProjectController) GetProject(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetProject: Received %s request to %s", r.Method, r.URL.Path)

	id := projectIDFromPath(r.URL.Path)
	if id == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	project, err := c.repository.GetByID(context.Background(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ GetProject: Error fetching project: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch project: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// UpdateProject handles PUT /api/projects/:id
func (c *ProjectController) UpdateProject(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateProject: Received %s request to %s", r.Method, r.URL.Path)

	id := projectIDFromPath(r.URL.Path)
	if id == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateProject: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		log.Printf("❌ UpdateProject: name cannot be empty")
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}

	project, err := c.repository.Update(context.Background(), id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ UpdateProject: Error updating project: %v", err)
		http.Error(w, fmt.Sprintf("Failed to update project: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// DeleteProject handles DELETE /api/projects/:id
func (c *ProjectController) DeleteProject(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteProject: Received %s request to %s", r.Method, r.URL.Path)

	id := projectIDFromPath(r.URL.Path)
	if id == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(context.Background(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ DeleteProject: Error deleting project: %v", err)
		http.Error(w, fmt.Sprintf("Failed to delete project: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// GetDesign handles GET /api/projects/:id/design
func (c *ProjectController) GetDesign(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetDesign: Received %s request to %s", r.Method, r.URL.Path)

	id := projectIDFromPath(r.URL.Path)
	if id == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	design, err := c.repository.GetDesign(context.Background(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ GetDesign: Error fetching design: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch design: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.DesignResponse{Design: design})
}

// SaveDesign handles PUT /api/projects/:id/design
func (c *ProjectController) SaveDesign(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SaveDesign: Received %s request to %s", r.Method, r.URL.Path)

	id := projectIDFromPath(r.URL.Path)
	if id == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	var req models.SaveDesignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SaveDesign: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Design == nil {
		log.Printf("❌ SaveDesign: design is required")
		http.Error(w, "design is required", http.StatusBadRequest)
		return
	}
	req.Design.Normalize()

	if err := c.repository.SaveDesign(context.Background(), id, req.Design); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ SaveDesign: Error saving design: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save design: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}
