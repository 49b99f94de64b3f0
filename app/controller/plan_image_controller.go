package controller

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"electric-plan-tool/repository"
	"electric-plan-tool/service"
)

// Max upload size for plan images (10 MB)
const maxPlanImageSize = 10 << 20

// PlanImageController handles floor plan image upload and retrieval
type PlanImageController struct {
	projects repository.ProjectRepositoryInterface
}

// NewPlanImageController creates a new PlanImageController
func NewPlanImageController(projects repository.ProjectRepositoryInterface) *PlanImageController {
	return &PlanImageController{
		projects: projects,
	}
}

func planProjectIDFromPath(path string) string {
	id := strings.TrimPrefix(path, "/api/projects/")
	id = strings.TrimSuffix(id, "/plan")
	return strings.Trim(id, "/")
}

// UploadPlan handles POST /api/projects/:id/plan. Accepts a multipart
// upload under the "file" field, optimizes it and caches thumb and
// medium renditions.
func (c *PlanImageController) UploadPlan(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UploadPlan: Received %s request to %s", r.Method, r.URL.Path)

	projectID := planProjectIDFromPath(r.URL.Path)
	if projectID == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	// Uploads for unknown projects are rejected up front
	if _, err := c.projects.GetByID(context.Background(), projectID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ UploadPlan: Error fetching project: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch project: %v", err), http.StatusInternalServerError)
		return
	}

	if err := r.ParseMultipartForm(maxPlanImageSize); err != nil {
		log.Printf("❌ UploadPlan: Failed to parse multipart form: %v", err)
		http.Error(w, fmt.Sprintf("Invalid upload: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Printf("❌ UploadPlan: Missing file field: %v", err)
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	log.Printf("📋 UploadPlan: Received file %s (%d bytes) for project %s", header.Filename, header.Size, projectID)

	data, err := io.ReadAll(io.LimitReader(file, maxPlanImageSize))
	if err != nil {
		log.Printf("❌ UploadPlan: Failed to read upload: %v", err)
		http.Error(w, "Failed to read upload", http.StatusInternalServerError)
		return
	}

	for _, size := range []string{"thumb", "medium"} {
		optimized, err := service.OptimizePlanImage(data, size)
		if err != nil {
			log.Printf("❌ UploadPlan: Failed to optimize image: %v", err)
			http.Error(w, fmt.Sprintf("Failed to process image: %v", err), http.StatusBadRequest)
			return
		}
		cachePath := service.GetCachePath(projectID, size)
		if err := service.SaveToCache(cachePath, optimized); err != nil {
			log.Printf("❌ UploadPlan: Failed to cache image: %v", err)
			http.Error(w, "Failed to store image", http.StatusInternalServerError)
			return
		}
	}

	log.Printf("✅ UploadPlan: Stored plan image for project %s", projectID)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// GetPlan handles GET /api/projects/:id/plan?size=thumb|medium
func (c *PlanImageController) GetPlan(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetPlan: Received %s request to %s", r.Method, r.URL.Path)

	projectID := planProjectIDFromPath(r.URL.Path)
	if projectID == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}
	if size != "thumb" && size != "medium" {
		http.Error(w, "size must be thumb or medium", http.StatusBadRequest)
		return
	}

	cachePath := service.GetCachePath(projectID, size)
	if !service.CacheExists(cachePath) {
		http.Error(w, "Plan image not found", http.StatusNotFound)
		return
	}

	data, err := service.ReadFromCache(cachePath)
	if err != nil {
		log.Printf("❌ GetPlan: Failed to read cached image: %v", err)
		http.Error(w, "Failed to read image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// DeletePlan handles DELETE /api/projects/:id/plan
func (c *PlanImageController) DeletePlan(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeletePlan: Received %s request to %s", r.Method, r.URL.Path)

	projectID := planProjectIDFromPath(r.URL.Path)
	if projectID == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	service.DeleteFromCache(projectID)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
