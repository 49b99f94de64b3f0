package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"electric-plan-tool/bom"
	"electric-plan-tool/pricing"
	"electric-plan-tool/repository"
	"electric-plan-tool/utils"
)

// ReportController serves bill-of-materials reports built from a
// project's stored design
type ReportController struct {
	projects repository.ProjectRepositoryInterface
}

// NewReportController creates a new ReportController
func NewReportController(projects repository.ProjectRepositoryInterface) *ReportController {
	return &ReportController{
		projects: projects,
	}
}

// materialsReport is the JSON shape of the materials report
type materialsReport struct {
	ProjectID      string    `json:"projectId"`
	ProjectName    string    `json:"projectName"`
	Rows           []bom.Row `json:"rows"`
	BoxesTotal     float64   `json:"boxesTotal"`
	DevicesTotal   float64   `json:"devicesTotal"`
	CablesTotal    float64   `json:"cablesTotal"`
	Total          float64   `json:"total"`
	FormattedTotal string    `json:"formattedTotal"`
}

// Materials handles GET /api/reports/materials/:projectId. With
// ?format=csv the report is streamed as a CSV download, otherwise JSON
// with the pricing totals.
func (c *ReportController) Materials(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Materials: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	projectID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/reports/materials/"), "/")
	if projectID == "" {
		http.Error(w, "Project ID is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	project, err := c.projects.GetByID(ctx, projectID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Materials: Error fetching project: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch project: %v", err), http.StatusInternalServerError)
		return
	}

	design, err := c.projects.GetDesign(ctx, projectID)
	if err != nil {
		log.Printf("❌ Materials: Error fetching design: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch design: %v", err), http.StatusInternalServerError)
		return
	}

	rows := bom.Rows(design)

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="materiales_%s.csv"`, projectID))
		if err := bom.WriteCSV(w, rows); err != nil {
			log.Printf("❌ Materials: Error writing CSV: %v", err)
		}
		return
	}

	boxesTotal := pricing.BoxesTotal(design.Boxes)
	devicesTotal := pricing.DevicesTotal(design.Devices)
	cablesTotal := pricing.CablesTotal(design.Cables)
	total := boxesTotal + devicesTotal + cablesTotal

	report := materialsReport{
		ProjectID:      project.ID,
		ProjectName:    project.Name,
		Rows:           rows,
		BoxesTotal:     boxesTotal,
		DevicesTotal:   devicesTotal,
		CablesTotal:    cablesTotal,
		Total:          total,
		FormattedTotal: utils.FormatEUR(total),
	}

	writeJSON(w, http.StatusOK, report)
}
