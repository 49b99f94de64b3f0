package router

import (
	"net/http"
	"strings"

	"electric-plan-tool/app/controller"
)

type Controllers struct {
	Project   *controller.ProjectController
	Catalog   *controller.CatalogController
	PlanImage *controller.PlanImageController
	Report    *controller.ReportController
	Auth      *controller.AuthController
}

// healthHandler handles GET /api/health
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Health endpoint
	http.HandleFunc("/api/health", healthHandler)

	// Projects collection - handles GET (list) and POST (create)
	http.HandleFunc("/api/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Project.ListProjects(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Project.CreateProject(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Project by id, its design document and its plan image
	http.HandleFunc("/api/projects/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/projects/")

		// Route to the design endpoints first
		if strings.HasSuffix(path, "/design") {
			if r.Method == http.MethodGet {
				controllers.Project.GetDesign(w, r)
			} else if r.Method == http.MethodPut {
				controllers.Project.SaveDesign(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Plan image endpoints
		if strings.HasSuffix(path, "/plan") {
			if r.Method == http.MethodPost {
				controllers.PlanImage.UploadPlan(w, r)
			} else if r.Method == http.MethodGet {
				controllers.PlanImage.GetPlan(w, r)
			} else if r.Method == http.MethodDelete {
				controllers.PlanImage.DeletePlan(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Otherwise, treat as /api/projects/:id
		if r.Method == http.MethodGet {
			controllers.Project.GetProject(w, r)
		} else if r.Method == http.MethodPut {
			controllers.Project.UpdateProject(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Project.DeleteProject(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Catalog categories
	http.HandleFunc("/api/catalog/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Catalog.ListCategories(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Catalog.CreateCategory(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Category by id
	http.HandleFunc("/api/catalog/categories/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			controllers.Catalog.UpdateCategory(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Catalog.DeleteCategory(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Catalog products
	http.HandleFunc("/api/catalog/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Catalog.ListProducts(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Catalog.CreateProduct(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Product by id
	http.HandleFunc("/api/catalog/products/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			controllers.Catalog.UpdateProduct(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Catalog.DeleteProduct(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Flattened catalog entries for the editor
	http.HandleFunc("/api/catalog/entries", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Catalog.Entries(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Materials report (JSON or ?format=csv)
	http.HandleFunc("/api/reports/materials/", controllers.Report.Materials)

	// Auth routes
	http.HandleFunc("/api/auth/register", controllers.Auth.Register)
	http.HandleFunc("/api/auth/login", controllers.Auth.Login)
	http.HandleFunc("/api/auth/refresh", controllers.Auth.Refresh)
	http.HandleFunc("/api/auth/logout", controllers.Auth.Logout)
}
