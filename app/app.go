package app

import (
	"context"
	"fmt"

	"electric-plan-tool/app/controller"
	"electric-plan-tool/app/router"
	"electric-plan-tool/db"
	"electric-plan-tool/repository"
	"electric-plan-tool/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Create or migrate tables
	if err := db.InitSchema(context.Background()); err != nil {
		return err
	}

	// Ensure the plan image cache directory exists
	if err := service.EnsureCacheDir(); err != nil {
		return err
	}

	// Initialize repositories
	projectRepo := repository.NewProjectRepository()
	categoryRepo := repository.NewCategoryRepository()
	productRepo := repository.NewProductRepository()

	// Create controllers
	controllers := &router.Controllers{
		Project:   controller.NewProjectController(projectRepo),
		Catalog:   controller.NewCatalogController(categoryRepo, productRepo),
		PlanImage: controller.NewPlanImageController(projectRepo),
		Report:    controller.NewReportController(projectRepo),
		Auth:      controller.NewAuthController(),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
