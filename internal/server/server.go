package server

import (
	"time"

	"github.com/flowbaker/workflow-importer/internal/controllers"
	"github.com/flowbaker/workflow-importer/internal/version"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

type HTTPServerDependencies struct {
	ImportController *controllers.ImportController
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName: "workflow-importer",
	})

	router.Use(cors.New())
	router.Use(logger.New())

	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   "workflow-importer",
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	imports := router.Group("/v1/imports")

	imports.Post("/n8n", deps.ImportController.ImportN8nWorkflow)

	return router
}
