package controllers

import (
	"encoding/json"

	"github.com/flowbaker/workflow-importer/pkg/domain"
	"github.com/flowbaker/workflow-importer/pkg/importer/n8n"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// ImportController turns raw workflow exports posted by clients into the
// importer's result envelope. All conversion logic lives in the importer;
// this layer only parses, validates and shapes the response.
type ImportController struct {
	converter *n8n.Converter
}

type ImportControllerDependencies struct {
	BlockRegistry    domain.BlockRegistry
	BlockTypeChecker domain.BlockTypeChecker
}

func NewImportController(deps ImportControllerDependencies) *ImportController {
	return &ImportController{
		converter: n8n.NewConverter(n8n.ConverterDependencies{
			BlockRegistry:    deps.BlockRegistry,
			BlockTypeChecker: deps.BlockTypeChecker,
		}),
	}
}

type ImportResponse struct {
	Success  bool                     `json:"success"`
	Workflow *domain.ImportedWorkflow `json:"workflow,omitempty"`
	Warnings []string                 `json:"warnings,omitempty"`
	Error    string                   `json:"error,omitempty"`
}

// ImportN8nWorkflow handles POST /v1/imports/n8n. The body is the raw n8n
// export JSON, pasted or uploaded by the client.
func (c *ImportController) ImportN8nWorkflow(ctx fiber.Ctx) error {
	body := ctx.Body()

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ImportResponse{
			Success: false,
			Error:   "Request body is not valid JSON",
		})
	}

	if err := n8n.ValidateWorkflow(raw); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ImportResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	workflow, err := n8n.DecodeWorkflow(body)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ImportResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	result, err := c.converter.Convert(workflow)
	if err != nil {
		log.Error().Err(err).Msg("Failed to convert n8n workflow")

		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ImportResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	log.Info().
		Int("blocks", len(result.Workflow.State.Blocks)).
		Int("edges", len(result.Workflow.State.Edges)).
		Int("warnings", len(result.Warnings)).
		Msg("Imported n8n workflow")

	return ctx.JSON(ImportResponse{
		Success:  true,
		Workflow: &result.Workflow,
		Warnings: result.Warnings,
	})
}
