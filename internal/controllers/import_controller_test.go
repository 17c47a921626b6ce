package controllers_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flowbaker/workflow-importer/internal/controllers"
	"github.com/flowbaker/workflow-importer/internal/server"
	"github.com/flowbaker/workflow-importer/pkg/blocks"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	registry := blocks.NewRegistry()

	controller := controllers.NewImportController(controllers.ImportControllerDependencies{
		BlockRegistry:    registry,
		BlockTypeChecker: registry,
	})

	return server.NewHTTPServer(server.HTTPServerDependencies{
		ImportController: controller,
	})
}

func TestImportN8nWorkflow(t *testing.T) {
	app := newTestApp()

	body := `{
		"name": "Orders",
		"nodes": [
			{"name": "Webhook", "type": "n8n-nodes-base.webhook", "position": [0, 0], "parameters": {"path": "orders"}}
		],
		"connections": {}
	}`

	req := httptest.NewRequest("POST", "/v1/imports/n8n", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var response controllers.ImportResponse
	require.NoError(t, json.Unmarshal(raw, &response))

	assert.True(t, response.Success)
	assert.Empty(t, response.Error)
	require.NotNil(t, response.Workflow)
	assert.Len(t, response.Workflow.State.Blocks, 1)
}

func TestImportN8nWorkflowRejectsInvalidShape(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/v1/imports/n8n", strings.NewReader(`{"connections": {}}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var response controllers.ImportResponse
	require.NoError(t, json.Unmarshal(raw, &response))

	assert.False(t, response.Success)
	assert.Equal(t, "workflow is missing a nodes array", response.Error)
	assert.Nil(t, response.Workflow)
}

func TestImportN8nWorkflowRejectsBadJSON(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/v1/imports/n8n", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
