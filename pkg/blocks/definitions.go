package blocks

import (
	"github.com/flowbaker/workflow-importer/pkg/domain"
)

// Definitions is the platform block catalog consumed by the importer. Each
// entry mirrors the block's editor schema: its configuration slots and the
// output ports it exposes on the canvas.
var Definitions = []domain.BlockDefinition{
	{
		Type: domain.BlockType_Starter,
		Name: "Starter",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "startWorkflow", Type: domain.SubBlockType_Dropdown, Default: "manual"},
		},
		Outputs: map[string]domain.OutputDefinition{
			"input": {Type: "any", Description: "Data passed into the workflow at start"},
		},
	},
	{
		Type: domain.BlockType_Webhook,
		Name: "Webhook",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "path", Type: domain.SubBlockType_ShortInput},
			{ID: "method", Type: domain.SubBlockType_Dropdown, Default: "POST"},
			{ID: "responseMode", Type: domain.SubBlockType_Dropdown, Default: "onReceived"},
		},
		Outputs: map[string]domain.OutputDefinition{
			"body":    {Type: "json", Description: "Parsed request body"},
			"headers": {Type: "json", Description: "Request headers"},
			"query":   {Type: "json"},
		},
	},
	{
		Type: domain.BlockType_Schedule,
		Name: "Schedule",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "cronExpression", Type: domain.SubBlockType_ShortInput},
			{ID: "timezone", Type: domain.SubBlockType_ShortInput, Default: "UTC"},
		},
		Outputs: map[string]domain.OutputDefinition{
			"timestamp": {Type: "string", Description: "Time the schedule fired"},
		},
	},
	{
		Type: domain.BlockType_API,
		Name: "API",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "url", Type: domain.SubBlockType_ShortInput},
			{ID: "method", Type: domain.SubBlockType_Dropdown, Default: "GET"},
			{ID: "headers", Type: domain.SubBlockType_Table},
			{ID: "body", Type: domain.SubBlockType_LongInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"data":    {Type: "any", Description: "Response body"},
			"status":  {Type: "number", Description: "HTTP status code"},
			"headers": {Type: "json", Description: "Response headers"},
		},
	},
	{
		Type: domain.BlockType_Function,
		Name: "Function",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "code", Type: domain.SubBlockType_Code},
			{ID: "language", Type: domain.SubBlockType_Dropdown, Default: "javascript"},
		},
		Outputs: map[string]domain.OutputDefinition{
			"result": {Type: "any", Description: "Return value of the function"},
		},
	},
	{
		Type: domain.BlockType_Condition,
		Name: "Condition",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "condition", Type: domain.SubBlockType_LongInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"true": {Type: "any", Description: "Items matching the condition"},
			"else": {Type: "any", Description: "Items not matching the condition"},
		},
	},
	{
		Type: domain.BlockType_Router,
		Name: "Router",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "routes", Type: domain.SubBlockType_Table},
		},
		Outputs: map[string]domain.OutputDefinition{
			"route": {Type: "any"},
		},
	},
	{
		Type: domain.BlockType_Response,
		Name: "Response",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "body", Type: domain.SubBlockType_LongInput},
			{ID: "statusCode", Type: domain.SubBlockType_ShortInput, Default: float64(200)},
		},
		Outputs: map[string]domain.OutputDefinition{},
	},
	{
		Type: domain.BlockType_Agent,
		Name: "Agent",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "prompt", Type: domain.SubBlockType_LongInput},
			{ID: "model", Type: domain.SubBlockType_Dropdown},
			{ID: "temperature", Type: domain.SubBlockType_ShortInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"content":   {Type: "string", Description: "Model response text"},
			"toolCalls": {Type: "json"},
		},
	},
	{
		Type: domain.BlockType_Slack,
		Name: "Slack",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "channel", Type: domain.SubBlockType_ShortInput},
			{ID: "message", Type: domain.SubBlockType_LongInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"ts": {Type: "string", Description: "Timestamp of the posted message"},
		},
	},
	{
		Type: domain.BlockType_Discord,
		Name: "Discord",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "channelId", Type: domain.SubBlockType_ShortInput},
			{ID: "message", Type: domain.SubBlockType_LongInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"messageId": {Type: "string"},
		},
	},
	{
		Type: domain.BlockType_Telegram,
		Name: "Telegram",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "chatId", Type: domain.SubBlockType_ShortInput},
			{ID: "message", Type: domain.SubBlockType_LongInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"messageId": {Type: "string"},
		},
	},
	{
		Type: domain.BlockType_Gmail,
		Name: "Gmail",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "to", Type: domain.SubBlockType_ShortInput},
			{ID: "subject", Type: domain.SubBlockType_ShortInput},
			{ID: "message", Type: domain.SubBlockType_LongInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"messageId": {Type: "string", Description: "Id of the sent message"},
		},
	},
	{
		Type: domain.BlockType_Mail,
		Name: "Mail",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "to", Type: domain.SubBlockType_ShortInput},
			{ID: "subject", Type: domain.SubBlockType_ShortInput},
			{ID: "body", Type: domain.SubBlockType_LongInput},
		},
		Outputs: map[string]domain.OutputDefinition{},
	},
	{
		Type: domain.BlockType_PostgreSQL,
		Name: "PostgreSQL",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "operation", Type: domain.SubBlockType_Dropdown, Default: "query"},
			{ID: "query", Type: domain.SubBlockType_Code},
			{ID: "table", Type: domain.SubBlockType_ShortInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"rows":     {Type: "json", Description: "Rows returned by the query"},
			"rowCount": {Type: "number"},
		},
	},
	{
		Type: domain.BlockType_MySQL,
		Name: "MySQL",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "operation", Type: domain.SubBlockType_Dropdown, Default: "query"},
			{ID: "query", Type: domain.SubBlockType_Code},
			{ID: "table", Type: domain.SubBlockType_ShortInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"rows":     {Type: "json", Description: "Rows returned by the query"},
			"rowCount": {Type: "number"},
		},
	},
	{
		Type: domain.BlockType_MongoDB,
		Name: "MongoDB",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "operation", Type: domain.SubBlockType_Dropdown, Default: "find"},
			{ID: "collection", Type: domain.SubBlockType_ShortInput},
			{ID: "query", Type: domain.SubBlockType_Code},
		},
		Outputs: map[string]domain.OutputDefinition{
			"documents": {Type: "json"},
		},
	},
	{
		Type: domain.BlockType_Redis,
		Name: "Redis",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "operation", Type: domain.SubBlockType_Dropdown, Default: "get"},
			{ID: "key", Type: domain.SubBlockType_ShortInput},
			{ID: "value", Type: domain.SubBlockType_LongInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"value": {Type: "any"},
		},
	},
	{
		Type: domain.BlockType_Supabase,
		Name: "Supabase",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "operation", Type: domain.SubBlockType_Dropdown, Default: "select"},
			{ID: "table", Type: domain.SubBlockType_ShortInput},
			{ID: "filter", Type: domain.SubBlockType_LongInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"rows": {Type: "json"},
		},
	},
	{
		Type: domain.BlockType_GoogleSheets,
		Name: "Google Sheets",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "spreadsheetId", Type: domain.SubBlockType_ShortInput},
			{ID: "range", Type: domain.SubBlockType_ShortInput},
			{ID: "operation", Type: domain.SubBlockType_Dropdown, Default: "read"},
		},
		Outputs: map[string]domain.OutputDefinition{
			"values": {Type: "json", Description: "Cell values in the selected range"},
		},
	},
	{
		Type: domain.BlockType_GoogleDrive,
		Name: "Google Drive",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "operation", Type: domain.SubBlockType_Dropdown, Default: "upload"},
			{ID: "fileId", Type: domain.SubBlockType_ShortInput},
			{ID: "folderId", Type: domain.SubBlockType_ShortInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"file": {Type: "json"},
		},
	},
	{
		Type: domain.BlockType_S3,
		Name: "S3",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "bucket", Type: domain.SubBlockType_ShortInput},
			{ID: "key", Type: domain.SubBlockType_ShortInput},
			{ID: "operation", Type: domain.SubBlockType_Dropdown, Default: "get"},
		},
		Outputs: map[string]domain.OutputDefinition{
			"object": {Type: "any"},
		},
	},
	{
		Type: domain.BlockType_Dropbox,
		Name: "Dropbox",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "path", Type: domain.SubBlockType_ShortInput},
			{ID: "operation", Type: domain.SubBlockType_Dropdown, Default: "upload"},
		},
		Outputs: map[string]domain.OutputDefinition{
			"file": {Type: "json"},
		},
	},
	{
		Type: domain.BlockType_File,
		Name: "File",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "fileName", Type: domain.SubBlockType_ShortInput},
			{ID: "operation", Type: domain.SubBlockType_Dropdown, Default: "read"},
		},
		Outputs: map[string]domain.OutputDefinition{
			"content": {Type: "any"},
		},
	},
	{
		Type: domain.BlockType_Stripe,
		Name: "Stripe",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "resource", Type: domain.SubBlockType_Dropdown, Default: "charge"},
			{ID: "operation", Type: domain.SubBlockType_Dropdown, Default: "create"},
			{ID: "amount", Type: domain.SubBlockType_ShortInput},
			{ID: "currency", Type: domain.SubBlockType_ShortInput, Default: "usd"},
		},
		Outputs: map[string]domain.OutputDefinition{
			"resource": {Type: "json", Description: "Stripe resource returned by the call"},
		},
	},
	{
		Type: domain.BlockType_Github,
		Name: "GitHub",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "owner", Type: domain.SubBlockType_ShortInput},
			{ID: "repository", Type: domain.SubBlockType_ShortInput},
			{ID: "operation", Type: domain.SubBlockType_Dropdown},
		},
		Outputs: map[string]domain.OutputDefinition{
			"result": {Type: "json"},
		},
	},
	{
		Type: domain.BlockType_Jira,
		Name: "Jira",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "project", Type: domain.SubBlockType_ShortInput},
			{ID: "issueType", Type: domain.SubBlockType_ShortInput},
			{ID: "summary", Type: domain.SubBlockType_ShortInput},
			{ID: "description", Type: domain.SubBlockType_LongInput},
		},
		Outputs: map[string]domain.OutputDefinition{
			"issue": {Type: "json"},
		},
	},
	{
		Type: domain.BlockType_Notion,
		Name: "Notion",
		SubBlocks: []domain.SubBlockDefinition{
			{ID: "databaseId", Type: domain.SubBlockType_ShortInput},
			{ID: "operation", Type: domain.SubBlockType_Dropdown},
		},
		Outputs: map[string]domain.OutputDefinition{
			"page": {Type: "json"},
		},
	},
}
