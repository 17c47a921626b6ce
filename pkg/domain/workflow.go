package domain

import "time"

// BlockType identifies a block kind in the platform catalog.
type BlockType string

const (
	BlockType_Starter      BlockType = "starter"
	BlockType_Webhook      BlockType = "webhook"
	BlockType_Schedule     BlockType = "schedule"
	BlockType_API          BlockType = "api"
	BlockType_Function     BlockType = "function"
	BlockType_Condition    BlockType = "condition"
	BlockType_Router       BlockType = "router"
	BlockType_Response     BlockType = "response"
	BlockType_Agent        BlockType = "agent"
	BlockType_Slack        BlockType = "slack"
	BlockType_Discord      BlockType = "discord"
	BlockType_Telegram     BlockType = "telegram"
	BlockType_Gmail        BlockType = "gmail"
	BlockType_Mail         BlockType = "mail"
	BlockType_PostgreSQL   BlockType = "postgresql"
	BlockType_MySQL        BlockType = "mysql"
	BlockType_MongoDB      BlockType = "mongodb"
	BlockType_Redis        BlockType = "redis"
	BlockType_Supabase     BlockType = "supabase"
	BlockType_GoogleSheets BlockType = "google_sheets"
	BlockType_GoogleDrive  BlockType = "google_drive"
	BlockType_S3           BlockType = "s3"
	BlockType_Dropbox      BlockType = "dropbox"
	BlockType_File         BlockType = "file"
	BlockType_Stripe       BlockType = "stripe"
	BlockType_Github       BlockType = "github"
	BlockType_Jira         BlockType = "jira"
	BlockType_Notion       BlockType = "notion"
)

// SubBlock is a configured slot on a block instance. Value may be nil when
// the source workflow carried nothing for the slot.
type SubBlock struct {
	ID    string       `json:"id"`
	Type  SubBlockType `json:"type"`
	Value any          `json:"value"`
}

// OutputPort is a named, typed output on a block instance.
type OutputPort struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type BlockPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type BlockLayout struct {
	MeasuredWidth  float64 `json:"measuredWidth"`
	MeasuredHeight float64 `json:"measuredHeight"`
}

type Block struct {
	ID                string                `json:"id"`
	Type              BlockType             `json:"type"`
	Name              string                `json:"name"`
	Position          BlockPosition         `json:"position"`
	Enabled           bool                  `json:"enabled"`
	HorizontalHandles bool                  `json:"horizontalHandles"`
	AdvancedMode      bool                  `json:"advancedMode"`
	TriggerMode       bool                  `json:"triggerMode"`
	Height            float64               `json:"height"`
	SubBlocks         map[string]SubBlock   `json:"subBlocks"`
	Outputs           map[string]OutputPort `json:"outputs"`
	Data              map[string]any        `json:"data"`
	Layout            BlockLayout           `json:"layout"`
}

const (
	EdgeTypeDefault = "default"

	// Handle names used on edge endpoints.
	SourceHandleDefault       = "source"
	SourceHandleConditionTrue = "condition-true"
	SourceHandleConditionElse = "condition-else"
	TargetHandleDefault       = "target"
)

type Edge struct {
	ID           string         `json:"id"`
	Source       string         `json:"source"`
	Target       string         `json:"target"`
	SourceHandle string         `json:"sourceHandle"`
	TargetHandle string         `json:"targetHandle"`
	Type         string         `json:"type"`
	Data         map[string]any `json:"data"`
}

type WorkflowMetadata struct {
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ExportedAt  time.Time `json:"exportedAt"`
}

type WorkflowState struct {
	Blocks    map[string]Block `json:"blocks"`
	Edges     []Edge           `json:"edges"`
	Loops     map[string]any   `json:"loops"`
	Parallels map[string]any   `json:"parallels"`
	Metadata  WorkflowMetadata `json:"metadata"`
	Variables []any            `json:"variables"`
}

// ImportedWorkflow is the canvas-format envelope handed back to callers.
type ImportedWorkflow struct {
	Version    string        `json:"version"`
	ExportedAt time.Time     `json:"exportedAt"`
	State      WorkflowState `json:"state"`
}
