// Package n8n converts n8n workflow exports into the platform canvas format.
package n8n

import (
	"encoding/json"
	"fmt"
)

// Workflow is the subset of an n8n export the importer consumes.
type Workflow struct {
	Name        string                     `json:"name"`
	Nodes       []Node                     `json:"nodes"`
	Connections map[string]NodeConnections `json:"connections"`
}

// Node is a single step of the source workflow. Node names are unique within
// a workflow and are the identity key the connection table refers to.
type Node struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	TypeVersion float64        `json:"typeVersion"`
	Position    []float64      `json:"position"`
	Parameters  map[string]any `json:"parameters"`
}

// NodeConnections holds the outgoing links of one node. The outer index of
// Main is the output slot (branch number); the inner slice holds the fan-out
// targets of that slot.
type NodeConnections struct {
	Main [][]Connection `json:"main"`
}

type Connection struct {
	Node  string `json:"node"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// DecodeWorkflow parses raw export bytes into the typed source model. Callers
// are expected to run ValidateWorkflow on the raw value first; decode errors
// here are fatal.
func DecodeWorkflow(data []byte) (Workflow, error) {
	var workflow Workflow

	if err := json.Unmarshal(data, &workflow); err != nil {
		return Workflow{}, fmt.Errorf("failed to decode n8n workflow: %w", err)
	}

	return workflow, nil
}
