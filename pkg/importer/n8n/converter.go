package n8n

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/flowbaker/workflow-importer/pkg/domain"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/robfig/cron"
	"github.com/rs/xid"
)

const (
	workflowVersion     = "1.0"
	defaultWorkflowName = "Imported workflow"

	longInputThreshold  = 100
	blockMeasuredWidth  = float64(350)
	fallbackLanguage    = "javascript"
)

// codeParameterKeys are conventional parameter names used by n8n code
// execution nodes, tried in order for the "code" slot.
var codeParameterKeys = []string{"jsCode", "functionCode", "pythonCode"}

// messageParameterKeys are alternates used by messaging nodes for "message".
var messageParameterKeys = []string{"text", "content"}

// ConversionResult is a successfully converted workflow plus any non-fatal
// warnings accumulated along the way.
type ConversionResult struct {
	Workflow domain.ImportedWorkflow
	Warnings []string
}

type Converter struct {
	registry domain.BlockRegistry
	checker  domain.BlockTypeChecker
}

type ConverterDependencies struct {
	BlockRegistry    domain.BlockRegistry
	BlockTypeChecker domain.BlockTypeChecker
}

func NewConverter(deps ConverterDependencies) *Converter {
	return &Converter{
		registry: deps.BlockRegistry,
		checker:  deps.BlockTypeChecker,
	}
}

// Convert translates a validated n8n workflow into the platform canvas
// format. It is pure and synchronous: one pass over nodes, one pass over
// connections, then assembly. Recoverable problems (unknown block types,
// dangling connection references) become warnings; anything unexpected is
// caught and returned as an error, never as a partial result.
func (c *Converter) Convert(workflow Workflow) (result ConversionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = ConversionResult{}
			err = fmt.Errorf("conversion failed: %v", r)
		}
	}()

	var warnings []string

	blocks := make(map[string]domain.Block, len(workflow.Nodes))
	blockIDsByNodeName := make(map[string]string, len(workflow.Nodes))

	for i, node := range workflow.Nodes {
		if node.Type == StickyNoteType {
			continue
		}

		resolved := ResolveBlockType(node.Type)

		if resolved.Match == MatchFallback {
			warnings = append(warnings, fmt.Sprintf("Unrecognized node type %q on node %q, converted as a generic %s block", node.Type, node.Name, resolved.Type))
		} else if !c.checker.BlockTypeExists(resolved.Type) {
			warnings = append(warnings, fmt.Sprintf("Block type %q is not available for node %q, using %s instead", resolved.Type, node.Name, domain.BlockType_Function))
			resolved.Type = domain.BlockType_Function
			resolved.Height = fallbackHeight
		}

		blockID := xid.New().String()

		subBlocks := c.buildSubBlocks(resolved.Type, node)
		warnings = append(warnings, c.checkScheduleExpression(resolved.Type, subBlocks, node)...)

		block := domain.Block{
			ID:                blockID,
			Type:              resolved.Type,
			Name:              node.Name,
			Position:          nodePosition(node),
			Enabled:           true,
			HorizontalHandles: true,
			TriggerMode:       IsTriggerNode(node, i),
			Height:            resolved.Height,
			SubBlocks:         subBlocks,
			Outputs:           c.buildOutputs(resolved.Type),
			Data:              map[string]any{},
			Layout: domain.BlockLayout{
				MeasuredWidth:  blockMeasuredWidth,
				MeasuredHeight: resolved.Height,
			},
		}

		blocks[blockID] = block
		blockIDsByNodeName[node.Name] = blockID
	}

	edges := []domain.Edge{}

	for sourceName, connections := range workflow.Connections {
		sourceID, ok := blockIDsByNodeName[sourceName]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("Connection source %q not found, skipping its connections", sourceName))
			continue
		}

		sourceType := blocks[sourceID].Type

		for branchIndex, branch := range connections.Main {
			for _, connection := range branch {
				targetID, ok := blockIDsByNodeName[connection.Node]
				if !ok {
					warnings = append(warnings, fmt.Sprintf("Connection target %q not found, skipping connection from %q", connection.Node, sourceName))
					continue
				}

				edges = append(edges, domain.Edge{
					ID:           uuid.NewString(),
					Source:       sourceID,
					Target:       targetID,
					SourceHandle: sourceHandleFor(sourceType, branchIndex),
					TargetHandle: domain.TargetHandleDefault,
					Type:         domain.EdgeTypeDefault,
					Data:         map[string]any{},
				})
			}
		}
	}

	name := workflow.Name
	if name == "" {
		name = defaultWorkflowName
	}

	now := time.Now().UTC()

	result = ConversionResult{
		Workflow: domain.ImportedWorkflow{
			Version:    workflowVersion,
			ExportedAt: now,
			State: domain.WorkflowState{
				Blocks:    blocks,
				Edges:     edges,
				Loops:     map[string]any{},
				Parallels: map[string]any{},
				Metadata: domain.WorkflowMetadata{
					Name:        name,
					Slug:        slug.Make(name),
					Description: "Imported from n8n",
					ExportedAt:  now,
				},
				Variables: []any{},
			},
		},
		Warnings: warnings,
	}

	return result, nil
}

// buildSubBlocks fills every declared slot of the resolved block type. Slots
// are never omitted: a slot with no usable source gets a nil value. For block
// types missing from the registry every source parameter becomes its own
// generic slot.
func (c *Converter) buildSubBlocks(blockType domain.BlockType, node Node) map[string]domain.SubBlock {
	definition, ok := c.registry.GetBlockDefinition(blockType)
	if !ok {
		return genericSubBlocks(node)
	}

	subBlocks := make(map[string]domain.SubBlock, len(definition.SubBlocks))

	for _, slot := range definition.SubBlocks {
		subBlocks[slot.ID] = domain.SubBlock{
			ID:    slot.ID,
			Type:  slot.Type,
			Value: resolveSlotValue(blockType, slot, node),
		}
	}

	return subBlocks
}

// resolveSlotValue tries each extraction strategy in priority order and
// returns the first defined value, or nil.
func resolveSlotValue(blockType domain.BlockType, slot domain.SubBlockDefinition, node Node) any {
	if value, ok := node.Parameters[slot.ID]; ok && value != nil {
		return value
	}

	switch slot.ID {
	case "code":
		for _, key := range codeParameterKeys {
			if value, ok := node.Parameters[key]; ok && value != nil {
				return value
			}
		}
	case "message":
		for _, key := range messageParameterKeys {
			if value, ok := node.Parameters[key]; ok && value != nil {
				return value
			}
		}
	case "to":
		if value, ok := node.Parameters["recipient"]; ok && value != nil {
			return value
		}
	case "language":
		if blockType == domain.BlockType_Function {
			return fallbackLanguage
		}
	case "condition":
		if conditions, ok := node.Parameters["conditions"]; ok && conditions != nil {
			if serialized, err := json.Marshal(conditions); err == nil {
				return string(serialized)
			}
		}
	}

	return slot.DefaultValue()
}

// genericSubBlocks maps every source parameter to its own slot, choosing the
// slot type by value shape: long strings become long-form text, everything
// else short-form.
func genericSubBlocks(node Node) map[string]domain.SubBlock {
	subBlocks := make(map[string]domain.SubBlock, len(node.Parameters))

	for key, value := range node.Parameters {
		slotType := domain.SubBlockType_ShortInput

		if s, ok := value.(string); ok && len(s) > longInputThreshold {
			slotType = domain.SubBlockType_LongInput
		}

		subBlocks[key] = domain.SubBlock{
			ID:    key,
			Type:  slotType,
			Value: value,
		}
	}

	return subBlocks
}

func (c *Converter) buildOutputs(blockType domain.BlockType) map[string]domain.OutputPort {
	definition, ok := c.registry.GetBlockDefinition(blockType)
	if !ok || len(definition.Outputs) == 0 {
		return map[string]domain.OutputPort{
			"result": {Type: "any", Description: "result output"},
		}
	}

	outputs := make(map[string]domain.OutputPort, len(definition.Outputs))

	for name, declared := range definition.Outputs {
		description := declared.Description
		if description == "" {
			description = fmt.Sprintf("%s output", name)
		}

		outputs[name] = domain.OutputPort{
			Type:        declared.Type,
			Description: description,
		}
	}

	return outputs
}

// checkScheduleExpression warns when a schedule block carries a cron
// expression the platform scheduler cannot parse. The block is still
// converted as-is.
func (c *Converter) checkScheduleExpression(blockType domain.BlockType, subBlocks map[string]domain.SubBlock, node Node) []string {
	if blockType != domain.BlockType_Schedule {
		return nil
	}

	expression, ok := subBlocks["cronExpression"].Value.(string)
	if !ok || expression == "" {
		return nil
	}

	if _, err := cron.ParseStandard(expression); err != nil {
		return []string{fmt.Sprintf("Node %q has a cron expression %q the scheduler cannot parse", node.Name, expression)}
	}

	return nil
}

func sourceHandleFor(sourceType domain.BlockType, branchIndex int) string {
	if sourceType != domain.BlockType_Condition {
		return domain.SourceHandleDefault
	}

	// Only the first two branches of a conditional are distinguishable;
	// higher branch indexes collapse onto the else handle.
	if branchIndex == 0 {
		return domain.SourceHandleConditionTrue
	}

	return domain.SourceHandleConditionElse
}

func nodePosition(node Node) domain.BlockPosition {
	if len(node.Position) != 2 {
		return domain.BlockPosition{}
	}

	return domain.BlockPosition{X: node.Position[0], Y: node.Position[1]}
}
