package n8n

import "fmt"

// ValidateWorkflow checks that a raw parsed JSON value has the minimal n8n
// workflow shape before conversion is attempted. Checks run in order and the
// first failure wins. The check is intentionally shallow: parameters,
// typeVersion and the connection entries are handled defensively during
// conversion instead.
func ValidateWorkflow(raw any) error {
	workflow, ok := raw.(map[string]any)
	if !ok || workflow == nil {
		return fmt.Errorf("workflow must be a JSON object")
	}

	nodes, ok := workflow["nodes"].([]any)
	if !ok {
		return fmt.Errorf("workflow is missing a nodes array")
	}

	if len(nodes) == 0 {
		return fmt.Errorf("workflow has no nodes")
	}

	if _, ok := workflow["connections"].(map[string]any); !ok {
		return fmt.Errorf("workflow is missing a connections object")
	}

	for i, rawNode := range nodes {
		node, ok := rawNode.(map[string]any)
		if !ok {
			return fmt.Errorf("node at index %d is not an object", i)
		}

		name, _ := node["name"].(string)
		if name == "" {
			return fmt.Errorf("node at index %d is missing a name", i)
		}

		if nodeType, _ := node["type"].(string); nodeType == "" {
			return fmt.Errorf("node %q is missing a type", name)
		}

		position, ok := node["position"].([]any)
		if !ok || len(position) != 2 {
			return fmt.Errorf("node %q has an invalid position", name)
		}
	}

	return nil
}
