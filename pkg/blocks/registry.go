package blocks

import (
	"github.com/flowbaker/workflow-importer/pkg/domain"
)

// Registry is the in-memory block catalog. It implements both
// domain.BlockRegistry and domain.BlockTypeChecker.
type Registry struct {
	definitions map[domain.BlockType]domain.BlockDefinition
}

func NewRegistry() *Registry {
	return NewRegistryWithDefinitions(Definitions)
}

func NewRegistryWithDefinitions(definitions []domain.BlockDefinition) *Registry {
	byType := make(map[domain.BlockType]domain.BlockDefinition, len(definitions))

	for _, definition := range definitions {
		byType[definition.Type] = definition
	}

	return &Registry{definitions: byType}
}

func (r *Registry) GetBlockDefinition(blockType domain.BlockType) (domain.BlockDefinition, bool) {
	definition, ok := r.definitions[blockType]

	return definition, ok
}

func (r *Registry) BlockTypeExists(blockType domain.BlockType) bool {
	_, ok := r.definitions[blockType]

	return ok
}
