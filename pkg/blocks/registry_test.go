package blocks

import (
	"testing"

	"github.com/flowbaker/workflow-importer/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry()

	definition, ok := registry.GetBlockDefinition(domain.BlockType_Webhook)
	require.True(t, ok)
	assert.Equal(t, domain.BlockType_Webhook, definition.Type)
	assert.NotEmpty(t, definition.SubBlocks)

	_, ok = registry.GetBlockDefinition("no_such_block")
	assert.False(t, ok)

	assert.True(t, registry.BlockTypeExists(domain.BlockType_Condition))
	assert.False(t, registry.BlockTypeExists("no_such_block"))
}

func TestDefinitionsAreWellFormed(t *testing.T) {
	seen := map[domain.BlockType]bool{}

	for _, definition := range Definitions {
		require.NotEmpty(t, definition.Type)
		assert.False(t, seen[definition.Type], "duplicate definition for %s", definition.Type)
		seen[definition.Type] = true

		slotIDs := map[string]bool{}
		for _, slot := range definition.SubBlocks {
			require.NotEmpty(t, slot.ID, "block %s has a slot without an id", definition.Type)
			require.NotEmpty(t, slot.Type, "block %s slot %s has no type", definition.Type, slot.ID)
			assert.False(t, slotIDs[slot.ID], "block %s declares slot %s twice", definition.Type, slot.ID)
			slotIDs[slot.ID] = true
		}

		for name, output := range definition.Outputs {
			require.NotEmpty(t, name)
			require.NotEmpty(t, output.Type, "block %s output %s has no type", definition.Type, name)
		}
	}

	// Types the importer resolves to must be present in the catalog.
	for _, required := range []domain.BlockType{
		domain.BlockType_Starter,
		domain.BlockType_Webhook,
		domain.BlockType_Schedule,
		domain.BlockType_Function,
		domain.BlockType_Condition,
	} {
		assert.True(t, seen[required], "missing definition for %s", required)
	}
}

func TestSubBlockDefaultValue(t *testing.T) {
	fixed := domain.SubBlockDefinition{ID: "method", Default: "POST"}
	assert.Equal(t, "POST", fixed.DefaultValue())

	computed := domain.SubBlockDefinition{ID: "token", DefaultFunc: func() any { return "generated" }}
	assert.Equal(t, "generated", computed.DefaultValue())

	none := domain.SubBlockDefinition{ID: "path"}
	assert.Nil(t, none.DefaultValue())
}
