package n8n

import (
	"testing"

	"github.com/flowbaker/workflow-importer/pkg/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveBlockType(t *testing.T) {
	tests := []struct {
		name           string
		nodeType       string
		expectedType   domain.BlockType
		expectedHeight float64
		expectedMatch  MatchKind
	}{
		{
			name:           "exact match webhook",
			nodeType:       "n8n-nodes-base.webhook",
			expectedType:   domain.BlockType_Webhook,
			expectedHeight: 95,
			expectedMatch:  MatchTable,
		},
		{
			name:           "exact match condition",
			nodeType:       "n8n-nodes-base.if",
			expectedType:   domain.BlockType_Condition,
			expectedHeight: 143,
			expectedMatch:  MatchTable,
		},
		{
			name:           "exact match langchain agent",
			nodeType:       "@n8n/n8n-nodes-langchain.agent",
			expectedType:   domain.BlockType_Agent,
			expectedHeight: 230,
			expectedMatch:  MatchTable,
		},
		{
			name:           "exact match wins over heuristic",
			nodeType:       "n8n-nodes-base.httpRequest",
			expectedType:   domain.BlockType_API,
			expectedHeight: 127,
			expectedMatch:  MatchTable,
		},
		{
			name:           "namespaced unknown type uses snake case heuristic",
			nodeType:       "n8n-nodes-base.someCustomNode",
			expectedType:   "some_custom_node",
			expectedHeight: 230,
			expectedMatch:  MatchHeuristic,
		},
		{
			name:           "heuristic takes last segment only",
			nodeType:       "vendor.pkg.mailChimp",
			expectedType:   "mail_chimp",
			expectedHeight: 230,
			expectedMatch:  MatchHeuristic,
		},
		{
			name:           "bare identifier falls back to function",
			nodeType:       "customThing",
			expectedType:   domain.BlockType_Function,
			expectedHeight: 143,
			expectedMatch:  MatchFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveBlockType(tt.nodeType)

			assert.Equal(t, tt.expectedType, resolved.Type)
			assert.Equal(t, tt.expectedHeight, resolved.Height)
			assert.Equal(t, tt.expectedMatch, resolved.Match)
		})
	}
}

func TestIsTriggerNode(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		index    int
		expected bool
	}{
		{
			name:     "known trigger type",
			node:     Node{Type: "n8n-nodes-base.webhook"},
			index:    3,
			expected: true,
		},
		{
			name:     "trigger suffix",
			node:     Node{Type: "n8n-nodes-base.scheduleTrigger"},
			index:    5,
			expected: true,
		},
		{
			name:     "first node is treated as trigger",
			node:     Node{Type: "n8n-nodes-base.slack"},
			index:    0,
			expected: true,
		},
		{
			name:     "non trigger later in the list",
			node:     Node{Type: "n8n-nodes-base.slack"},
			index:    2,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTriggerNode(tt.node, tt.index))
		})
	}
}

func TestCamelToSnake(t *testing.T) {
	assert.Equal(t, "http_request", camelToSnake("httpRequest"))
	assert.Equal(t, "read_write_file", camelToSnake("readWriteFile"))
	assert.Equal(t, "plain", camelToSnake("plain"))
	assert.Equal(t, "upper", camelToSnake("Upper"))
}
