package domain

// SubBlockType identifies the editor widget of a configuration slot.
type SubBlockType string

const (
	SubBlockType_ShortInput SubBlockType = "short-input"
	SubBlockType_LongInput  SubBlockType = "long-input"
	SubBlockType_Code       SubBlockType = "code"
	SubBlockType_Dropdown   SubBlockType = "dropdown"
	SubBlockType_Switch     SubBlockType = "switch"
	SubBlockType_Table      SubBlockType = "table"
)

// SubBlockDefinition declares one configuration slot of a block type.
// Default is a fixed default value; DefaultFunc computes one on demand.
// When both are set DefaultFunc wins.
type SubBlockDefinition struct {
	ID          string
	Type        SubBlockType
	Default     any
	DefaultFunc func() any
}

// DefaultValue resolves the declared default, or nil when none is declared.
func (d SubBlockDefinition) DefaultValue() any {
	if d.DefaultFunc != nil {
		return d.DefaultFunc()
	}

	return d.Default
}

// OutputDefinition declares one output port of a block type. An empty
// Description is shorthand for "just the type"; consumers synthesize a
// "<name> output" description for it.
type OutputDefinition struct {
	Type        string
	Description string
}

// BlockDefinition is one entry of the platform block catalog.
type BlockDefinition struct {
	Type      BlockType
	Name      string
	SubBlocks []SubBlockDefinition
	Outputs   map[string]OutputDefinition
}

// BlockRegistry exposes the platform block catalog.
type BlockRegistry interface {
	GetBlockDefinition(blockType BlockType) (BlockDefinition, bool)
}

// BlockTypeChecker answers whether a block type is instantiable on the
// platform.
type BlockTypeChecker interface {
	BlockTypeExists(blockType BlockType) bool
}
