package n8n

import (
	"strings"
	"unicode"

	"github.com/flowbaker/workflow-importer/pkg/domain"
)

// MatchKind names the resolution strategy that produced a block type. The
// converter warns when a node landed on the catch-all, since nothing is known
// about such a type.
type MatchKind int

const (
	MatchTable MatchKind = iota
	MatchHeuristic
	MatchFallback
)

type ResolvedBlockType struct {
	Type   domain.BlockType
	Height float64
	Match  MatchKind
}

const (
	// StickyNoteType is n8n's annotation pseudo-node; it carries no
	// executable semantics and is dropped during conversion.
	StickyNoteType = "n8n-nodes-base.stickyNote"

	heuristicHeight = float64(230)
	fallbackHeight  = float64(143)
)

type blockMapping struct {
	Type   domain.BlockType
	Height float64
}

// blockTypeMappings maps known n8n node types onto curated platform blocks.
// Exact matches always win over the name heuristic.
var blockTypeMappings = map[string]blockMapping{
	// Triggers
	"n8n-nodes-base.manualTrigger":   {domain.BlockType_Starter, 95},
	"n8n-nodes-base.start":           {domain.BlockType_Starter, 95},
	"n8n-nodes-base.webhook":         {domain.BlockType_Webhook, 95},
	"n8n-nodes-base.cron":            {domain.BlockType_Schedule, 95},
	"n8n-nodes-base.scheduleTrigger": {domain.BlockType_Schedule, 95},
	"n8n-nodes-base.errorTrigger":    {domain.BlockType_Starter, 95},

	// Logic and branching
	"n8n-nodes-base.if":     {domain.BlockType_Condition, 143},
	"n8n-nodes-base.switch": {domain.BlockType_Condition, 143},
	"n8n-nodes-base.filter": {domain.BlockType_Condition, 143},
	"n8n-nodes-base.merge":  {domain.BlockType_Router, 143},

	// Code execution
	"n8n-nodes-base.code":         {domain.BlockType_Function, 143},
	"n8n-nodes-base.function":     {domain.BlockType_Function, 143},
	"n8n-nodes-base.functionItem": {domain.BlockType_Function, 143},
	"n8n-nodes-base.set":          {domain.BlockType_Function, 143},

	// HTTP
	"n8n-nodes-base.httpRequest":      {domain.BlockType_API, 127},
	"n8n-nodes-base.respondToWebhook": {domain.BlockType_Response, 127},

	// Databases
	"n8n-nodes-base.postgres": {domain.BlockType_PostgreSQL, 230},
	"n8n-nodes-base.mySql":    {domain.BlockType_MySQL, 230},
	"n8n-nodes-base.mongoDb":  {domain.BlockType_MongoDB, 230},
	"n8n-nodes-base.redis":    {domain.BlockType_Redis, 230},
	"n8n-nodes-base.supabase": {domain.BlockType_Supabase, 230},

	// Communication and chat
	"n8n-nodes-base.slack":     {domain.BlockType_Slack, 230},
	"n8n-nodes-base.discord":   {domain.BlockType_Discord, 230},
	"n8n-nodes-base.telegram":  {domain.BlockType_Telegram, 230},
	"n8n-nodes-base.gmail":     {domain.BlockType_Gmail, 230},
	"n8n-nodes-base.emailSend": {domain.BlockType_Mail, 230},

	// Storage and files
	"n8n-nodes-base.googleSheets":  {domain.BlockType_GoogleSheets, 230},
	"n8n-nodes-base.googleDrive":   {domain.BlockType_GoogleDrive, 230},
	"n8n-nodes-base.awsS3":         {domain.BlockType_S3, 230},
	"n8n-nodes-base.dropbox":       {domain.BlockType_Dropbox, 230},
	"n8n-nodes-base.readWriteFile": {domain.BlockType_File, 230},

	// Payment
	"n8n-nodes-base.stripe": {domain.BlockType_Stripe, 230},

	// Misc
	"n8n-nodes-base.github":            {domain.BlockType_Github, 230},
	"n8n-nodes-base.jira":              {domain.BlockType_Jira, 230},
	"n8n-nodes-base.notion":            {domain.BlockType_Notion, 230},
	"n8n-nodes-base.openAi":            {domain.BlockType_Agent, 230},
	"@n8n/n8n-nodes-langchain.agent":   {domain.BlockType_Agent, 230},
	"@n8n/n8n-nodes-langchain.openAi":  {domain.BlockType_Agent, 230},
	"@n8n/n8n-nodes-langchain.lmChat":  {domain.BlockType_Agent, 230},
	"n8n-nodes-base.sendEmail":         {domain.BlockType_Mail, 230},
	"n8n-nodes-base.executeWorkflow":   {domain.BlockType_Function, 143},
	"n8n-nodes-base.noOp":              {domain.BlockType_Function, 143},
	"n8n-nodes-base.itemLists":         {domain.BlockType_Function, 143},
	"n8n-nodes-base.splitInBatches":    {domain.BlockType_Router, 143},
	"n8n-nodes-base.wait":              {domain.BlockType_Function, 143},
	"n8n-nodes-base.extractFromFile":   {domain.BlockType_File, 230},
	"n8n-nodes-base.convertToFile":     {domain.BlockType_File, 230},
	"n8n-nodes-base.spreadsheetFile":   {domain.BlockType_GoogleSheets, 230},
	"n8n-nodes-base.graphql":           {domain.BlockType_API, 127},
	"n8n-nodes-base.webhookResponse":   {domain.BlockType_Response, 127},
	"n8n-nodes-base.microsoftOutlook":  {domain.BlockType_Mail, 230},
	"n8n-nodes-base.googleCalendar":    {domain.BlockType_GoogleDrive, 230},
	"n8n-nodes-base.airtable":          {domain.BlockType_GoogleSheets, 230},
	"n8n-nodes-base.compareDatasets":   {domain.BlockType_Condition, 143},
	"n8n-nodes-base.scheduleWorkflow":  {domain.BlockType_Schedule, 95},
	"@n8n/n8n-nodes-langchain.chainLlm": {domain.BlockType_Agent, 230},
}

// knownTriggerTypes are n8n node types that are triggers without carrying the
// Trigger suffix.
var knownTriggerTypes = map[string]struct{}{
	"n8n-nodes-base.manualTrigger": {},
	"n8n-nodes-base.start":         {},
	"n8n-nodes-base.webhook":       {},
	"n8n-nodes-base.cron":          {},
}

// ResolveBlockType maps an n8n node type onto a platform block type and
// default layout height. Strategies run in order, first match wins: the
// curated table, then the namespace heuristic (last dotted segment,
// camelCase folded to snake_case), then the generic function catch-all for
// bare identifiers.
func ResolveBlockType(nodeType string) ResolvedBlockType {
	if mapping, ok := blockTypeMappings[nodeType]; ok {
		return ResolvedBlockType{Type: mapping.Type, Height: mapping.Height, Match: MatchTable}
	}

	if idx := strings.LastIndex(nodeType, "."); idx >= 0 {
		segment := nodeType[idx+1:]

		return ResolvedBlockType{Type: domain.BlockType(camelToSnake(segment)), Height: heuristicHeight, Match: MatchHeuristic}
	}

	return ResolvedBlockType{Type: domain.BlockType_Function, Height: fallbackHeight, Match: MatchFallback}
}

// IsTriggerNode reports whether a node acts as a workflow entry point: a
// known trigger type, a type ending in "Trigger", or the first node in the
// source list. The first-node rule is a deliberate approximation of entry
// point semantics and can misclassify; that is accepted.
func IsTriggerNode(node Node, index int) bool {
	if _, ok := knownTriggerTypes[node.Type]; ok {
		return true
	}

	if strings.HasSuffix(node.Type, "Trigger") {
		return true
	}

	return index == 0
}

func camelToSnake(s string) string {
	var b strings.Builder

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
