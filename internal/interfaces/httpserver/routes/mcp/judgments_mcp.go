package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/janhq/saos-mcp-server/internal/domain/judgment"
	"github.com/janhq/saos-mcp-server/internal/infrastructure/metrics"
	"github.com/janhq/saos-mcp-server/utils/platformerrors"
)

// Tool key constants
const (
	ToolKeySearchJudgments = "search_judgments"
	ToolKeyGetJudgment     = "get_judgment"
)

// nullResult is the text content of a failed tool call.
const nullResult = "null"

// Error codes attached to logged SAOS failures, one per tool.
var toolErrorCodes = map[string]string{
	ToolKeySearchJudgments: "5d0b7c1e-8a43-4f2e-b9d6-2c71e0a4f318",
	ToolKeyGetJudgment:     "b8e2f6a9-1c57-4d03-a6f4-93e5d7c20b81",
}

// SearchJudgmentsArgs defines the arguments for the search_judgments tool.
// Every field is optional; sorting and paging fall back to the SAOS defaults.
type SearchJudgmentsArgs struct {
	JudgeName        *string                 `json:"judge_name,omitempty" jsonschema:"Name of a judge who took part in the judgment"`
	CaseNumber       *string                 `json:"case_number,omitempty" jsonschema:"Case signature, for example II CSK 123/19"`
	CourtType        *judgment.CourtType     `json:"court_type,omitempty" jsonschema:"Court type: COMMON, SUPREME, ADMINISTRATIVE, CONSTITUTIONAL_TRIBUNAL or NATIONAL_APPEAL_CHAMBER"`
	JudgmentDateFrom *string                 `json:"judgment_date_from,omitempty" jsonschema:"Earliest judgment date in YYYY-MM-DD format"`
	JudgmentDateTo   *string                 `json:"judgment_date_to,omitempty" jsonschema:"Latest judgment date in YYYY-MM-DD format"`
	SortField        *judgment.SortField     `json:"sort_field,omitempty" jsonschema:"Sorting field, for example JUDGMENT_DATE (default), DATABASE_ID or REFERENCING_JUDGMENTS_COUNT"`
	SortDirection    *judgment.SortDirection `json:"sort_direction,omitempty" jsonschema:"Sorting direction ASC or DESC (default DESC)"`
	PageNumber       *int                    `json:"page_number,omitempty" jsonschema:"Zero-based page number (default 0)"`
	PageSize         *int                    `json:"page_size,omitempty" jsonschema:"Results per page between 10 and 100 (default 10)"`
}

// Query overlays the supplied arguments on the default search query.
func (a SearchJudgmentsArgs) Query() judgment.SearchQuery {
	q := judgment.NewSearchQuery()
	q.JudgeName = judgment.FromPtr(a.JudgeName)
	q.CaseNumber = judgment.FromPtr(a.CaseNumber)
	q.CourtType = judgment.FromPtr(a.CourtType)
	q.JudgmentDateFrom = judgment.FromPtr(a.JudgmentDateFrom)
	q.JudgmentDateTo = judgment.FromPtr(a.JudgmentDateTo)
	q.SortField = q.SortField.Or(judgment.FromPtr(a.SortField))
	q.SortDirection = q.SortDirection.Or(judgment.FromPtr(a.SortDirection))
	q.PageNumber = q.PageNumber.Or(judgment.FromPtr(a.PageNumber))
	q.PageSize = q.PageSize.Or(judgment.FromPtr(a.PageSize))
	return q
}

// GetJudgmentArgs defines the arguments for the get_judgment tool.
type GetJudgmentArgs struct {
	ID int64 `json:"id" jsonschema:"SAOS identifier of the judgment"`
}

// JudgmentsMCP handles MCP tool registration for SAOS judgments.
type JudgmentsMCP struct {
	judgmentService *judgment.JudgmentService
}

// NewJudgmentsMCP creates a new judgments MCP handler.
func NewJudgmentsMCP(judgmentService *judgment.JudgmentService) *JudgmentsMCP {
	return &JudgmentsMCP{judgmentService: judgmentService}
}

var toolDescriptions = map[string]string{
	ToolKeySearchJudgments: "Search Polish court judgments in SAOS (System Analizy Orzeczeń Sądowych). " +
		"Filters by judge name, case number, court type and judgment date range; results are paged and sorted. " +
		"Returns the SAOS search response unchanged, or null when the SAOS API is unavailable.",
	ToolKeyGetJudgment: "Fetch a single judgment from SAOS by its numeric identifier, including its full text and metadata. " +
		"Returns the SAOS response unchanged, or null when the SAOS API is unavailable.",
}

// RegisterTools registers the judgment tools with the MCP server
func (j *JudgmentsMCP) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolKeySearchJudgments,
		Description: toolDescriptions[ToolKeySearchJudgments],
		Annotations: readOnlyAnnotations("Search court judgments"),
	}, j.searchJudgments)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolKeyGetJudgment,
		Description: toolDescriptions[ToolKeyGetJudgment],
		Annotations: readOnlyAnnotations("Get court judgment"),
	}, j.getJudgment)
}

func (j *JudgmentsMCP) searchJudgments(ctx context.Context, _ *mcp.CallToolRequest, input SearchJudgmentsArgs) (*mcp.CallToolResult, any, error) {
	startTime := time.Now()
	query := input.Query()

	log.Info().
		Str("tool", ToolKeySearchJudgments).
		Msg("MCP tool call received")
	log.Debug().
		Str("tool", ToolKeySearchJudgments).
		Interface("params", query.Params()).
		Msg("search_judgments request details")

	body, err := j.judgmentService.SearchJudgments(ctx, query)
	return toolResult(ctx, ToolKeySearchJudgments, startTime, body, err)
}

func (j *JudgmentsMCP) getJudgment(ctx context.Context, _ *mcp.CallToolRequest, input GetJudgmentArgs) (*mcp.CallToolResult, any, error) {
	startTime := time.Now()

	log.Info().
		Str("tool", ToolKeyGetJudgment).
		Int64("judgment_id", input.ID).
		Msg("MCP tool call received")

	body, err := j.judgmentService.GetJudgment(ctx, input.ID)
	return toolResult(ctx, ToolKeyGetJudgment, startTime, body, err)
}

// toolResult converts a service outcome into the tool result. Failures never
// surface as Go errors: they become an isError result whose only content is
// the null sentinel.
func toolResult(ctx context.Context, tool string, startTime time.Time, body json.RawMessage, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		platformerrors.LogError(log.Logger, zerolog.WarnLevel, platformerrors.FromUnavailable(ctx, err, toolErrorCodes[tool]))
		metrics.RecordToolCall(tool, "error", time.Since(startTime).Seconds())
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: nullResult}},
			IsError: true,
		}, nil, nil
	}

	metrics.RecordToolCall(tool, "success", time.Since(startTime).Seconds())
	result := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
	}
	// Structured content must be an object; other JSON values travel as text only.
	if isJSONObject(body) {
		return result, body, nil
	}
	return result, nil, nil
}

func isJSONObject(body json.RawMessage) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func readOnlyAnnotations(title string) *mcp.ToolAnnotations {
	openWorld := true
	return &mcp.ToolAnnotations{
		Title:         title,
		ReadOnlyHint:  true,
		OpenWorldHint: &openWorld,
	}
}
