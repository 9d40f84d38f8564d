package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/janhq/saos-mcp-server/internal/interfaces/httpserver/responses"
	"github.com/janhq/saos-mcp-server/utils/platformerrors"
)

const (
	serverName    = "saos-mcp-server"
	serverVersion = "1.0.0"
)

var allowedMCPMethods = map[string]bool{
	// Initialization / handshake
	"initialize":                true,
	"notifications/initialized": true,
	"notifications/cancelled":   true,
	"ping":                      true,

	// Tools
	"tools/list": true,
	"tools/call": true,
}

// MCPRoute owns the MCP server and exposes it over stdio or streamable HTTP.
type MCPRoute struct {
	judgmentsMCP *JudgmentsMCP
	mcpServer    *mcp.Server
	httpHandler  http.Handler
}

// NewMCPRoute creates the MCP server and registers the judgment tools on it.
func NewMCPRoute(judgmentsMCP *JudgmentsMCP) *MCPRoute {
	impl := &mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}
	server := mcp.NewServer(impl, nil)

	judgmentsMCP.RegisterTools(server)

	return &MCPRoute{
		judgmentsMCP: judgmentsMCP,
		mcpServer:    server,
		httpHandler: mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
			return server
		}, &mcp.StreamableHTTPOptions{Stateless: true}),
	}
}

// Server returns the underlying MCP server.
func (route *MCPRoute) Server() *mcp.Server {
	return route.mcpServer
}

// ServeStdio serves MCP over stdin/stdout until the host closes the stream or
// ctx is cancelled.
func (route *MCPRoute) ServeStdio(ctx context.Context) error {
	return route.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

func (route *MCPRoute) RegisterRouter(router *gin.RouterGroup) {
	router.POST("/mcp",
		MCPMethodGuard(allowedMCPMethods),
		route.serveMCP,
	)
}

// serveMCP streams Model Context Protocol responses using the underlying MCP server.
// @Summary MCP endpoint for SAOS judgment tools
// @Description Handles Model Context Protocol (MCP) requests over HTTP. Supports MCP methods: initialize, ping, tools/list, tools/call.
// @Description
// @Description **Available Tools:**
// @Description - `search_judgments`: Search SAOS court judgments (params: judge_name, case_number, court_type, judgment_date_from, judgment_date_to, sort_field, sort_direction, page_number, page_size).
// @Description - `get_judgment`: Fetch one judgment by SAOS id (params: id).
// @Description
// @Description **MCP Protocol:**
// @Description - Request format: JSON-RPC 2.0 with method and params
// @Description - Response format: Server-Sent Events (SSE) stream
// @Description - Stateless mode (no session management)
// @Tags MCP API
// @Accept json
// @Produce text/event-stream
// @Param request body object true "MCP JSON-RPC request payload (e.g., {\"jsonrpc\":\"2.0\",\"method\":\"tools/list\",\"id\":1})"
// @Success 200 {string} string "Streamed MCP response in SSE format"
// @Failure 400 {object} responses.ErrorResponse "Invalid MCP request payload or unsupported method"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/mcp [post]
func (route *MCPRoute) serveMCP(reqCtx *gin.Context) {
	// Force acceptable content types for go-sdk streamable handler even if client omits Accept.
	reqCtx.Request.Header.Set("Accept", "application/json, text/event-stream")
	route.httpHandler.ServeHTTP(reqCtx.Writer, reqCtx.Request)
}

// MCPMethodGuard rejects empty, malformed and unsupported JSON-RPC requests
// before they reach the MCP handler. The body is restored for the next handler.
func MCPMethodGuard(allowedMethods map[string]bool) gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		bodyBytes, err := io.ReadAll(reqCtx.Request.Body)
		if err != nil {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeInternal, "failed to read MCP request body", "0c9e4b7a-52d1-4f86-a3e0-7b1d95c6e2f4")
			return
		}
		_ = reqCtx.Request.Body.Close()

		if len(bodyBytes) == 0 {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "empty MCP request body", "e41a7d2c-96b3-4c05-8f1e-d2a6b8c3f709")
			return
		}

		reqCtx.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var payload struct {
			Method string `json:"method"`
		}

		if err := json.Unmarshal(bodyBytes, &payload); err != nil {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid MCP request payload", "7f3b1e9d-0a64-4d2c-b5f8-1e9c4a7d6b23")
			return
		}

		if payload.Method == "" {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "missing method field in MCP request", "a26d8f4b-3e1c-4b97-9d05-c8f7e2a1b364")
			return
		}

		if !allowedMethods[payload.Method] {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "unsupported MCP method: "+payload.Method, "d95c2a6e-7b48-4f13-a0d9-6e3b1c8f5a72")
			return
		}

		reqCtx.Next()
	}
}
