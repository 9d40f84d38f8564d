package routes

import (
	"github.com/google/wire"

	"github.com/janhq/saos-mcp-server/internal/interfaces/httpserver/routes/mcp"
)

// RoutesProvider provides all route dependencies
var RoutesProvider = wire.NewSet(
	mcp.NewJudgmentsMCP,
	mcp.NewMCPRoute,
)
