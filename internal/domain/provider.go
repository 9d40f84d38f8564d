package domain

import (
	"github.com/google/wire"

	"github.com/janhq/saos-mcp-server/internal/domain/judgment"
)

// DomainProvider provides all domain services
var DomainProvider = wire.NewSet(
	judgment.NewJudgmentService,
)
