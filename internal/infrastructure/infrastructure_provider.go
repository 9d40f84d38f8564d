package infrastructure

import (
	"github.com/google/wire"

	"github.com/janhq/saos-mcp-server/internal/domain/judgment"
	"github.com/janhq/saos-mcp-server/internal/infrastructure/config"
	"github.com/janhq/saos-mcp-server/internal/infrastructure/saos"
)

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// SAOS API executor
	ProvideSAOSClient,
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideSAOSClient provides the executor used by the judgment service
func ProvideSAOSClient(cfg *config.Config) judgment.Executor {
	return saos.NewClient(saos.ClientConfig{
		BaseURL:   cfg.APIBaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout(),
	})
}
