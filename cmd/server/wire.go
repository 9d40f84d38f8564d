//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/janhq/saos-mcp-server/internal/domain"
	"github.com/janhq/saos-mcp-server/internal/infrastructure"
	"github.com/janhq/saos-mcp-server/internal/interfaces"
	"github.com/janhq/saos-mcp-server/internal/interfaces/httpserver/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.DomainProvider,
		infrastructure.InfrastructureProvider,
		routes.RoutesProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
