//go:build wireinject

package main

import (
	"fixster-server/internal/domain"
	"fixster-server/internal/infrastructure"
	"fixster-server/internal/interfaces"
	"fixster-server/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
