//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"toncenter-client/internal/conf"
	"toncenter-client/internal/service"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireQueryService init the query service.
func wireQueryService(*conf.Toncenter, *zap.Logger) (*service.QueryService, error) {
	panic(wire.Build(service.ProviderSet))
}
