//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"speaker-scribe/internal/api/server"
	"speaker-scribe/internal/app/converter"
	"speaker-scribe/internal/config"
)

// InitializeServer builds the HTTP server for the given configuration
func InitializeServer(cfg *config.Config) (*server.Server, func(), error) {
	wire.Build(ServerSet)
	return nil, nil, nil
}

// InitializeConverter builds the batch converter for the given configuration
func InitializeConverter(cfg *config.Config, progress converter.ProgressConfig) (*converter.Converter, func(), error) {
	wire.Build(ConverterSet)
	return nil, nil, nil
}
