//go:build wireinject
// +build wireinject

package di

import (
	"EconWatch/pkg/config"
	"EconWatch/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideMemoCache,
		ProvideHTTPClient,
		ProvideSeriesSource,
		ProvideChartBuilder,
		ProvideDashboardHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
