package di

import (
	"fmt"

	"EconWatch/internal/domain/repository"
	"EconWatch/internal/handler/api"
	"EconWatch/internal/service/worldbank"
	"EconWatch/internal/usecase"
	"EconWatch/pkg/cache"
	"EconWatch/pkg/config"
	xhttp "EconWatch/pkg/http"
	applogger "EconWatch/pkg/logger"
	"EconWatch/pkg/metrics"
	"EconWatch/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMemoCache creates the fetch memoization store.
func ProvideMemoCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Backend == "redis" {
		c, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideHTTPClient creates the outbound HTTP client for the source API.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(xhttp.WithTimeout(cfg.WorldBank.Timeout))
}

// ProvideSeriesSource creates the World Bank series source.
func ProvideSeriesSource(
	cfg *config.Config,
	httpc *xhttp.Client,
	memo cache.Service,
	m repository.Metrics,
	l *applogger.Logger,
) repository.SeriesSource {
	c := worldbank.New(cfg.WorldBank.BaseURL, cfg.WorldBank.PerPage, httpc, memo, m)
	c.SetLogger(l)
	return c
}

// ProvideChartBuilder creates the chart pipeline use case.
func ProvideChartBuilder(source repository.SeriesSource, m repository.Metrics) *usecase.ChartBuilder {
	return usecase.NewChartBuilder(source, m)
}

// ProvideDashboardHandler creates the Echo HTTP handler.
func ProvideDashboardHandler(l *applogger.Logger, builder *usecase.ChartBuilder) *api.DashboardHandler {
	return api.NewDashboardHandler(l, builder)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h *api.DashboardHandler, memo cache.Service) *server.App {
	return server.New(cfg, l, h, memo)
}
