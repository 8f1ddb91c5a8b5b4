package external

import (
	"context"
	"net/http"

	dphttp "github.com/ONSdigital/dp-net/v2/http"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"

	"github.com/opendatamirror/dp-catalog-sync/catalog"
	"github.com/opendatamirror/dp-catalog-sync/config"
	"github.com/opendatamirror/dp-catalog-sync/service"
	"github.com/opendatamirror/dp-catalog-sync/sqlite"
)

// External implements the service.Dependencies interface for actual external services.
type External struct{}

var _ service.Dependencies = &External{}

func (*External) Store(ctx context.Context, cfg *config.Config) (service.Store, error) {
	return sqlite.New(ctx, cfg.DatabaseFile)
}

func (*External) CatalogClient(cfg *config.Config) service.CatalogClient {
	return catalog.New(cfg.CatalogAPIURL, cfg.CatalogUserAgent, cfg.CatalogRequestTimeout)
}

func (*External) HealthCheck(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
	versionInfo, err := healthcheck.NewVersionInfo(buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	hc := healthcheck.New(versionInfo, cfg.HealthCheckCriticalTimeout, cfg.HealthCheckInterval)
	return &hc, nil
}

func (*External) HttpServer(cfg *config.Config, r http.Handler) service.HTTPServer {
	s := dphttp.NewServer(cfg.BindAddr, r)
	s.HandleOSSignals = false

	return s
}
