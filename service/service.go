package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ONSdigital/dp-api-clients-go/v2/middleware"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dprequest "github.com/ONSdigital/dp-net/v2/request"
	"github.com/ONSdigital/log.go/v2/log"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"

	"github.com/opendatamirror/dp-catalog-sync/api"
	"github.com/opendatamirror/dp-catalog-sync/config"
	"github.com/opendatamirror/dp-catalog-sync/datasync"
	"github.com/opendatamirror/dp-catalog-sync/storage"
)

// CatalogSync represents the configuration to run the catalog sync service
type CatalogSync struct {
	store       Store
	catalog     CatalogClient
	router      *mux.Router
	server      HTTPServer
	shutdown    time.Duration
	healthCheck HealthChecker
}

// Generate mocks of dependencies
//
//go:generate moq -pkg service_test -out moq_service_test.go . Dependencies HealthChecker HTTPServer CatalogClient

// Dependencies holds constructors/factories for all external dependencies
type Dependencies interface {
	Store(ctx context.Context, cfg *config.Config) (Store, error)
	CatalogClient(cfg *config.Config) CatalogClient
	HealthCheck(*config.Config, string, string, string) (HealthChecker, error)
	HttpServer(*config.Config, http.Handler) HTTPServer
}

// Store is the persistence layer as the service wires it: the query surface
// plus lifecycle and health hooks.
type Store interface {
	storage.Store
	Checker(ctx context.Context, state *healthcheck.CheckState) error
	Close(ctx context.Context) error
}

// CatalogClient is the upstream catalog as the service wires it.
type CatalogClient interface {
	datasync.CatalogClient
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

// HealthChecker abstracts healthcheck.HealthCheck so we can create a mock.
type HealthChecker interface {
	AddCheck(string, healthcheck.Checker) error
	Start(context.Context)
	Stop()
	Handler(http.ResponseWriter, *http.Request)
}

// HTTPServer defines the required methods from the HTTP server
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// New returns a new CatalogSync service with dependencies initialised based on cfg and deps.
func New(ctx context.Context, buildTime, gitCommit, version string, cfg *config.Config, deps Dependencies) (*CatalogSync, error) {
	svc := &CatalogSync{
		shutdown: cfg.GracefulShutdownTimeout,
		catalog:  deps.CatalogClient(cfg),
	}

	store, err := deps.Store(ctx, cfg)
	if err != nil {
		log.Error(ctx, "could not open the store", err)
		return nil, err
	}
	svc.store = store

	hc, err := deps.HealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		log.Fatal(ctx, "could not create health checker", err)
		return nil, err
	}
	svc.healthCheck = hc
	if err = svc.registerCheckers(ctx); err != nil {
		return nil, err
	}

	syncer := datasync.New(store, svc.catalog, cfg.DefaultMaxRows)

	router := mux.NewRouter()
	api.Setup(router, store, syncer, cfg)
	router.HandleFunc("/health", hc.Handler)
	svc.router = router

	// Middleware chain with whitelisted handler for the /health endpoint.
	middlewareChain := alice.New(
		middleware.Whitelist(middleware.HealthcheckFilter(hc.Handler)),
		dprequest.HandlerRequestID(16),
		gorillahandlers.CORS(gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost})),
	)

	svc.server = deps.HttpServer(cfg, middlewareChain.Then(router))

	return svc, nil
}

func (svc *CatalogSync) registerCheckers(ctx context.Context) error {
	var hasErrors bool
	hc := svc.healthCheck

	if err := hc.AddCheck("Store", svc.store.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "error adding check for store", err)
	}

	if err := hc.AddCheck("Catalog API", svc.catalog.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "error adding check for catalog api", err)
	}

	if hasErrors {
		return errors.New("Error(s) registering checkers for healthcheck")
	}
	return nil
}

func (svc *CatalogSync) Run(ctx context.Context) {
	svc.healthCheck.Start(ctx)
	go func() {
		log.Info(ctx, "starting catalog sync service...")
		if err := svc.server.ListenAndServe(); err != nil {
			log.Error(ctx, "catalog sync http service returned an error", err)
		}
	}()
}

func (svc *CatalogSync) Close(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, svc.shutdown)
	defer cancel()

	// Gracefully shutdown the application closing any open resources.
	log.Info(shutdownCtx, "shutdown with timeout", log.Data{"timeout": svc.shutdown})

	shutdownStart := time.Now()
	svc.healthCheck.Stop()

	if err := svc.server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := svc.store.Close(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "error closing the store", err)
		return err
	}

	log.Info(shutdownCtx, "shutdown complete", log.Data{"duration": time.Since(shutdownStart)})

	return nil
}
