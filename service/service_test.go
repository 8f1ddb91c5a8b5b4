package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"

	"github.com/opendatamirror/dp-catalog-sync/config"
	"github.com/opendatamirror/dp-catalog-sync/service"
	"github.com/opendatamirror/dp-catalog-sync/sqlite"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	buildTime := "buildTime"
	gitCommit := "gitCommit"
	version := "version"

	// We are not testing the checker function or its return value; we only need
	// a valid function to attach to clients.
	checker := func(ctx context.Context, check *healthcheck.CheckState) error {
		return nil
	}

	Convey("Setting up dependencies", t, func() {

		// Set up happy path clients and dependencies.
		//

		ctx := context.Background()
		cfg := &config.Config{
			GracefulShutdownTimeout: 5 * time.Minute,
			DefaultPageSize:         20,
			MaxPageSize:             100,
			DefaultMaxRows:          1000,
			MaxRowsLimit:            5000,
			SyncDatasetLimit:        50,
			MaxConcurrentHandlers:   5,
			DatabaseFile:            ":memory:",
		}

		mockedCatalogClient := &CatalogClientMock{
			CheckerFunc: checker,
		}

		mockedHealthChecker := &HealthCheckerMock{
			AddCheckFunc: func(s string, checker healthcheck.Checker) error {
				return nil
			},
			StartFunc: func(ctx context.Context) {},
			StopFunc:  func() {},
		}

		mockedHttpServer := &HTTPServerMock{
			ListenAndServeFunc: func() error { return nil },
			ShutdownFunc:       func(ctx context.Context) error { return nil },
		}

		mockedDependencies := &DependenciesMock{
			StoreFunc: func(ctx context.Context, cfg *config.Config) (service.Store, error) {
				return sqlite.New(ctx, cfg.DatabaseFile)
			},
			CatalogClientFunc: func(cfg *config.Config) service.CatalogClient {
				return mockedCatalogClient
			},
			HealthCheckFunc: func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
				return mockedHealthChecker, nil
			},
			HttpServerFunc: func(configMoqParam *config.Config, handler http.Handler) service.HTTPServer {
				return mockedHttpServer
			},
		}

		Convey("When all is well", func() {
			svc, err := service.New(ctx, buildTime, gitCommit, version, cfg, mockedDependencies)

			Convey("New should succeed", func() {
				So(svc, ShouldNotBeNil)
				So(err, ShouldBeNil)
				So(svc.GetStore(), ShouldNotBeNil)
				So(svc.GetCatalogClient(), ShouldEqual, mockedCatalogClient)
				So(svc.GetShutdownTimeout(), ShouldEqual, cfg.GracefulShutdownTimeout)
				So(svc.GetHealthChecker(), ShouldEqual, mockedHealthChecker)
			})

			Convey("Run starts the health checker and the server", func() {
				svc.Run(ctx)

				So(mockedHealthChecker.StartCalls(), ShouldHaveLength, 1)

				// The server starts on its own goroutine.
				deadline := time.Now().Add(time.Second)
				for len(mockedHttpServer.ListenAndServeCalls()) == 0 && time.Now().Before(deadline) {
					time.Sleep(10 * time.Millisecond)
				}
				So(mockedHttpServer.ListenAndServeCalls(), ShouldHaveLength, 1)
			})

			Convey("Close stops the health checker and shuts the server down", func() {
				err := svc.Close(ctx)

				So(err, ShouldBeNil)
				So(mockedHealthChecker.StopCalls(), ShouldHaveLength, 1)
				So(mockedHttpServer.ShutdownCalls(), ShouldHaveLength, 1)
			})
		})

		// Ensure New fails when any of the dependency setups fail
		//

		Convey("When store setup fails", func() {
			mockedDependencies.StoreFunc = func(ctx context.Context, cfg *config.Config) (service.Store, error) {
				return nil, errors.New("store failure")
			}

			svc, err := service.New(ctx, buildTime, gitCommit, version, cfg, mockedDependencies)

			Convey("New should fail", func() {
				So(svc, ShouldBeNil)
				So(err.Error(), ShouldContainSubstring, "store failure")
			})
		})

		Convey("When healthcheck setup fails", func() {
			mockedDependencies.HealthCheckFunc = func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
				return nil, errors.New("healthcheck failure")
			}

			svc, err := service.New(ctx, buildTime, gitCommit, version, cfg, mockedDependencies)

			Convey("New should fail", func() {
				So(svc, ShouldBeNil)
				So(err.Error(), ShouldContainSubstring, "healthcheck failure")
			})
		})

		// Ensure New fails if any of the healthcheck AddChecks fail
		//

		failIfNameMatches := func(name, match string) error {
			if name == match {
				return errors.New(name)
			}
			return nil
		}

		Convey("When the store healthcheck setup fails", func() {
			mockedHealthChecker.AddCheckFunc = func(name string, checker healthcheck.Checker) error {
				return failIfNameMatches(name, "Store")
			}

			svc, err := service.New(ctx, buildTime, gitCommit, version, cfg, mockedDependencies)

			Convey("New should fail", func() {
				So(svc, ShouldBeNil)
				So(err.Error(), ShouldContainSubstring, "registering checkers for healthcheck")
			})
		})

		Convey("When the catalog api healthcheck setup fails", func() {
			mockedHealthChecker.AddCheckFunc = func(name string, checker healthcheck.Checker) error {
				return failIfNameMatches(name, "Catalog API")
			}

			svc, err := service.New(ctx, buildTime, gitCommit, version, cfg, mockedDependencies)

			Convey("New should fail", func() {
				So(svc, ShouldBeNil)
				So(err.Error(), ShouldContainSubstring, "registering checkers for healthcheck")
			})
		})
	})
}
