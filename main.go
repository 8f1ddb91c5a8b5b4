package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ONSdigital/log.go/v2/log"

	"github.com/opendatamirror/dp-catalog-sync/config"
	"github.com/opendatamirror/dp-catalog-sync/service"
	"github.com/opendatamirror/dp-catalog-sync/service/external"
)

var (
	// BuildTime represents the time in which the service was built
	BuildTime string
	// GitCommit represents the commit (SHA-1) hash of the service that is running
	GitCommit string
	// Version represents the version of the service that is running
	Version string
)

func main() {
	log.Namespace = "dp-catalog-sync"
	ctx := context.Background()

	cfg, err := config.Get()
	if err != nil {
		log.Fatal(ctx, "error getting config at service start", err)
		os.Exit(1)
	}
	log.Info(ctx, "config on startup", log.Data{"config": cfg})

	svc, err := service.New(ctx, BuildTime, GitCommit, Version, cfg, &external.External{})
	if err != nil {
		log.Fatal(ctx, "could not set up service", err)
		os.Exit(1)
	}

	svc.Run(ctx)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	log.Info(ctx, "os signal received", log.Data{"signal": sig.String()})

	if err := svc.Close(ctx); err != nil {
		log.Error(ctx, "error during service shutdown", err)
		os.Exit(1)
	}
}
