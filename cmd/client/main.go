package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/subfinder-client/internal/adapter"
	"github.com/MKhiriev/subfinder-client/internal/client"
	"github.com/MKhiriev/subfinder-client/internal/config"
	"github.com/MKhiriev/subfinder-client/internal/logger"
	"github.com/MKhiriev/subfinder-client/internal/notify"
	"github.com/MKhiriev/subfinder-client/internal/service"
	"github.com/MKhiriev/subfinder-client/internal/tui"
	"github.com/MKhiriev/subfinder-client/internal/workers"
	"github.com/MKhiriev/subfinder-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("subfinder-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("set log level")
	}

	subfinderAdapter, err := adapter.NewHTTPSubfinderAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create subfinder adapter")
	}

	toaster := notify.NewToaster(log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewClientServices(subfinderAdapter, toaster, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	poller := workers.NewStatusPoller(services.JobService, cfg.Workers, log)

	ui, err := tui.New(services, toaster, poller.Updates(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(poller), toaster, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
