package main

import (
	"fmt"

	"github.com/mhenke/logbuch/internal/adapter"
	"github.com/mhenke/logbuch/internal/client"
	"github.com/mhenke/logbuch/internal/config"
	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClient("logbuch-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	catalog, err := adapter.NewOpenFoodFactsCatalog(cfg.Lookup, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create product catalog")
	}

	ui, err := tui.New(serverAdapter, catalog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(serverAdapter, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
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
