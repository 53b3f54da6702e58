package main

import (
	"fmt"

	"github.com/quietpage/quietpage/internal/client"
	"github.com/quietpage/quietpage/internal/config"
	"github.com/quietpage/quietpage/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("quietpage-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}
	defer app.Close()

	// The runtime is headless: the embedding journaling UI drives the
	// session through client.App. Standing the runtime up verifies the
	// wiring (adapter, local mirror, crypto core, background jobs).
	log.Info().Msg("client runtime ready")
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
