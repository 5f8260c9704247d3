package main

import (
	"fmt"

	"github.com/MKhiriev/go-stego-keeper/internal/config"
	"github.com/MKhiriev/go-stego-keeper/internal/handler"
	"github.com/MKhiriev/go-stego-keeper/internal/logger"
	"github.com/MKhiriev/go-stego-keeper/internal/metrics"
	"github.com/MKhiriev/go-stego-keeper/internal/server"
	"github.com/MKhiriev/go-stego-keeper/internal/service"
	"github.com/MKhiriev/go-stego-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-stego-server")

	var version string
	if buildInfo.HasVersion() {
		version = buildInfo.BuildVersion()
	}
	cfg, err := config.GetStructuredConfig(version)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	m := metrics.NewMetrics()

	services, err := service.NewServices(cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
