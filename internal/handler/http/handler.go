package http

import (
	"github.com/MKhiriev/go-stego-keeper/internal/config"
	"github.com/MKhiriev/go-stego-keeper/internal/logger"
	"github.com/MKhiriev/go-stego-keeper/internal/metrics"
	"github.com/MKhiriev/go-stego-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		cfg:      cfg,
		logger:   logger,
	}
}
