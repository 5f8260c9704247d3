package handler

import (
	"github.com/MKhiriev/go-stego-keeper/internal/config"
	"github.com/MKhiriev/go-stego-keeper/internal/handler/http"
	"github.com/MKhiriev/go-stego-keeper/internal/logger"
	"github.com/MKhiriev/go-stego-keeper/internal/metrics"
	"github.com/MKhiriev/go-stego-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, m, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
