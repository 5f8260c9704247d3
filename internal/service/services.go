package service

import (
	"fmt"

	"github.com/MKhiriev/go-stego-keeper/internal/config"
	"github.com/MKhiriev/go-stego-keeper/internal/crypto"
	"github.com/MKhiriev/go-stego-keeper/internal/logger"
	"github.com/MKhiriev/go-stego-keeper/internal/metrics"
)

type Services struct {
	StegoService   StegoService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices builds the service set. StegoService is decorated as
// metrics(validation(core)), so rejected requests are counted too.
func NewServices(cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		StegoService:   NewStegoMetricsService(m).Wrap(NewLocalStegoService(cfg.Stego, logger)),
		AppInfoService: appInfo,
		HealthService:  NewHealthService(appInfo),
	}, nil
}

// NewLocalStegoService returns the validated in-process [StegoService]
// used by the server and by the CLI's local mode.
func NewLocalStegoService(cfg config.Stego, logger *logger.Logger) StegoService {
	return NewStegoValidationService().Wrap(NewStegoService(crypto.NewKeyChain(), cfg, logger))
}
