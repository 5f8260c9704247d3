package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stego-keeper/models"
)

const statusOK = "ok"

type healthService struct {
	appInfo AppInfoService
	started time.Time
	now     func() time.Time
}

func NewHealthService(appInfo AppInfoService) HealthService {
	return &healthService{
		appInfo: appInfo,
		started: time.Now(),
		now:     time.Now,
	}
}

func (h *healthService) Check(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:        statusOK,
		Version:       h.appInfo.GetAppVersion(ctx),
		UptimeSeconds: int64(h.now().Sub(h.started).Seconds()),
	}
}
