package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-stego-keeper/models"
)

// StegoService hides messages in carrier images and recovers them.
type StegoService interface {
	// Hide returns a PNG with the encrypted message embedded.
	Hide(ctx context.Context, request models.HideRequest) ([]byte, error)
	// Reveal returns the message hidden in the image. A wrong passphrase
	// yields unrelated text, not an error.
	Reveal(ctx context.Context, request models.RevealRequest) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	Check(ctx context.Context) models.HealthResponse
}
