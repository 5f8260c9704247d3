package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-stego-keeper/internal/crypto"
	"github.com/MKhiriev/go-stego-keeper/internal/imaging"
	"github.com/MKhiriev/go-stego-keeper/internal/metrics"
	"github.com/MKhiriev/go-stego-keeper/internal/stego"
	"github.com/MKhiriev/go-stego-keeper/models"
)

// StegoMetricsService records the outcome, latency and sizes of every
// call passing through it.
type StegoMetricsService struct {
	inner   StegoService
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewStegoMetricsService(m *metrics.Metrics) StegoServiceWrapper {
	return &StegoMetricsService{
		metrics: m,
		now:     time.Now,
	}
}

func (s *StegoMetricsService) Hide(ctx context.Context, request models.HideRequest) ([]byte, error) {
	start := s.now()
	out, err := s.inner.Hide(ctx, request)
	s.metrics.ObserveOperation(metrics.OpHide, resultLabel(err), s.now().Sub(start))
	s.metrics.ObserveCarrier(metrics.OpHide, len(request.Image))
	if err == nil {
		s.metrics.ObserveMessage(metrics.OpHide, len(request.Message))
	}

	return out, err
}

func (s *StegoMetricsService) Reveal(ctx context.Context, request models.RevealRequest) (string, error) {
	start := s.now()
	message, err := s.inner.Reveal(ctx, request)
	s.metrics.ObserveOperation(metrics.OpReveal, resultLabel(err), s.now().Sub(start))
	s.metrics.ObserveCarrier(metrics.OpReveal, len(request.Image))
	if err == nil {
		s.metrics.ObserveMessage(metrics.OpReveal, len(message))
	}

	return message, err
}

func (s *StegoMetricsService) Wrap(wrapper StegoService) StegoService {
	s.inner = wrapper
	return s
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, stego.ErrCapacity):
		return metrics.ResultCapacity
	case errors.Is(err, stego.ErrFormat):
		return metrics.ResultFormat
	case IsInvalidInput(err):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}

// IsInvalidInput reports whether err was caused by the caller's input
// rather than by the service.
func IsInvalidInput(err error) bool {
	for _, target := range []error{
		ErrInvalidDataProvided,
		stego.ErrEmptyMessage,
		crypto.ErrEmptyPassphrase,
		imaging.ErrEmptyImage,
		imaging.ErrUnsupportedFormat,
		imaging.ErrCorruptImage,
		imaging.ErrImageTooLarge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
