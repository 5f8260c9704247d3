package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stego-keeper/internal/validators"
	"github.com/MKhiriev/go-stego-keeper/models"
)

type StegoValidationService struct {
	inner     StegoService
	validator validators.Validator
}

func NewStegoValidationService() StegoServiceWrapper {
	return &StegoValidationService{
		validator: validators.NewStegoRequestValidator(),
	}
}

func (v *StegoValidationService) Hide(ctx context.Context, request models.HideRequest) ([]byte, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Hide(ctx, request)
}

func (v *StegoValidationService) Reveal(ctx context.Context, request models.RevealRequest) (string, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Reveal(ctx, request)
}

func (v *StegoValidationService) Wrap(wrapper StegoService) StegoService {
	v.inner = wrapper
	return v
}
