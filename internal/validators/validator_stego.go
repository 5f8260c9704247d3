package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-stego-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldImage targets the encoded carrier image bytes.
	FieldImage = "image"

	// FieldMessage targets the plaintext message of a hide request.
	FieldMessage = "message"

	// FieldPassphrase targets the user passphrase.
	FieldPassphrase = "key"
)

// StegoRequestValidator implements [Validator] for
// [models.HideRequest] and [models.RevealRequest], both as values and
// pointers.
type StegoRequestValidator struct{}

// NewStegoRequestValidator returns a ready-to-use [Validator].
func NewStegoRequestValidator() Validator {
	return &StegoRequestValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty
// every field of the request is checked.
func (v *StegoRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HideRequest:
		return v.validateHideRequest(ctx, value, fields...)
	case *models.HideRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateHideRequest(ctx, *value, fields...)
	case models.RevealRequest:
		return v.validateRevealRequest(ctx, value, fields...)
	case *models.RevealRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRevealRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *StegoRequestValidator) validateHideRequest(_ context.Context, request models.HideRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImage, FieldMessage, FieldPassphrase}
	}

	for _, f := range fields {
		switch f {
		case FieldImage:
			if len(request.Image) == 0 {
				return ErrEmptyImage
			}
		case FieldMessage:
			if request.Message == "" {
				return ErrEmptyMessage
			}
			if !utf8.ValidString(request.Message) {
				return ErrInvalidMessage
			}
		case FieldPassphrase:
			if request.Passphrase == "" {
				return ErrEmptyPassphrase
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StegoRequestValidator) validateRevealRequest(_ context.Context, request models.RevealRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImage, FieldPassphrase}
	}

	for _, f := range fields {
		switch f {
		case FieldImage:
			if len(request.Image) == 0 {
				return ErrEmptyImage
			}
		case FieldPassphrase:
			if request.Passphrase == "" {
				return ErrEmptyPassphrase
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
