// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming hide and reveal requests before they
// reach the codec.
//
// Validators run in the service layer, so the HTTP handler and the local
// CLI mode reject the same inputs with the same errors.
package validators

import "context"

// Validator validates a request value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
