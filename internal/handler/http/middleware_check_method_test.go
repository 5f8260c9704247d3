// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod_UnregisteredMethodIs404(t *testing.T) {
	router := newTestHandler().Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/encrypt"},
		{http.MethodPut, "/decrypt"},
		{http.MethodPost, "/api/version/"},
		{http.MethodDelete, "/metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}
