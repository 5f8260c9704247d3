package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to w with the given
// status code and an "application/json" Content-Type.
//
// If marshaling fails nothing is written except a 500 with a JSON error
// body, and the wrapped marshal error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.RevealResponse{Message: msg}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "key is required"}, http.StatusBadRequest)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
