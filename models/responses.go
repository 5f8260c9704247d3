package models

// RevealResponse is the JSON body returned by a successful /decrypt call.
type RevealResponse struct {
	// Message is the recovered text. Invalid UTF-8 is dropped.
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned on every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}
