// Package http implements the HTTP transport layer of go-stego-keeper.
//
// It exposes the browser UI, the /encrypt and /decrypt form endpoints, and
// the operational routes (version, health, metrics). Request tracing, access
// logging, request metrics, body limits and response compression are handled
// here before requests are delegated to the service layer.
package http
