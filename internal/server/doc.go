// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: binding the listen address, serving
// requests, reacting to termination signals and draining in-flight
// requests within the configured shutdown timeout.
package server
