// Package utils provides small helpers shared by the server and the CLI
// client: JSON response writing, the preconfigured resty HTTP client and
// trace id generation.
package utils
