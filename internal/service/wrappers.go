package service

// StegoServiceWrapper defines middleware composition for StegoService.
// Implementations wrap an existing StegoService to add behavior such as
// validating or metrics.
type StegoServiceWrapper interface {
	Wrap(StegoService) StegoService // returns a decorated StegoService applying additional behavior
}
