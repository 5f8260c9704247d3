package http

import "net/http"

// withBodyLimit caps the request body at cfg.MaxUploadSize bytes. Reading
// past the limit fails with *http.MaxBytesError.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > h.cfg.MaxUploadSize {
			h.writeError(w, r, ErrRequestTooLarge)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
		next.ServeHTTP(w, r)
	})
}
