package http

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, staticFiles, "static/index.html")
}

func (h *Handler) static() http.HandlerFunc {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// the embedded tree is fixed at compile time
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(assets)).ServeHTTP
}
