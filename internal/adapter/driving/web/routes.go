package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers the guest page at / and the embedded static
// assets at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", h.WiFiPage)
}
