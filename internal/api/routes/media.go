package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterMediaRoutes serves uploaded media files when the filesystem media
// store is in use. S3-backed deployments serve media straight from the
// bucket and skip this.
func RegisterMediaRoutes(r chi.Router, mediaRoot string) {
	fs := http.StripPrefix("/media/", http.FileServer(http.Dir(mediaRoot)))
	r.Get("/media/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}
