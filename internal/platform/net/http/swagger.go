package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// docReader is a seam so tests can swap the served spec
var docReader = func() string {
	return `{"openapi":"3.0.3","info":{"title":"timebanner API","version":"0.0.0"},"paths":{}}`
}

// serveDocJSON serves the OpenAPI document the UI loads
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}

// MountSwagger mounts the Swagger UI and JSON spec under /api/docs if enabled
func MountSwagger(r Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON())
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
