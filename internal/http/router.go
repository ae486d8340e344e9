package router

import (
	"log"
	"net/http"
	"versioned-task-api/internal/access"
	"versioned-task-api/internal/http/handlers"
	"versioned-task-api/internal/http/middleware"
)

// New mounts both API versions behind the API key gate. v1 updates replace
// the whole task, v2 updates merge the provided fields.
func New(v1, v2 *handlers.TaskHandler, gate *access.Gate, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /{$}", handlers.Root("v1", "v2"))

	auth := middleware.RequireAPIKey(gate, logger)
	mountVersion(mux, auth, "v1", v1, v1.Replace)
	mountVersion(mux, auth, "v2", v2, v2.Merge)

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logging(logger),
		middleware.Recover(logger),
	)
}

func mountVersion(mux *http.ServeMux, auth middleware.Middleware, version string, h *handlers.TaskHandler, update http.HandlerFunc) {
	prefix := "/" + version

	mux.Handle("GET "+prefix+"/task/{id}", auth(http.HandlerFunc(h.Get)))
	mux.Handle("GET "+prefix+"/tasks", auth(http.HandlerFunc(h.List)))
	mux.Handle("POST "+prefix+"/task", auth(http.HandlerFunc(h.Create)))
	mux.Handle("PATCH "+prefix+"/task/{id}", auth(update))
	mux.Handle("DELETE "+prefix+"/task/{id}", auth(http.HandlerFunc(h.Delete)))
}
