package handlers

import (
	"net/http"
	"versioned-task-api/internal/http/dto"
)

// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "ok"})
}

// Root lists the mounted API versions.
func Root(versions ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.RootResponse{
			Message:  "task api",
			Versions: versions,
		})
	}
}
