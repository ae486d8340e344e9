package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"versioned-task-api/internal/http/dto"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

// WriteError is writeError for callers outside the package, such as middleware.
func WriteError(w http.ResponseWriter, status int, msg string) {
	writeError(w, status, msg)
}
