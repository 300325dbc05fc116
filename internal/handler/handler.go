// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/showsapi/showsapi/internal/handler/dto"
)

// Handler serves the service-level routes.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// rootResponse is fixed and independent of store state.
var rootResponse = dto.RootResponse{
	Message: "Shows API is running!",
	Endpoints: dto.Endpoints{
		Users:         "/api/users",
		CreateUser:    "POST /api/users",
		SeedUsers:     "POST /api/users/seed",
		Documentation: "/api-docs",
	},
}

// Root reports that the API is running and lists its endpoints.
// @Summary API health check
// @Description Check if the API is running
// @Tags Health
// @Produce json
// @Success 200 {object} dto.RootResponse "API is running successfully"
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse)
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
		Success: false,
		Message: "resource not found",
	})
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, dto.ErrorResponse{
		Success: false,
		Message: "method not allowed",
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
