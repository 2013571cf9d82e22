package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/guadalupeabrile/authentic"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a JSON error response
func WriteError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   errCode,
		Message: message,
	}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// HandleError writes the response matching the error taxonomy: validation
// failures are 400, auth failures 401, missing resources 404, storage and
// anything unclassified 500.
func HandleError(w http.ResponseWriter, err error) {
	slog.Error("request error", "error", err)

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		WriteError(w, http.StatusBadRequest, "invalid_input", "Request body too large")
		return
	}

	if errors.Is(err, authentic.ErrInvalidInput) {
		WriteError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	if errors.Is(err, authentic.ErrInvalidCredentials) {
		WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
		return
	}

	if errors.Is(err, authentic.ErrTokenExpired) {
		WriteError(w, http.StatusUnauthorized, "token_expired", "Token expired")
		return
	}

	if errors.Is(err, authentic.ErrUnauthorized) {
		WriteError(w, http.StatusUnauthorized, "unauthorized", "A valid bearer token is required")
		return
	}

	if errors.Is(err, authentic.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "not_found", "Not found")
		return
	}

	if errors.Is(err, authentic.ErrStorage) {
		WriteError(w, http.StatusInternalServerError, "storage_error", "Storage operation failed")
		return
	}

	// Default internal error
	WriteError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}
