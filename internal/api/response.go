package api

import (
	"encoding/json"
	"net/http"
)

// Error codes
const (
	codeInvalidRequest = "INVALID_REQUEST"
	codeNotFound       = "NOT_FOUND"
	codeGameNotFound   = "GAME_NOT_FOUND"
	codeUnavailable    = "UNAVAILABLE"
	codeInternal       = "INTERNAL_ERROR"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: APIError{Code: code, Message: msg}})
}
