package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the wire shape shared by every non-validation failure.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ValidationErrorBody lists every violated rule of a rejected request.
type ValidationErrorBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, statusCode int, errLabel string, message string) {
	JSON(w, statusCode, ErrorBody{
		Error:   errLabel,
		Message: message,
	})
}

func ValidationError(w http.ResponseWriter, details interface{}) {
	JSON(w, http.StatusBadRequest, ValidationErrorBody{
		Error:   "Validation failed",
		Details: details,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Request body must be valid JSON"
	}
	Error(w, http.StatusBadRequest, "Invalid request body", message)
}

func NotFound(w http.ResponseWriter, errLabel string, message string) {
	if errLabel == "" {
		errLabel = "Not found"
	}
	Error(w, http.StatusNotFound, errLabel, message)
}

func Conflict(w http.ResponseWriter, errLabel string, message string) {
	if errLabel == "" {
		errLabel = "Conflict"
	}
	Error(w, http.StatusConflict, errLabel, message)
}

func TooManyRequests(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Rate limit exceeded, try again later"
	}
	Error(w, http.StatusTooManyRequests, "Too many requests", message)
}

// InternalServerError deliberately carries no detail; storage failures are
// logged server-side and never echoed to the caller.
func InternalServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
}
