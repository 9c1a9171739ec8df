package response

import (
	"encoding/json"
	"net/http"
)

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type errorBody struct {
	Error ErrorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := errorBody{Error: ErrorDetail{
			Code:    "ENCODING_ERROR",
			Message: "Failed to encode response",
		}}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success responses. Payloads go out unwrapped; the endpoint contracts fix
// the exact body shapes.
func Success(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusOK, payload)
}

func Created(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusCreated, payload)
}

// Error responses
func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: ErrorDetail{
		Code:    "BAD_REQUEST",
		Message: message,
	}})
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: ErrorDetail{
		Code:    "VALIDATION_ERROR",
		Message: "Validation failed",
		Details: details,
	}})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: ErrorDetail{
		Code:    "NOT_FOUND",
		Message: message,
	}})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: ErrorDetail{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: message,
	}})
}
