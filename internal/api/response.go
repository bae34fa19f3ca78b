package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// Status values used in the response envelope.
const (
	StatusSuccess   = "success"
	StatusError     = "error"
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Status     string    `json:"status"`
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message,omitempty"`
	Code       string    `json:"code,omitempty"`
	Data       any       `json:"data,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"requestId"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// writeEnvelope fills in the timestamp and request ID and writes resp.
func writeEnvelope(w http.ResponseWriter, r *http.Request, resp Response) error {
	resp.Timestamp = time.Now().UTC()
	resp.RequestID = requestIDFrom(r)
	return WriteJSON(w, resp.StatusCode, resp)
}

// WriteSuccess writes a 200 response carrying data.
func WriteSuccess(w http.ResponseWriter, r *http.Request, message string, data any) error {
	return writeEnvelope(w, r, Response{
		Status:     StatusSuccess,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
	})
}

// WriteError writes an error response.
func WriteError(w http.ResponseWriter, r *http.Request, status int, message string, code ...string) error {
	resp := Response{
		Status:     StatusError,
		StatusCode: status,
		Message:    message,
	}
	if len(code) > 0 {
		resp.Code = code[0]
	}
	return writeEnvelope(w, r, resp)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, r *http.Request, message string) error {
	return WriteError(w, r, http.StatusNotFound, message, "NOT_FOUND")
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, r *http.Request, message string) error {
	return WriteError(w, r, http.StatusBadRequest, message, "BAD_REQUEST")
}

// WriteUnprocessable writes a 422 response for moments the model can't classify.
func WriteUnprocessable(w http.ResponseWriter, r *http.Request, message string) error {
	return WriteError(w, r, http.StatusUnprocessableEntity, message, "OUT_OF_MODEL")
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, r *http.Request, message string) error {
	return WriteError(w, r, http.StatusInternalServerError, message, "INTERNAL_ERROR")
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, r *http.Request, message string) error {
	return WriteError(w, r, http.StatusUnauthorized, message, "UNAUTHORIZED")
}
